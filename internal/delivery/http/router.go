package http

import (
	"net/http"

	"hospital-admin-console/internal/delivery/http/handler"
	"hospital-admin-console/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	doctorHandler        *handler.DoctorHandler
	nurseHandler         *handler.NurseHandler
	patientHandler       *handler.PatientHandler
	appointmentHandler   *handler.AppointmentHandler
	medicineHandler      *handler.MedicineHandler
	prescriptionHandler  *handler.PrescriptionHandler
	labTestHandler       *handler.LabTestHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	billingHandler       *handler.BillingHandler
	feedbackHandler      *handler.FeedbackHandler
	facilityHandler      *handler.FacilityHandler
	statsHandler         *handler.StatsHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	nurseHandler *handler.NurseHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicineHandler *handler.MedicineHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	labTestHandler *handler.LabTestHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	billingHandler *handler.BillingHandler,
	feedbackHandler *handler.FeedbackHandler,
	facilityHandler *handler.FacilityHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		doctorHandler:        doctorHandler,
		nurseHandler:         nurseHandler,
		patientHandler:       patientHandler,
		appointmentHandler:   appointmentHandler,
		medicineHandler:      medicineHandler,
		prescriptionHandler:  prescriptionHandler,
		labTestHandler:       labTestHandler,
		medicalRecordHandler: medicalRecordHandler,
		billingHandler:       billingHandler,
		feedbackHandler:      feedbackHandler,
		facilityHandler:      facilityHandler,
		statsHandler:         statsHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Feedback submission is public
	api.HandleFunc("/feedback", r.feedbackHandler.Create).Methods(http.MethodPost)

	// Staff routes (any authenticated hospital role)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/stats/dashboard", r.statsHandler.GetDashboardStats).Methods(http.MethodGet)

	staff.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/nurses", r.nurseHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/nurses", r.nurseHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/nurses/{id}", r.nurseHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/nurses/{id}", r.nurseHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/nurses/{id}", r.nurseHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/medicines", r.medicineHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/invoices", r.billingHandler.CreateInvoice).Methods(http.MethodPost)
	staff.HandleFunc("/invoices", r.billingHandler.GetAllInvoices).Methods(http.MethodGet)
	staff.HandleFunc("/invoices/{id}", r.billingHandler.GetInvoice).Methods(http.MethodGet)
	staff.HandleFunc("/invoices/{id}/pay", r.billingHandler.PayInvoice).Methods(http.MethodPost)
	staff.HandleFunc("/invoices/{id}/cancel", r.billingHandler.CancelInvoice).Methods(http.MethodPost)
	staff.HandleFunc("/payments", r.billingHandler.GetPaymentHistory).Methods(http.MethodGet)
	staff.HandleFunc("/service-fees", r.billingHandler.GetServiceFees).Methods(http.MethodGet)

	staff.HandleFunc("/feedback", r.feedbackHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/feedback/{id}", r.feedbackHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/feedback/{id}", r.feedbackHandler.UpdateStatus).Methods(http.MethodPut)
	staff.HandleFunc("/feedback/{id}", r.feedbackHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/rooms", r.facilityHandler.GetAllRooms).Methods(http.MethodGet)
	staff.HandleFunc("/rooms/{id}", r.facilityHandler.GetRoom).Methods(http.MethodGet)
	staff.HandleFunc("/departments", r.facilityHandler.GetAllDepartments).Methods(http.MethodGet)
	staff.HandleFunc("/departments/{id}", r.facilityHandler.GetDepartment).Methods(http.MethodGet)

	// Clinical routes (admin, doctor, nurse)
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireClinicalStaff)

	clinical.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/prescriptions", r.prescriptionHandler.GetAll).Methods(http.MethodGet)
	clinical.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	clinical.HandleFunc("/lab-tests", r.labTestHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/lab-tests", r.labTestHandler.GetAll).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-tests/{id}", r.labTestHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-tests/{id}", r.labTestHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/lab-tests/{id}", r.labTestHandler.Delete).Methods(http.MethodDelete)

	clinical.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/medical-records", r.medicalRecordHandler.GetAll).Methods(http.MethodGet)
	clinical.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetByID).Methods(http.MethodGet)
	clinical.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/service-fees", r.billingHandler.UpsertServiceFee).Methods(http.MethodPut)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
