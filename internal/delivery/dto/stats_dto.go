package dto

// DashboardStatsResponse is the aggregate view shown on the console home
// screen: headcounts plus appointments broken down by status.
type DashboardStatsResponse struct {
	TotalDoctors         int64            `json:"total_doctors"`
	TotalNurses          int64            `json:"total_nurses"`
	TotalPatients        int64            `json:"total_patients"`
	TotalAppointments    int64            `json:"total_appointments"`
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
}
