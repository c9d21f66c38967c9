package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.FeedbackResponse{
		ID:        feedback.ID,
		PatientID: feedback.PatientID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		Status:    feedback.Status,
		CreatedAt: feedback.CreatedAt,
		UpdatedAt: feedback.UpdatedAt,
	}
}

// FeedbacksToResponses converts a slice of Feedback entities to response DTOs
func FeedbacksToResponses(feedbacks []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, len(feedbacks))
	for i := range feedbacks {
		responses[i] = *FeedbackToResponse(&feedbacks[i])
	}
	return responses
}
