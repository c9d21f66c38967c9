package usecase

import (
	"context"
	"errors"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"
)

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

type FeedbackUsecase interface {
	// Create is the one unauthenticated write in the system: patients submit
	// feedback without a staff account.
	Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	GetAll(ctx context.Context, status string, page, limit int) (*dto.FeedbackListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.FeedbackResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	Delete(ctx context.Context, id int64) error
}

type feedbackUsecase struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackUsecase(feedbackRepo repository.FeedbackRepository) FeedbackUsecase {
	return &feedbackUsecase{feedbackRepo: feedbackRepo}
}

func (u *feedbackUsecase) Create(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback := &entity.Feedback{
		PatientID: req.PatientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Status:    entity.FeedbackStatusNew,
	}

	if err := u.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetAll(ctx context.Context, status string, page, limit int) (*dto.FeedbackListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	feedbacks, total, err := u.feedbackRepo.FindAll(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.FeedbackListResponse{
		Content:       converter.FeedbacksToResponses(feedbacks),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *feedbackUsecase) GetByID(ctx context.Context, id int64) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	feedback.Status = req.Status
	if err := u.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, err
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) Delete(ctx context.Context, id int64) error {
	affectedRows, err := u.feedbackRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
