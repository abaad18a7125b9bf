package service

import (
	"context"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, principal authz.Principal, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	Update(ctx context.Context, principal authz.Principal, feedbackId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	Delete(ctx context.Context, principal authz.Principal, feedbackId uuid.UUID) error
	ListForEstablishment(ctx context.Context, establishmentId uuid.UUID, limit, offset int) ([]*dto.FeedbackResponse, error)
	Summary(ctx context.Context, establishmentId uuid.UUID) (*dto.FeedbackSummaryResponse, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory) IFeedbackService {
	return &feedbackService{uowFactory: uowFactory}
}

func toFeedbackResponse(fb *entity.Feedback, customerName string) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:              fb.Id,
		CustomerId:      fb.CustomerId,
		CustomerName:    customerName,
		EstablishmentId: fb.EstablishmentId,
		Rating:          fb.Rating,
		Comment:         fb.Comment,
		CreatedAt:       fb.CreatedAt,
	}
}

func (s *feedbackService) Submit(ctx context.Context, principal authz.Principal, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	if err := authz.FeedbackWrite.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: req.EstablishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}

	// One feedback per customer per establishment.
	existing, err := uow.FeedbackRepository().FindOne(ctx,
		specification.ByCustomer{CustomerID: principal.Id},
		specification.ByEstablishment{EstablishmentID: req.EstablishmentId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("feedback already submitted for this establishment")
	}

	fb := &entity.Feedback{
		Id:              uuid.New(),
		CustomerId:      principal.Id,
		EstablishmentId: req.EstablishmentId,
		Rating:          req.Rating,
		Comment:         req.Comment,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, fb); err != nil {
		return nil, err
	}

	return toFeedbackResponse(fb, ""), nil
}

func (s *feedbackService) Update(ctx context.Context, principal authz.Principal, feedbackId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	fb, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: feedbackId})
	if err != nil {
		return nil, err
	}
	if fb == nil {
		return nil, apperr.NotFound("feedback")
	}
	if err := authz.FeedbackWrite.CanWriteOwned(principal, fb.CustomerId); err != nil {
		return nil, err
	}

	fb.Rating = req.Rating
	fb.Comment = req.Comment
	fb.UpdatedAt = time.Now()

	if err := uow.FeedbackRepository().Update(ctx, fb); err != nil {
		return nil, err
	}
	return toFeedbackResponse(fb, ""), nil
}

func (s *feedbackService) Delete(ctx context.Context, principal authz.Principal, feedbackId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	fb, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: feedbackId})
	if err != nil {
		return err
	}
	if fb == nil {
		return apperr.NotFound("feedback")
	}
	if err := authz.FeedbackWrite.CanWriteOwned(principal, fb.CustomerId); err != nil {
		return err
	}

	return uow.FeedbackRepository().Delete(ctx, feedbackId)
}

func (s *feedbackService) ListForEstablishment(ctx context.Context, establishmentId uuid.UUID, limit, offset int) ([]*dto.FeedbackResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	fbs, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByEstablishment{EstablishmentID: establishmentId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.FeedbackResponse, 0, len(fbs))
	for _, fb := range fbs {
		name := ""
		if author, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: fb.CustomerId}); author != nil {
			name = author.FullName
		}
		out = append(out, toFeedbackResponse(fb, name))
	}
	return out, nil
}

func (s *feedbackService) Summary(ctx context.Context, establishmentId uuid.UUID) (*dto.FeedbackSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	avg, err := uow.FeedbackRepository().AverageRating(ctx, establishmentId)
	if err != nil {
		return nil, err
	}

	fbs, err := uow.FeedbackRepository().FindAll(ctx, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return nil, err
	}

	return &dto.FeedbackSummaryResponse{
		EstablishmentId: establishmentId,
		AverageRating:   avg,
		Count:           int64(len(fbs)),
	}, nil
}
