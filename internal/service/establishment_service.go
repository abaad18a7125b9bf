package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEstablishmentService interface {
	Create(ctx context.Context, principal authz.Principal, req *dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error)
	Update(ctx context.Context, principal authz.Principal, id uuid.UUID, req *dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error)
	Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*dto.EstablishmentResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.EstablishmentResponse, error)
	List(ctx context.Context, limit, offset int) ([]*dto.EstablishmentResponse, error)
	ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*dto.EstablishmentResponse, error)

	AddBanner(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.BannerRequest) (*dto.BannerResponse, error)
	RemoveBanner(ctx context.Context, principal authz.Principal, establishmentId, bannerId uuid.UUID) error
	ListBanners(ctx context.Context, establishmentId uuid.UUID) ([]*dto.BannerResponse, error)
}

type establishmentService struct {
	uowFactory      unitofwork.RepositoryFactory
	locationService ILocationService
	paymentService  IPaymentService
	clientURL       string
}

func NewEstablishmentService(uowFactory unitofwork.RepositoryFactory, locationService ILocationService, paymentService IPaymentService, clientURL string) IEstablishmentService {
	return &establishmentService{
		uowFactory:      uowFactory,
		locationService: locationService,
		paymentService:  paymentService,
		clientURL:       clientURL,
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := strings.ToLower(name)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func toHappyHourEntities(windows []dto.HappyHourWindowDTO) ([]entity.HappyHourWindow, error) {
	out := make([]entity.HappyHourWindow, 0, len(windows))
	for _, w := range windows {
		if w.StartTime >= w.EndTime {
			return nil, apperr.Validation("happy hour window start must come before end")
		}
		out = append(out, entity.HappyHourWindow{
			Weekday:   time.Weekday(w.Weekday),
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	return out, nil
}

func toHappyHourDTOs(windows []entity.HappyHourWindow) []dto.HappyHourWindowDTO {
	out := make([]dto.HappyHourWindowDTO, 0, len(windows))
	for _, w := range windows {
		out = append(out, dto.HappyHourWindowDTO{
			Weekday:   int(w.Weekday),
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	return out
}

func (s *establishmentService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, est *entity.Establishment) *dto.EstablishmentResponse {
	avg, _ := uow.FeedbackRepository().AverageRating(ctx, est.Id)
	return &dto.EstablishmentResponse{
		Id:            est.Id,
		OwnerId:       est.OwnerId,
		Name:          est.Name,
		Slug:          est.Slug,
		Description:   est.Description,
		AddressLine:   est.AddressLine,
		City:          est.City,
		PostalCode:    est.PostalCode,
		Country:       est.Country,
		Latitude:      est.Latitude,
		Longitude:     est.Longitude,
		HappyHours:    toHappyHourDTOs(est.HappyHours),
		QRCode:        est.QRCode,
		OrderingOpen:  est.OrderingAllowedAt(time.Now()),
		AverageRating: avg,
		CreatedAt:     est.CreatedAt,
		DeletedAt:     est.DeletedAt,
	}
}

func (s *establishmentService) Create(ctx context.Context, principal authz.Principal, req *dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	if err := authz.EstablishmentWrite.CanWrite(principal); err != nil {
		return nil, err
	}

	// Listing requires a live subscription or active trial.
	live, err := s.paymentService.HasLiveSubscription(ctx, principal.Id)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, apperr.Forbidden()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	happyHours, err := toHappyHourEntities(req.HappyHours)
	if err != nil {
		return nil, err
	}

	slug := slugify(req.Name)
	if existing, _ := uow.EstablishmentRepository().FindOneUnscoped(ctx, specification.BySlug{Slug: slug}); existing != nil {
		slug = fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
	}

	est := &entity.Establishment{
		Id:          uuid.New(),
		OwnerId:     principal.Id,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		AddressLine: req.AddressLine,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		HappyHours:  happyHours,
		QRCode:      fmt.Sprintf("%s/e/%s", s.clientURL, slug),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if coords, err := s.locationService.Geocode(ctx, req.AddressLine, req.City, req.PostalCode, req.Country); err == nil && coords != nil {
		est.Latitude = &coords.Latitude
		est.Longitude = &coords.Longitude
	}

	if err := uow.EstablishmentRepository().Create(ctx, est); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, est), nil
}

func (s *establishmentService) Update(ctx context.Context, principal authz.Principal, id uuid.UUID, req *dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	if err := authz.EstablishmentWrite.CanWriteOwned(principal, est.OwnerId); err != nil {
		return nil, err
	}

	addressChanged := false
	if req.Name != nil {
		est.Name = *req.Name
	}
	if req.Description != nil {
		est.Description = *req.Description
	}
	if req.AddressLine != nil {
		est.AddressLine = *req.AddressLine
		addressChanged = true
	}
	if req.City != nil {
		est.City = *req.City
		addressChanged = true
	}
	if req.PostalCode != nil {
		est.PostalCode = *req.PostalCode
		addressChanged = true
	}
	if req.Country != nil {
		est.Country = *req.Country
		addressChanged = true
	}
	if req.HappyHours != nil {
		happyHours, err := toHappyHourEntities(*req.HappyHours)
		if err != nil {
			return nil, err
		}
		est.HappyHours = happyHours
	}

	if addressChanged {
		if coords, err := s.locationService.Geocode(ctx, est.AddressLine, est.City, est.PostalCode, est.Country); err == nil && coords != nil {
			est.Latitude = &coords.Latitude
			est.Longitude = &coords.Longitude
		}
	}

	est.UpdatedAt = time.Now()
	if err := uow.EstablishmentRepository().Update(ctx, est); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, est), nil
}

func (s *establishmentService) Delete(ctx context.Context, principal authz.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unscoped lookup so deleting an already-deleted record stays idempotent.
	est, err := uow.EstablishmentRepository().FindOneUnscoped(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if est == nil {
		return apperr.NotFound("establishment")
	}
	if err := authz.EstablishmentDrop.CanWriteOwned(principal, est.OwnerId); err != nil {
		return err
	}

	return uow.EstablishmentRepository().Delete(ctx, id)
}

func (s *establishmentService) GetById(ctx context.Context, id uuid.UUID) (*dto.EstablishmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	return s.toResponse(ctx, uow, est), nil
}

func (s *establishmentService) GetBySlug(ctx context.Context, slug string) (*dto.EstablishmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	return s.toResponse(ctx, uow, est), nil
}

func (s *establishmentService) List(ctx context.Context, limit, offset int) ([]*dto.EstablishmentResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ests, err := uow.EstablishmentRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EstablishmentResponse, 0, len(ests))
	for _, est := range ests {
		out = append(out, s.toResponse(ctx, uow, est))
	}
	return out, nil
}

func (s *establishmentService) ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*dto.EstablishmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ests, err := uow.EstablishmentRepository().FindAll(ctx,
		specification.ByOwner{OwnerID: ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EstablishmentResponse, 0, len(ests))
	for _, est := range ests {
		out = append(out, s.toResponse(ctx, uow, est))
	}
	return out, nil
}

func (s *establishmentService) AddBanner(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.BannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: establishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	if err := authz.EstablishmentWrite.CanWriteOwned(principal, est.OwnerId); err != nil {
		return nil, err
	}

	banner := &entity.Banner{
		Id:              uuid.New(),
		EstablishmentId: establishmentId,
		ImageURL:        req.ImageURL,
		Caption:         req.Caption,
		SortOrder:       req.SortOrder,
		CreatedAt:       time.Now(),
	}
	if err := uow.EstablishmentRepository().CreateBanner(ctx, banner); err != nil {
		return nil, err
	}

	return &dto.BannerResponse{
		Id:        banner.Id,
		ImageURL:  banner.ImageURL,
		Caption:   banner.Caption,
		SortOrder: banner.SortOrder,
	}, nil
}

func (s *establishmentService) RemoveBanner(ctx context.Context, principal authz.Principal, establishmentId, bannerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: establishmentId})
	if err != nil {
		return err
	}
	if est == nil {
		return apperr.NotFound("establishment")
	}
	if err := authz.EstablishmentWrite.CanWriteOwned(principal, est.OwnerId); err != nil {
		return err
	}

	return uow.EstablishmentRepository().DeleteBanner(ctx, bannerId)
}

func (s *establishmentService) ListBanners(ctx context.Context, establishmentId uuid.UUID) ([]*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banners, err := uow.EstablishmentRepository().FindBanners(ctx, establishmentId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, &dto.BannerResponse{
			Id:        b.Id,
			ImageURL:  b.ImageURL,
			Caption:   b.Caption,
			SortOrder: b.SortOrder,
		})
	}
	return out, nil
}
