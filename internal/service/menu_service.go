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

type IMenuService interface {
	CreateCategory(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error)
	UpdateCategory(ctx context.Context, principal authz.Principal, establishmentId, categoryId uuid.UUID, req *dto.UpdateMenuCategoryRequest) (*dto.MenuCategoryResponse, error)
	DeleteCategory(ctx context.Context, principal authz.Principal, establishmentId, categoryId uuid.UUID) error

	CreateItem(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	UpdateItem(ctx context.Context, principal authz.Principal, establishmentId, itemId uuid.UUID, req *dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	DeleteItem(ctx context.Context, principal authz.Principal, establishmentId, itemId uuid.UUID) error

	GetMenu(ctx context.Context, establishmentId uuid.UUID, availableOnly bool) ([]*dto.MenuCategoryResponse, error)
	GetItem(ctx context.Context, establishmentId, itemId uuid.UUID) (*dto.MenuItemResponse, error)
}

type menuService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMenuService(uowFactory unitofwork.RepositoryFactory) IMenuService {
	return &menuService{uowFactory: uowFactory}
}

// ownedEstablishment loads the establishment and checks the write policy
// against its owner.
func (s *menuService) ownedEstablishment(ctx context.Context, uow unitofwork.UnitOfWork, principal authz.Principal, establishmentId uuid.UUID, policy authz.Policy) (*entity.Establishment, error) {
	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: establishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	if err := policy.CanWriteOwned(principal, est.OwnerId); err != nil {
		return nil, err
	}
	return est, nil
}

func toCategoryResponse(cat *entity.MenuCategory, items []*entity.MenuItem) *dto.MenuCategoryResponse {
	resp := &dto.MenuCategoryResponse{
		Id:        cat.Id,
		Name:      cat.Name,
		SortOrder: cat.SortOrder,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, *toItemResponse(item))
	}
	return resp
}

func toItemResponse(item *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		Id:          item.Id,
		CategoryId:  item.CategoryId,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		DeletedAt:   item.DeletedAt,
	}
}

func (s *menuService) CreateCategory(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuWrite); err != nil {
		return nil, err
	}

	cat := &entity.MenuCategory{
		Id:              uuid.New(),
		EstablishmentId: establishmentId,
		Name:            req.Name,
		SortOrder:       req.SortOrder,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uow.MenuRepository().CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	return toCategoryResponse(cat, nil), nil
}

func (s *menuService) UpdateCategory(ctx context.Context, principal authz.Principal, establishmentId, categoryId uuid.UUID, req *dto.UpdateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuWrite); err != nil {
		return nil, err
	}

	cat, err := uow.MenuRepository().FindOneCategory(ctx, specification.ByID{ID: categoryId}, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("menu category")
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	cat.UpdatedAt = time.Now()

	if err := uow.MenuRepository().UpdateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat, nil), nil
}

func (s *menuService) DeleteCategory(ctx context.Context, principal authz.Principal, establishmentId, categoryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuDrop); err != nil {
		return err
	}

	// Items under the category go with it.
	items, err := uow.MenuRepository().FindItems(ctx, specification.ByCategory{CategoryID: categoryId})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, item := range items {
		if err := uow.MenuRepository().DeleteItem(ctx, item.Id); err != nil {
			return err
		}
	}
	if err := uow.MenuRepository().DeleteCategory(ctx, categoryId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *menuService) CreateItem(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, req *dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuWrite); err != nil {
		return nil, err
	}

	cat, err := uow.MenuRepository().FindOneCategory(ctx, specification.ByID{ID: req.CategoryId}, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound("menu category")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &entity.MenuItem{
		Id:              uuid.New(),
		EstablishmentId: establishmentId,
		CategoryId:      req.CategoryId,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Available:       available,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uow.MenuRepository().CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}

func (s *menuService) UpdateItem(ctx context.Context, principal authz.Principal, establishmentId, itemId uuid.UUID, req *dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuWrite); err != nil {
		return nil, err
	}

	item, err := uow.MenuRepository().FindOneItem(ctx, specification.ByID{ID: itemId}, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("menu item")
	}

	if req.CategoryId != nil {
		cat, err := uow.MenuRepository().FindOneCategory(ctx, specification.ByID{ID: *req.CategoryId}, specification.ByEstablishment{EstablishmentID: establishmentId})
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, apperr.NotFound("menu category")
		}
		item.CategoryId = *req.CategoryId
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	item.UpdatedAt = time.Now()

	if err := uow.MenuRepository().UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func (s *menuService) DeleteItem(ctx context.Context, principal authz.Principal, establishmentId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedEstablishment(ctx, uow, principal, establishmentId, authz.MenuDrop); err != nil {
		return err
	}

	item, err := uow.MenuRepository().FindOneItem(ctx, specification.ByID{ID: itemId}, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.NotFound("menu item")
	}

	return uow.MenuRepository().DeleteItem(ctx, itemId)
}

func (s *menuService) GetMenu(ctx context.Context, establishmentId uuid.UUID, availableOnly bool) ([]*dto.MenuCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: establishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}

	cats, err := uow.MenuRepository().FindCategories(ctx,
		specification.ByEstablishment{EstablishmentID: establishmentId},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	itemSpecs := []specification.Specification{
		specification.ByEstablishment{EstablishmentID: establishmentId},
		specification.OrderBy{Field: "name"},
	}
	if availableOnly {
		itemSpecs = append(itemSpecs, specification.AvailableOnly{})
	}
	items, err := uow.MenuRepository().FindItems(ctx, itemSpecs...)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*entity.MenuItem)
	for _, item := range items {
		byCategory[item.CategoryId] = append(byCategory[item.CategoryId], item)
	}

	out := make([]*dto.MenuCategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCategoryResponse(cat, byCategory[cat.Id]))
	}
	return out, nil
}

func (s *menuService) GetItem(ctx context.Context, establishmentId, itemId uuid.UUID) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.MenuRepository().FindOneItem(ctx, specification.ByID{ID: itemId}, specification.ByEstablishment{EstablishmentID: establishmentId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("menu item")
	}
	return toItemResponse(item), nil
}
