package service

import (
	"context"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/pkg/logger"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"
	"sipspot-be/pkg/timewindow"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListUsers(ctx context.Context, principal authz.Principal, query *dto.AdminUserQuery) ([]*dto.AdminUserListResponse, error)
	BlockUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error
	UnblockUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error
	DeleteUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error
	RestoreUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error
	Stats(ctx context.Context, principal authz.Principal) (*dto.AdminStatsResponse, error)
	Logs(ctx context.Context, principal authz.Principal, query *dto.AdminLogQuery) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory          unitofwork.RepositoryFactory
	notificationService INotificationService
	logger              logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, notificationService INotificationService, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory:          uowFactory,
		notificationService: notificationService,
		logger:              log,
	}
}

func toAdminUser(user *entity.User) *dto.AdminUserListResponse {
	return &dto.AdminUserListResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		DeletedAt: user.DeletedAt,
	}
}

func (s *adminService) ListUsers(ctx context.Context, principal authz.Principal, query *dto.AdminUserQuery) ([]*dto.AdminUserListResponse, error) {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if query.Search != "" {
		limit := query.Limit
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		users, err := uow.UserRepository().SearchUsers(ctx, query.Search, limit, query.Offset)
		if err != nil {
			return nil, err
		}
		out := make([]*dto.AdminUserListResponse, 0, len(users))
		for _, u := range users {
			out = append(out, toAdminUser(u))
		}
		return out, nil
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query.Role != "" {
		specs = append(specs, specification.ByRole{Role: query.Role})
	}
	if query.Status != "" {
		specs = append(specs, specification.Filter("status", query.Status))
	}
	if query.Period != "" {
		if r := timewindow.Resolve(query.Period, time.Now()); !r.IsZero() {
			specs = append(specs, specification.CreatedBetween{Start: r.Start, End: r.End})
		}
	}
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: query.Offset})

	var users []*entity.User
	var err error
	if query.Deleted {
		// Admins see the full set, removed accounts included.
		users, err = uow.UserRepository().FindAllUnscoped(ctx, specs...)
	} else {
		users, err = uow.UserRepository().FindAll(ctx, specs...)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AdminUserListResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUser(u))
	}
	return out, nil
}

// hideOwnerContent soft-deletes everything a partner owns, stamping every
// affected row with one instant and recording it on the user. Rows the
// partner removed on their own keep their original timestamp, so a later
// restore brings back only what this cascade hid. The chain is explicit:
// establishments first, then the menus and orders hanging off them.
func (s *adminService) hideOwnerContent(ctx context.Context, uow unitofwork.UnitOfWork, ownerId uuid.UUID) error {
	at := time.Now().UTC().Truncate(time.Microsecond)

	estIds, err := uow.EstablishmentRepository().IdsByOwnerUnscoped(ctx, ownerId)
	if err != nil {
		return err
	}

	if err := uow.EstablishmentRepository().SoftDeleteByOwner(ctx, ownerId, at); err != nil {
		return err
	}
	if len(estIds) > 0 {
		if err := uow.MenuRepository().SoftDeleteByEstablishments(ctx, estIds, at); err != nil {
			return err
		}
		if err := uow.OrderRepository().SoftDeleteByEstablishments(ctx, estIds, at); err != nil {
			return err
		}
	}
	return uow.UserRepository().SetSuspendedAt(ctx, ownerId, &at)
}

// restoreOwnerContent reverses a prior hideOwnerContent by matching its
// stamp, then clears the stamp.
func (s *adminService) restoreOwnerContent(ctx context.Context, uow unitofwork.UnitOfWork, ownerId uuid.UUID, at time.Time) error {
	estIds, err := uow.EstablishmentRepository().IdsByOwnerUnscoped(ctx, ownerId)
	if err != nil {
		return err
	}

	if err := uow.EstablishmentRepository().RestoreByOwner(ctx, ownerId, at); err != nil {
		return err
	}
	if len(estIds) > 0 {
		if err := uow.MenuRepository().RestoreByEstablishments(ctx, estIds, at); err != nil {
			return err
		}
		if err := uow.OrderRepository().RestoreByEstablishments(ctx, estIds, at); err != nil {
			return err
		}
	}
	return uow.UserRepository().SetSuspendedAt(ctx, ownerId, nil)
}

func (s *adminService) BlockUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOneUnscoped(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}
	if user.Role == entity.UserRoleAdmin {
		return apperr.Validation("cannot block an admin account")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdateStatus(ctx, userId, string(entity.UserStatusBlocked)); err != nil {
		return err
	}

	// A blocked partner's public footprint goes with them. A stamp already
	// on the account means an earlier action hid it; leave that batch alone.
	if user.Role == entity.UserRolePartner && user.SuspendedAt == nil {
		if err := s.hideOwnerContent(ctx, uow, userId); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Warn("Admin", "User blocked", map[string]interface{}{
		"user_id":  userId,
		"admin_id": principal.Id,
	})

	if s.notificationService != nil {
		_ = s.notificationService.Notify(ctx, &entity.Notification{
			UserId: userId,
			Type:   entity.NotificationUserBlocked,
			Title:  "Account blocked",
			Body:   "Your account has been blocked by an administrator.",
		})
	}

	return nil
}

func (s *adminService) UnblockUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOneUnscoped(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdateStatus(ctx, userId, string(entity.UserStatusActive)); err != nil {
		return err
	}

	if user.Role == entity.UserRolePartner && user.SuspendedAt != nil {
		if err := s.restoreOwnerContent(ctx, uow, userId, *user.SuspendedAt); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("Admin", "User unblocked", map[string]interface{}{
		"user_id":  userId,
		"admin_id": principal.Id,
	})
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOneUnscoped(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}
	if user.Role == entity.UserRolePartner && user.SuspendedAt == nil {
		if err := s.hideOwnerContent(ctx, uow, userId); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *adminService) RestoreUser(ctx context.Context, principal authz.Principal, userId uuid.UUID) error {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOneUnscoped(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Restore(ctx, userId); err != nil {
		return err
	}
	if user.Role == entity.UserRolePartner && user.SuspendedAt != nil {
		if err := s.restoreOwnerContent(ctx, uow, userId, *user.SuspendedAt); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *adminService) Stats(ctx context.Context, principal authz.Principal) (*dto.AdminStatsResponse, error) {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := uow.UserRepository().Count(ctx, specification.ActiveUsers{})
	if err != nil {
		return nil, err
	}
	blockedUsers, err := uow.UserRepository().CountByStatus(ctx, string(entity.UserStatusBlocked))
	if err != nil {
		return nil, err
	}
	totalEstablishments, err := uow.EstablishmentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := uow.OrderRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:          totalUsers,
		ActiveUsers:         activeUsers,
		BlockedUsers:        int64(blockedUsers),
		TotalEstablishments: totalEstablishments,
		TotalOrders:         totalOrders,
	}, nil
}

func (s *adminService) Logs(ctx context.Context, principal authz.Principal, query *dto.AdminLogQuery) ([]logger.LogEntry, error) {
	if err := authz.UserManage.CanWrite(principal); err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.logger.GetLogs(query.Level, limit, query.Offset)
}
