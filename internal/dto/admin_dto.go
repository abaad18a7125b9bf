package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserListResponse struct {
	Id        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type AdminUserQuery struct {
	Role    string `query:"role"`
	Status  string `query:"status"`
	Search  string `query:"search"`
	Period  string `query:"period"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
	Deleted bool   `query:"deleted"`
}

type AdminStatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	ActiveUsers         int64 `json:"active_users"`
	BlockedUsers        int64 `json:"blocked_users"`
	TotalEstablishments int64 `json:"total_establishments"`
	TotalOrders         int64 `json:"total_orders"`
}

type AdminLogQuery struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
