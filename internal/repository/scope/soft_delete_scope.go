package scope

import "gorm.io/gorm"

// WithSoftDeleted widens a query to the full set, soft-deleted rows included.
// Reserved for privileged/administrative read paths.
func WithSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// ExcludeSoftDeleted is the default-visibility set made explicit.
func ExcludeSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
