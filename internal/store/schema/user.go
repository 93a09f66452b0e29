package schema

import (
	"time"
)

// User represents the users table - one record per cable subscriber
type User struct {
	// ID is an opaque unique identifier (UUID), assigned on creation
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Name is the subscriber's display name, trimmed and unique across all users
	Name string `gorm:"column:name;not null;uniqueIndex:idx_users_name;type:text"`
	// BoxID is the set-top box number. 0 means "unset"; non-zero values are
	// unique across all users (partial index excludes the unset default)
	BoxID int64 `gorm:"column:box_id;not null;default:0;uniqueIndex:idx_users_box_id,where:box_id <> 0"`
	// Phone is an optional international phone number (+ optional, 1-15 digits)
	Phone *string `gorm:"column:phone;type:text"`
	// Place is optional free text describing the subscriber's locality
	Place *string `gorm:"column:place;type:text;index"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
