package storage

import "time"

// PackageLocationModel is the GORM model for the package_locations table
type PackageLocationModel struct {
	CreatedAt    time.Time
	LastVerified time.Time `gorm:"not null;index:idx_last_verified"`
	Name         string    `gorm:"primaryKey"`
	RelativePath string    `gorm:"not null;default:''"`
	Root         string    `gorm:"primaryKey"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PackageLocationModel) TableName() string { return "package_locations" }
