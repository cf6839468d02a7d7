package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the two tables this service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&classModel{}, &bookingModel{})
}
