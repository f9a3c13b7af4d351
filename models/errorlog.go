package models

import "gorm.io/gorm"

// ErrorLog records background-job failures so sweeps never die silently.
type ErrorLog struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	Source  string `gorm:"size:64"`
	Message string
}
