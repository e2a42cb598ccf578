package models

import "time"

type ImportRun struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Filename     string `gorm:"type:text;not null"`
	TotalRows    int    `gorm:"not null;default:0"`
	ValidRows    int    `gorm:"not null;default:0"`
	SuccessCount int    `gorm:"not null;default:0"`
	ErrorCount   int    `gorm:"not null;default:0"`
	DurationMs   int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (ImportRun) TableName() string {
	return "import_runs"
}
