package model

import (
	"time"
)

// CompanyMetric 公司互动数据的每日快照
type CompanyMetric struct {
	ID              uint64    `gorm:"primaryKey"`
	CompanyID       uint64    `gorm:"not null;index:idx_company_date,unique"`
	MetricDate      time.Time `gorm:"not null;index:idx_company_date,unique;column:metric_date"`
	PostCount       int       `gorm:"not null;default:0"`
	TotalEngagement int       `gorm:"not null;default:0"`
	AvgEngagement   float64   `gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (CompanyMetric) TableName() string {
	return "company_daily_metrics"
}
