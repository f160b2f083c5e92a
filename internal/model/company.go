package model

import (
	"time"
)

type Company struct {
	ID            uint64    `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_company_slug" json:"slug"`
	LinkedinURL   string    `gorm:"type:varchar(512);not null;default:''" json:"linkedin_url"`
	LogoURL       *string   `gorm:"type:varchar(512)" json:"logo_url"`
	FollowerCount int       `gorm:"not null;default:0" json:"follower_count"`
	IsTracked     bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_tracked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 关联关系
	Posts []Post `gorm:"foreignKey:CompanyID;references:ID"`
}

func (Company) TableName() string {
	return "vc_companies"
}
