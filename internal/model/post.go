package model

import (
	"time"
)

type Post struct {
	ID              uint64        `gorm:"primaryKey"`
	CompanyID       uint64        `gorm:"not null;index:idx_company_id" json:"company_id"`
	CategoryID      *uint64       `gorm:"index:idx_category_id" json:"category_id"`
	ActivityURN     string        `gorm:"type:varchar(128);not null;uniqueIndex:idx_activity_urn" json:"activity_urn"`
	FullURN         *string       `gorm:"type:varchar(255)" json:"full_urn"`
	PostURL         string        `gorm:"type:varchar(512);not null" json:"post_url"`
	TextContent     *string       `gorm:"type:text" json:"text_content"`
	PostedAt        time.Time     `gorm:"not null;index:idx_posted_at" json:"posted_at"`
	PostLanguage    string        `gorm:"type:varchar(10);not null;default:'en'" json:"post_language"`
	PostType        string        `gorm:"type:varchar(32);not null;default:'text'" json:"post_type"`
	EngagementScore int           `gorm:"not null;default:0;index:idx_engagement_score" json:"engagement_score"`
	Stats           PostStats     `gorm:"type:json;not null" json:"stats"`
	Media           JSONMap       `gorm:"type:json" json:"media"`
	Document        *PostDocument `gorm:"type:json" json:"document"`
	RawData         JSONRaw       `gorm:"type:json" json:"raw_data"` // 原始抓取报文，审计用，入库后不再解释
	CreatedAt       time.Time     `json:"created_at"`

	// 关联关系
	Company  Company   `gorm:"foreignKey:CompanyID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
