package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Category 帖子分类，关键词列表由运营维护，摄入管道只读
type Category struct {
	ID        uint64     `gorm:"primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_slug" json:"slug"`
	Keywords  StringList `gorm:"type:json;not null" json:"keywords"`
	Color     string     `gorm:"type:varchar(20);not null;default:''" json:"color"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Category) TableName() string {
	return "post_categories"
}

// StringList 存储有序关键词列表
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, s)
}
