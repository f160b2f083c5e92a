package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// PostStats 互动统计，total_reactions 是计分依据，细分项仅供展示
type PostStats struct {
	TotalReactions int `json:"total_reactions"`
	Like           int `json:"like"`
	Love           int `json:"love"`
	Celebrate      int `json:"celebrate"`
	Comments       int `json:"comments"`
	Reposts        int `json:"reposts"`
}

func (s PostStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *PostStats) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, s)
}

// PostDocument 附件文档元信息（PDF 轮播等）
type PostDocument struct {
	Title     string `json:"title"`
	PageCount int    `json:"page_count"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

func (d *PostDocument) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *PostDocument) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, d)
}
