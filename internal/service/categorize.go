package service

import (
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"strings"
)

// CategorizePost 按关键词给帖子文本定类，返回分类 slug
// 分类顺序即匹配优先级，命中第一个就返回；没有任何命中时落到兜底分类
func CategorizePost(text string, categories []*model.Category) string {
	if text == "" {
		return consts.CategoryFallbackSlug
	}

	lowerText := strings.ToLower(text)

	for _, category := range categories {
		// 兜底分类不参与匹配
		if category.Slug == consts.CategoryFallbackSlug {
			continue
		}

		for _, keyword := range category.Keywords {
			if strings.Contains(lowerText, strings.ToLower(keyword)) {
				return category.Slug
			}
		}
	}

	return consts.CategoryFallbackSlug
}

// CategoryIDBySlug 按 slug 查分类 ID，找不到返回 nil
func CategoryIDBySlug(slug string, categories []*model.Category) *uint64 {
	for _, category := range categories {
		if category.Slug == slug {
			id := category.ID
			return &id
		}
	}
	return nil
}
