package service

import (
	"Beacon/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCategories() []*model.Category {
	return []*model.Category{
		{ID: 1, Name: "活动", Slug: "events", Keywords: model.StringList{"summit", "conference"}},
		{ID: 2, Name: "融资", Slug: "funding", Keywords: model.StringList{"raised", "funding", "series"}},
		{ID: 3, Name: "其他", Slug: "other", Keywords: model.StringList{}},
	}
}

func TestCategorizePost_EmptyText(t *testing.T) {
	assert.Equal(t, "other", CategorizePost("", testCategories()))
	assert.Equal(t, "other", CategorizePost("", nil))
}

func TestCategorizePost_CaseInsensitiveMatch(t *testing.T) {
	got := CategorizePost("Join us at the annual Summit", testCategories())
	assert.Equal(t, "events", got)
}

func TestCategorizePost_NoMatch(t *testing.T) {
	got := CategorizePost("just a regular update", testCategories())
	assert.Equal(t, "other", got)
}

func TestCategorizePost_FirstCategoryWins(t *testing.T) {
	// 两个分类同时命中时，列表里靠前的胜出
	text := "Summit recap: we raised a new fund"
	assert.Equal(t, "events", CategorizePost(text, testCategories()))

	reversed := []*model.Category{
		{ID: 2, Slug: "funding", Keywords: model.StringList{"raised"}},
		{ID: 1, Slug: "events", Keywords: model.StringList{"summit"}},
		{ID: 3, Slug: "other", Keywords: model.StringList{}},
	}
	assert.Equal(t, "funding", CategorizePost(text, reversed))
}

func TestCategorizePost_FallbackNeverMatched(t *testing.T) {
	categories := []*model.Category{
		{ID: 3, Slug: "other", Keywords: model.StringList{"summit"}},
		{ID: 1, Slug: "events", Keywords: model.StringList{"summit"}},
	}
	// 即使兜底分类配了关键词也会被跳过
	assert.Equal(t, "events", CategorizePost("Summit time", categories))
}

func TestCategoryIDBySlug(t *testing.T) {
	categories := testCategories()

	id := CategoryIDBySlug("funding", categories)
	assert.NotNil(t, id)
	assert.Equal(t, uint64(2), *id)

	assert.Nil(t, CategoryIDBySlug("missing", categories))
}
