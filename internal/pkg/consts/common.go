package consts

const (
	// CategoryFallbackSlug 兜底分类，关键词匹配永远跳过它
	CategoryFallbackSlug = "other"

	DefaultPostLanguage = "en"
	DefaultPostType     = "text"
)
