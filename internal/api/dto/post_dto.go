package dto

// PostDTO 帖子
type PostDTO struct {
	ID              uint64   `json:"id"`
	ActivityURN     string   `json:"activity_urn"`
	PostURL         string   `json:"post_url"`
	TextContent     string   `json:"text_content"`
	PostedAt        string   `json:"posted_at"`
	PostLanguage    string   `json:"post_language"`
	PostType        string   `json:"post_type"`
	EngagementScore int      `json:"engagement_score"`
	Stats           StatsRaw `json:"stats"`

	// Company
	CompanyID   uint64 `json:"company_id"`
	CompanyName string `json:"company_name"`
	CompanySlug string `json:"company_slug"`

	// Category
	CategorySlug  string `json:"category_slug,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
}

// PostListDTO 帖子查询参数
type PostListDTO struct {
	Days      int    `form:"days" validate:"min=0,max=365"`
	Limit     int    `form:"limit" validate:"min=0,max=100"`
	CompanyID uint64 `form:"company_id"`
}

// CategoryDTO 分类
type CategoryDTO struct {
	ID       uint64   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Keywords []string `json:"keywords"`
	Color    string   `json:"color"`
}
