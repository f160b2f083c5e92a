package dto

// CompanyDTO 公司
type CompanyDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	LinkedinURL   string  `json:"linkedin_url"`
	LogoURL       *string `json:"logo_url"`
	FollowerCount int     `json:"follower_count"`
	IsTracked     bool    `json:"is_tracked"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CompanyMetricDTO 公司每日互动快照
type CompanyMetricDTO struct {
	MetricDate      string  `json:"metric_date"`
	PostCount       int     `json:"post_count"`
	TotalEngagement int     `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
}
