package dto

import (
	"github.com/goccy/go-json"
)

// WebhookRequest n8n 推送的批量抓取结果
type WebhookRequest struct {
	Posts []*LinkedInPostRaw `json:"posts"`
}

// LinkedInPostRaw Apify 抓取器输出的单条帖子
type LinkedInPostRaw struct {
	ActivityURN      string                 `json:"activity_urn"`
	FullURN          string                 `json:"full_urn"`
	PostURL          string                 `json:"post_url"`
	Text             string                 `json:"text"`
	PostedAt         PostedAtRaw            `json:"posted_at"`
	PostLanguageCode string                 `json:"post_language_code"`
	PostType         string                 `json:"post_type"`
	Author           AuthorRaw              `json:"author"`
	Stats            StatsRaw               `json:"stats"`
	Media            map[string]interface{} `json:"media"`
	Document         *DocumentRaw           `json:"document"`
	SourceCompany    string                 `json:"source_company"`

	raw json.RawMessage
}

// UnmarshalJSON 在解析字段的同时保留原始报文，供审计落库
func (p *LinkedInPostRaw) UnmarshalJSON(b []byte) error {
	type alias LinkedInPostRaw
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = LinkedInPostRaw(a)
	p.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Raw 返回未经解释的原始报文
func (p *LinkedInPostRaw) Raw() json.RawMessage {
	return p.raw
}

type PostedAtRaw struct {
	Relative  string `json:"relative"`
	IsEdited  bool   `json:"is_edited"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"` // epoch 毫秒
}

type AuthorRaw struct {
	Name          string `json:"name"`
	FollowerCount int    `json:"follower_count"`
	CompanyURL    string `json:"company_url"`
	LogoURL       string `json:"logo_url"`
}

type StatsRaw struct {
	TotalReactions int `json:"total_reactions"`
	Like           int `json:"like"`
	Love           int `json:"love"`
	Celebrate      int `json:"celebrate"`
	Comments       int `json:"comments"`
	Reposts        int `json:"reposts"`
}

type DocumentRaw struct {
	Title     string `json:"title"`
	PageCount int    `json:"page_count"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// WebhookResults 单批处理的聚合结果
type WebhookResults struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

type WebhookResponse struct {
	Message string          `json:"message"`
	Results *WebhookResults `json:"results"`
}
