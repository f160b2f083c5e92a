package util

import (
	"regexp"
	"strings"
)

var (
	slugStripRegex  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRegex  = regexp.MustCompile(`\s+`)
	slugHyphenRegex = regexp.MustCompile(`-{2,}`)
)

// Slugify 将公司展示名转换为 URL 安全的 slug
// 同一输入永远得到同一结果，且 Slugify(Slugify(x)) == Slugify(x)
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripRegex.ReplaceAllString(s, "")
	s = slugSpaceRegex.ReplaceAllString(s, "-")
	s = slugHyphenRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
