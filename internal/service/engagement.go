package service

import (
	"Beacon/internal/api/dto"
)

// CalculateEngagementScore 加权互动分
// 反应是低成本行为记 1 倍，评论记 2 倍，转发背书最强记 3 倍
// total_reactions 为准，like/love/celebrate 细分不参与计分
func CalculateEngagementScore(stats *dto.StatsRaw) int {
	score := stats.TotalReactions + stats.Comments*2 + stats.Reposts*3
	if score < 0 {
		return 0
	}
	return score
}

// NormalizeEngagementScore 每千粉丝互动分，便于横向比较不同体量的公司
func NormalizeEngagementScore(engagementScore int, followerCount int) float64 {
	if followerCount == 0 {
		return 0
	}
	return float64(engagementScore) / float64(followerCount) * 1000
}

// CalculateEngagementRate 互动率百分比，上限 100
func CalculateEngagementRate(stats *dto.StatsRaw, followerCount int) float64 {
	if followerCount == 0 {
		return 0
	}
	totalEngagement := stats.TotalReactions + stats.Comments + stats.Reposts
	rate := float64(totalEngagement) / float64(followerCount) * 100
	if rate > 100 {
		return 100
	}
	return rate
}
