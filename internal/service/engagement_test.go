package service

import (
	"Beacon/internal/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEngagementScore(t *testing.T) {
	stats := &dto.StatsRaw{TotalReactions: 10, Comments: 3, Reposts: 2}
	assert.Equal(t, 22, CalculateEngagementScore(stats))
}

func TestCalculateEngagementScore_ZeroStats(t *testing.T) {
	assert.Equal(t, 0, CalculateEngagementScore(&dto.StatsRaw{}))
}

func TestCalculateEngagementScore_Monotonic(t *testing.T) {
	base := &dto.StatsRaw{TotalReactions: 5, Comments: 5, Reposts: 5}
	baseScore := CalculateEngagementScore(base)

	moreReactions := &dto.StatsRaw{TotalReactions: 6, Comments: 5, Reposts: 5}
	moreComments := &dto.StatsRaw{TotalReactions: 5, Comments: 6, Reposts: 5}
	moreReposts := &dto.StatsRaw{TotalReactions: 5, Comments: 5, Reposts: 6}

	assert.GreaterOrEqual(t, CalculateEngagementScore(moreReactions), baseScore)
	assert.GreaterOrEqual(t, CalculateEngagementScore(moreComments), baseScore)
	assert.GreaterOrEqual(t, CalculateEngagementScore(moreReposts), baseScore)
}

func TestNormalizeEngagementScore(t *testing.T) {
	assert.Equal(t, float64(0), NormalizeEngagementScore(100, 0))
	assert.InDelta(t, 10.0, NormalizeEngagementScore(100, 10000), 0.0001)
}

func TestCalculateEngagementRate(t *testing.T) {
	stats := &dto.StatsRaw{TotalReactions: 10, Comments: 5, Reposts: 5}

	assert.Equal(t, float64(0), CalculateEngagementRate(stats, 0))
	assert.InDelta(t, 2.0, CalculateEngagementRate(stats, 1000), 0.0001)

	// 粉丝极少时封顶 100
	assert.Equal(t, float64(100), CalculateEngagementRate(stats, 10))
}
