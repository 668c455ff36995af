package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agency-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	lastImportSummaryKey = "agency:import:last_summary"
	policyStatsKey       = "agency:policies:stats"

	statsTTL = 5 * time.Minute
)

var ErrCacheMiss = errors.New("cache miss")

// SummaryCache stores the latest import summary and dashboard stats.
// Everything here is best-effort; callers log and move on when it fails.
type SummaryCache struct {
	client *Client
}

func NewSummaryCache(client *Client) *SummaryCache {
	return &SummaryCache{client: client}
}

func (c *SummaryCache) StoreLastSummary(ctx context.Context, summary *models.ImportSummary) error {
	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal import summary: %w", err)
	}
	if err := c.client.GetClient().Set(ctx, lastImportSummaryKey, body, 0).Err(); err != nil {
		return fmt.Errorf("failed to cache import summary: %w", err)
	}
	return nil
}

func (c *SummaryCache) LastSummary(ctx context.Context) (*models.ImportSummary, error) {
	body, err := c.client.GetClient().Get(ctx, lastImportSummaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read import summary: %w", err)
	}
	var summary models.ImportSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal import summary: %w", err)
	}
	return &summary, nil
}

func (c *SummaryCache) StorePolicyStats(ctx context.Context, stats *models.PolicyStats) error {
	body, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal policy stats: %w", err)
	}
	if err := c.client.GetClient().Set(ctx, policyStatsKey, body, statsTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache policy stats: %w", err)
	}
	return nil
}

func (c *SummaryCache) PolicyStats(ctx context.Context) (*models.PolicyStats, error) {
	body, err := c.client.GetClient().Get(ctx, policyStatsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read policy stats: %w", err)
	}
	var stats models.PolicyStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy stats: %w", err)
	}
	return &stats, nil
}

// InvalidatePolicyStats drops the cached dashboard stats after a write.
func (c *SummaryCache) InvalidatePolicyStats(ctx context.Context) error {
	return c.client.GetClient().Del(ctx, policyStatsKey).Err()
}
