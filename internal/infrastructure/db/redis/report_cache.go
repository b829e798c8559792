package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

const (
	summaryKey = "reports:summary"
	summaryTTL = 5 * time.Minute
)

// ReportCache stores the computed report summary in Redis for a fixed
// window so dashboard reloads do not re-aggregate the whole store.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached summary, or (nil, nil) on a cache miss.
func (c *ReportCache) Get(ctx context.Context) (*ports.ReportSummary, error) {
	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var summary ports.ReportSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &summary, nil
}

// Set stores summary, expiring after summaryTTL.
func (c *ReportCache) Set(ctx context.Context, summary *ports.ReportSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, summaryKey, payload, summaryTTL).Err()
}
