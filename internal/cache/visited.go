package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const visitedKey = "medharvest:visited"

// VisitedSet remembers product URLs that were already harvested so reruns
// can skip re-fetching them. It is an optional optimization: when Redis is
// unavailable every lookup reports unseen and the pipeline falls back to
// fetch-then-dedup.
type VisitedSet struct {
	client *redis.Client
	log    *slog.Logger
}

func NewVisitedSet(url string, log *slog.Logger) (*VisitedSet, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &VisitedSet{client: redis.NewClient(opt), log: log}, nil
}

func (v *VisitedSet) Seen(ctx context.Context, url string) bool {
	seen, err := v.client.SIsMember(ctx, visitedKey, url).Result()
	if err != nil {
		v.log.Warn("visited cache lookup failed", "url", url, "error", err)
		return false
	}
	return seen
}

func (v *VisitedSet) Mark(ctx context.Context, url string) {
	if err := v.client.SAdd(ctx, visitedKey, url).Err(); err != nil {
		v.log.Warn("visited cache update failed", "url", url, "error", err)
	}
}
