package utils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	password := os.Getenv("REDIS_PASSWORD")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

const viewKeyTTL = 40 * 24 * time.Hour

func viewKey(day time.Time) string {
	return "views:" + day.Format("2006-01-02")
}

// IncrementDailyViews counts one single-listing page view toward today's
// bucket, feeding the admin dashboard chart.
func IncrementDailyViews(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	key := viewKey(time.Now())
	pipe := RedisClient.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, viewKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// EmptyViewSeries returns the label axis for the trailing window with all
// counts at zero.
func EmptyViewSeries(days int) ([]string, []int64) {
	labels := make([]string, 0, days+1)
	for i := days; i >= 0; i-- {
		labels = append(labels, time.Now().AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return labels, make([]int64, len(labels))
}

// ViewSeries returns per-day view counts for the trailing window, oldest
// first, with zeroes for days without traffic.
func ViewSeries(ctx context.Context, days int) ([]string, []int64, error) {
	labels := make([]string, 0, days+1)
	keys := make([]string, 0, days+1)
	for i := days; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		labels = append(labels, day.Format("2006-01-02"))
		keys = append(keys, viewKey(day))
	}

	counts := make([]int64, len(keys))
	if RedisClient == nil {
		return labels, counts, nil
	}

	values, err := RedisClient.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		var n int64
		if _, err := fmt.Sscan(s, &n); err == nil {
			counts[i] = n
		}
	}
	return labels, counts, nil
}
