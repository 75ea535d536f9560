package redis_repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
)

// FindExcelBytesByKey returns the staged workbook bytes, or (nil, nil)
// when the key is absent or expired.
func FindExcelBytesByKey(redisURL string, key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encodedExcel, err := redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	excelBytes, err := base64.StdEncoding.DecodeString(encodedExcel)
	if err != nil {
		return nil, fmt.Errorf("error decoding staged workbook: %w", err)
	}

	return excelBytes, nil
}
