package redis_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/antman-ilmtec/expenses-tracker-talenlio/internal/infra/db/mongodb/helpers"
)

// SaveExcelToRedis stages a generated workbook so identical export
// requests within the expiration window can be served without rebuilding.
func SaveExcelToRedis(redisURL string, key string, excelData *excelize.File, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf := new(bytes.Buffer)
	if err := excelData.Write(buf); err != nil {
		return fmt.Errorf("error serializing workbook: %w", err)
	}

	encodedData := base64.StdEncoding.EncodeToString(buf.Bytes())

	err := redisClient.Set(ctx, key, encodedData, expiration).Err()
	if err != nil {
		return fmt.Errorf("error staging workbook in Redis: %w", err)
	}

	return nil
}
