package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/data/redisStore"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

const reportKeyPrefix = "report:"

// RedisReportStore keeps one redis list per job id, one JSON-encoded
// document record per entry, in processing order.
type RedisReportStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisReportStore(ctx context.Context) *RedisReportStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisReportStore)
	if inner == nil {
		return nil
	}
	return &RedisReportStore{
		store:  inner,
		logger: logger_i.NewLogger("ReportStore"),
	}
}

func (s *RedisReportStore) SaveRecord(ctx context.Context, jobId string, record docModel.Record) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "job Id", jobId)
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := reportKeyPrefix + jobId
	if err := s.store.ListPush(ctx, key, data); err != nil {
		return err
	}
	log.Debug("Saved record to report", "file", record.FilePath)
	return s.store.ListExpire(ctx, key, config.RedisReportStoreTTL)
}

func (s *RedisReportStore) GetReport(ctx context.Context, jobId string) ([]docModel.Record, error) {
	raw, err := s.store.ListGetAll(ctx, reportKeyPrefix+jobId)
	if err != nil {
		return nil, err
	}

	records := make([]docModel.Record, 0, len(raw))
	for _, entry := range raw {
		var record docModel.Record
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			s.logger.Error("Corrupt report entry", "jobId", jobId, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func TestReportStore(store *redisStore.Store) *RedisReportStore {
	return &RedisReportStore{
		store:  store,
		logger: logger_i.NewLogger("test report store"),
	}
}
