package store

import (
	"context"
	"sync"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
)

type InMemoryReportStore struct {
	reportLock *sync.RWMutex
	reportMap  map[string][]docModel.Record
}

func InitReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{
		reportLock: new(sync.RWMutex),
		reportMap:  make(map[string][]docModel.Record),
	}
}

func (store *InMemoryReportStore) SaveRecord(ctx context.Context, jobId string, record docModel.Record) error {
	store.reportLock.Lock()
	defer store.reportLock.Unlock()
	store.reportMap[jobId] = append(store.reportMap[jobId], record)
	return nil
}

func (store *InMemoryReportStore) GetReport(ctx context.Context, jobId string) ([]docModel.Record, error) {
	store.reportLock.RLock()
	defer store.reportLock.RUnlock()
	records := store.reportMap[jobId]
	out := make([]docModel.Record, len(records))
	copy(out, records)
	return out, nil
}
