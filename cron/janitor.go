package cron

import (
	"time"

	"go.uber.org/zap"

	"wayfarer/store"
	"wayfarer/utils"
)

const holdSweepInterval = 1 * time.Hour

// InitHoldJanitor runs the expired-hold sweeper in background. Holds live
// for 24 hours; the janitor keeps the in-memory store from accumulating
// dead ones over a long-running demo.
func InitHoldJanitor(sessions *store.MemoryStore) {
	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(holdSweepInterval)
		defer ticker.Stop()

		for range ticker.C {
			if purged := sessions.PurgeExpiredHolds(time.Now()); purged > 0 {
				logger.Info("Purged expired holds", zap.Int("count", purged))
			}
		}
	}()
}
