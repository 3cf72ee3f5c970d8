package utils

import (
	"context"
	"sync"
	"time"

	"puresakura/models"

	"go.uber.org/zap"
)

// RowCounter is the spreadsheet probe the monitor runs.
type RowCounter interface {
	CountRows(ctx context.Context) (int, error)
}

var (
	currentHealth models.SheetHealth
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() models.SheetHealth {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckSheetHealth probes the spreadsheet once and stores the result.
func CheckSheetHealth(ctx context.Context, sheet RowCounter, timeout time.Duration) models.SheetHealth {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := models.SheetHealth{CheckedAt: time.Now()}
	rows, err := sheet.CountRows(ctx)
	if err != nil {
		// Only a coarse reason is exposed; the full error goes to the log.
		status.Error = "spreadsheet unreachable"
		GetLogger().Warn("health: spreadsheet probe failed", zap.Error(err))
	} else {
		status.Reachable = true
		status.Rows = rows
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, sheet RowCounter, interval, timeout time.Duration) {
	go func() {
		CheckSheetHealth(ctx, sheet, timeout)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckSheetHealth(ctx, sheet, timeout)
			}
		}
	}()
}
