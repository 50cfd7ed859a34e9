// Package activity is the module's only observability surface toward the
// host platform: a best-effort log call that never fails its caller.
package activity

import (
	"context"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Logger struct {
	storage storage.ActivityStorage
}

func NewLogger(s storage.ActivityStorage) *Logger {
	return &Logger{storage: s}
}

// Log records one activity entry. Logging is best-effort: storage failures
// are downgraded to a process log line and never propagate.
func (l *Logger) Log(ctx context.Context, level, entityType, entityID, message string, logContext map[string]any) {
	entry := storage.ActivityEntry{
		Level:      level,
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		CreatedAt:  time.Now().Unix(),
	}
	if len(logContext) > 0 {
		if raw, err := json.Marshal(logContext); err == nil {
			entry.Context = raw
		}
	}

	tx, ctx, err := l.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		logrus.Warnf("activity log: fail to CreateTx(): %v", err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := l.storage.AddActivity(ctx, tx, entry); err != nil {
		logrus.Warnf("activity log: fail to AddActivity(): %v", err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		logrus.Warnf("activity log: fail to Commit(): %v", err)
	}
}
