package postgres

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/storage"
)

func (s *_Storage) AddActivity(ctx context.Context, tx storage.Tx, entry storage.ActivityEntry) error {
	query := `
INSERT INTO activity_log (level, entity_type, entity_id, message, context, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := tx.Exec(
		ctx,
		query,
		entry.Level,
		entry.EntityType,
		entry.EntityID,
		entry.Message,
		entry.Context,
		entry.CreatedAt,
	)
	if err != nil {
		return err
	}
	return nil
}
