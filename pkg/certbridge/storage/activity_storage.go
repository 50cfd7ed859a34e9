package storage

import (
	"context"
)

type ActivityEntry struct {
	RecID      int64  `json:"rec_id"`
	Level      string `json:"level"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Message    string `json:"message"`
	Context    []byte `json:"context,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

type ActivityStorage interface {
	TransactionInterface
	AddActivity(ctx context.Context, tx Tx, entry ActivityEntry) error
}
