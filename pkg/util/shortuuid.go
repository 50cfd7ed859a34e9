package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a random UUID encoded as base58. Order ids use it so they
// stay short enough to paste into provider portals.
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
