package postgres_test

import (
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/certbridge/certbridge/pkg/certbridge/storage/postgres"
	"github.com/stretchr/testify/suite"
)

type ActivityStorageTestSuite struct {
	BaseTestSuite
	storage storage.ActivityStorage
}

func TestActivityStorage(t *testing.T) {
	suite.Run(t, new(ActivityStorageTestSuite))
}

func (s *ActivityStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *ActivityStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *ActivityStorageTestSuite) TestAddActivity() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	entry := storage.ActivityEntry{
		Level:      "warn",
		EntityType: "order",
		EntityID:   "order-1",
		Message:    "status changed to Processing",
		Context:    []byte(`{"provider_slug": "gogetssl"}`),
		CreatedAt:  1700000100,
	}

	err = s.storage.AddActivity(ctx, tx, entry)
	s.Require().NoError(err)

	var message string
	var entryContext []byte
	query := `SELECT message, context FROM activity_log WHERE entity_type = $1 AND entity_id = $2 AND level = $3 AND created_at = $4`
	row := tx.QueryRow(ctx, query, entry.EntityType, entry.EntityID, entry.Level, entry.CreatedAt)
	s.Require().NoError(row.Scan(&message, &entryContext))
	s.Equal(entry.Message, message)
	s.JSONEq(string(entry.Context), string(entryContext))

	err = tx.Commit(ctx)
	s.Require().NoError(err)
}
