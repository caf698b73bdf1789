package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/migrations"
)

// setupTestDB opens an in-memory sqlite database limited to a single
// connection. In-memory sqlite gives every pool connection its own database,
// and the single connection also serializes concurrent transactions the way
// a row lock would on MySQL.
func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.MigrateAll(gormDB))

	return gormDB
}

func createTestTicket(t *testing.T, userID uint, dailyID int) *ticket.Ticket {
	tk, err := ticket.NewTicket(userID, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetDailyID(dailyID))
	return tk
}
