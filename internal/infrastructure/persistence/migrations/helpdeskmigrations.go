package migrations

import (
	"helpdesk/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
	)
}

func MigrateCategoryTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CategoryModel{},
	)
}

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.MessageModel{},
		&models.DailyTicketCounterModel{},
	)
}

// MigrateAll runs every table migration in dependency order.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateUserTables(db); err != nil {
		return err
	}
	if err := MigrateCategoryTables(db); err != nil {
		return err
	}
	return MigrateTicketTables(db)
}
