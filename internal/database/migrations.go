package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every persisted entity in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.SwapRequest{},
		&models.Feedback{},
		&models.Report{},
		&models.AdminMessage{},
	}
}

// Migrate creates or updates the schema and the composite indexes used by the
// list queries.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return err
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// AddIndexes adds composite indexes that struct tags do not describe.
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Swap listing by participant and status
		{&models.SwapRequest{}, "swap_requests", "idx_swap_requests_requester_status", "requester_id, status"},
		{&models.SwapRequest{}, "swap_requests", "idx_swap_requests_target_status", "target_id, status"},

		// Rating recompute and feedback listing
		{&models.Feedback{}, "feedback", "idx_feedback_reviewee_created", "reviewee_id, created_at"},

		// Moderation queue
		{&models.Report{}, "reports", "idx_reports_status_created", "status, created_at"},

		// Active broadcasts
		{&models.AdminMessage{}, "admin_messages", "idx_admin_messages_active_created", "is_active, created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Str("columns", idx.columns).Msg("created index")
	}

	return nil
}
