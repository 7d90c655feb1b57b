package postgres

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

// MigrateUp runs every migration not yet recorded in the migrations table,
// recording each as it completes.
// A failed migration halts the run and wraps waypoint.ErrUnexpected;
// migrations after the failed one do not run.
func MigrateUp(db *gorm.DB, migrations []Migration) error {
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	toRun, err := migrationsToRun(db, migrations)
	if err != nil {
		return err
	}

	for _, m := range toRun {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("%w: migration %q failed: %s", waypoint.ErrUnexpected, m.Key, err)
		}

		if err := recordMigration(db, m.Key); err != nil {
			return err
		}
	}

	return nil
}

func ensureMigrationsTable(db *gorm.DB) error {
	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("%w: cannot create migrations table: %s", waypoint.ErrUnexpected, err)
	}

	return nil
}

type migrationKeyCol struct {
	Key string
}

func migrationsToRun(db *gorm.DB, all []Migration) ([]Migration, error) {
	var ran []migrationKeyCol
	res := db.Raw("SELECT key FROM migrations;")
	if res.Error != nil {
		return nil, fmt.Errorf("%w: cannot fetch ran migrations: %s", waypoint.ErrUnexpected, res.Error)
	}
	res.Scan(&ran)

	if len(ran) == 0 {
		return all, nil
	}

	ranKeys := make(map[string]bool, len(ran))
	for _, r := range ran {
		ranKeys[r.Key] = true
	}

	var toRun []Migration
	for _, m := range all {
		if !ranKeys[m.Key] {
			toRun = append(toRun, m)
		}
	}

	return toRun, nil
}

func recordMigration(db *gorm.DB, key string) error {
	err := db.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, key, time.Now().Unix()).Error
	if err != nil {
		return fmt.Errorf("%w: cannot record migration %q: %s", waypoint.ErrUnexpected, key, err)
	}

	return nil
}
