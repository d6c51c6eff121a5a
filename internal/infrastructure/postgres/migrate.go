package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/diegofsiilva/cenas-bar/pkg/config"
)

// RunMigrations aplica as migrações pendentes do diretório configurado (DB_MIGRATIONS).
// Idempotente: sem migrações novas, não faz nada.
func RunMigrations(cfg config.DBConfig) error {
	sqlDB, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexão para migração: %w", err)
	}
	defer sqlDB.Close()

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("driver de migração: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Migrations, cfg.DBName, driver)
	if err != nil {
		return fmt.Errorf("criar migrador: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("aplicar migrações: %w", err)
	}
	return nil
}
