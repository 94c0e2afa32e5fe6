package infra

import (
	"fmt"

	"github.com/luisesse/beauty-manager/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (partial indexes in particular).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies AutoMigrate plus the manual schema patches.
// Safe to re-run: AutoMigrate is additive and every patch is guarded.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Empresa{},
		&model.Usuario{},
		&model.Cliente{},
		&model.Profesional{},
		&model.Servicio{},
		&model.HorarioAtencion{},
		&model.Cita{},
		&model.CategoriaGasto{},
		&model.Gasto{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL statements that GORM AutoMigrate cannot
// express. Each statement is guarded by an existence check so re-running on an
// already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// One non-cancelled cita per (empresa, profesional, fecha, hora).
		// The service checks for conflicts before writing; this index closes
		// the window between the check and the insert under concurrency.
		{"partial unique index on citas slot", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_citas_slot_activo') THEN
    CREATE UNIQUE INDEX idx_citas_slot_activo
        ON citas (empresa_id, profesional_id, fecha, hora)
        WHERE estado <> 'CANCELADO';
  END IF;
END $$`},
		// The recordatorio cron scans by fecha across tenants; keep that scan
		// off the main citas indexes.
		{"partial index for pending recordatorios", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_citas_recordatorio_pendiente') THEN
    CREATE INDEX idx_citas_recordatorio_pendiente
        ON citas (fecha)
        WHERE estado = 'CONFIRMADO' AND recordatorio_enviado = false;
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
