package repository

import (
	"context"
	"time"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CitaRepository interface {
	Crear(ctx context.Context, c *model.Cita) error
	Actualizar(ctx context.Context, c *model.Cita) error
	ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cita, error)
	// ExisteConflicto reports whether a non-cancelled cita already occupies
	// (profesional, fecha, hora) for the tenant, excluding excluirID when
	// editing an existing cita.
	ExisteConflicto(ctx context.Context, empresaID, profesionalID uuid.UUID, fecha time.Time, hora string, excluirID *uuid.UUID) (bool, error)
	ListarPorFecha(ctx context.Context, empresaID uuid.UUID, fecha time.Time) ([]model.Cita, error)
	ListarActivas(ctx context.Context, empresaID uuid.UUID, desde time.Time) ([]model.Cita, error)
	ListarPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID) ([]model.Cita, error)
	ListarRealizadas(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) ([]model.Cita, error)
	// SumMontoPorMetodo aggregates monto_cobrado of REALIZADO citas in the
	// inclusive range, grouped by metodo_pago.
	SumMontoPorMetodo(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) (map[string]decimal.Decimal, error)
	// ListarParaRecordatorio returns CONFIRMADO citas of the given fecha,
	// across tenants, that have not been reminded yet.
	ListarParaRecordatorio(ctx context.Context, fecha time.Time, limit int) ([]model.Cita, error)
	MarcarRecordatorioEnviado(ctx context.Context, id uuid.UUID) error
}

type citaRepo struct{ db *gorm.DB }

func NewCitaRepository(db *gorm.DB) CitaRepository { return &citaRepo{db: db} }

func (r *citaRepo) Crear(ctx context.Context, c *model.Cita) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *citaRepo) Actualizar(ctx context.Context, c *model.Cita) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *citaRepo) ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cita, error) {
	var c model.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Profesional").Preload("Servicio").
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *citaRepo) ExisteConflicto(ctx context.Context, empresaID, profesionalID uuid.UUID, fecha time.Time, hora string, excluirID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Cita{}).
		Where("empresa_id = ? AND profesional_id = ? AND fecha = ? AND hora = ?",
			empresaID, profesionalID, fecha, hora).
		Where("estado <> ?", model.CitaCancelado)
	if excluirID != nil {
		q = q.Where("id <> ?", *excluirID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *citaRepo) ListarPorFecha(ctx context.Context, empresaID uuid.UUID, fecha time.Time) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Profesional").Preload("Servicio").
		Where("empresa_id = ? AND fecha = ?", empresaID, fecha).
		Order("hora asc").
		Find(&citas).Error
	return citas, err
}

func (r *citaRepo) ListarActivas(ctx context.Context, empresaID uuid.UUID, desde time.Time) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Profesional").Preload("Servicio").
		Where("empresa_id = ? AND fecha >= ? AND estado IN ?",
			empresaID, desde, []string{model.CitaPendiente, model.CitaConfirmado}).
		Order("fecha asc, hora asc").
		Find(&citas).Error
	return citas, err
}

func (r *citaRepo) ListarPorCliente(ctx context.Context, empresaID, clienteID uuid.UUID) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).
		Preload("Profesional").Preload("Servicio").
		Where("empresa_id = ? AND cliente_id = ?", empresaID, clienteID).
		Order("fecha desc, hora desc").
		Find(&citas).Error
	return citas, err
}

func (r *citaRepo) ListarRealizadas(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) ([]model.Cita, error) {
	q := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Profesional").Preload("Servicio").
		Where("empresa_id = ? AND estado = ? AND fecha BETWEEN ? AND ?",
			empresaID, model.CitaRealizado, desde, hasta)
	if profesionalID != nil {
		q = q.Where("profesional_id = ?", *profesionalID)
	}
	var citas []model.Cita
	err := q.Order("fecha asc, hora asc").Find(&citas).Error
	return citas, err
}

func (r *citaRepo) SumMontoPorMetodo(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) (map[string]decimal.Decimal, error) {
	type row struct {
		MetodoPago string
		Total      decimal.Decimal
	}
	q := r.db.WithContext(ctx).Model(&model.Cita{}).
		Select("metodo_pago, COALESCE(SUM(monto_cobrado), 0) AS total").
		Where("empresa_id = ? AND estado = ? AND fecha BETWEEN ? AND ?",
			empresaID, model.CitaRealizado, desde, hasta)
	if profesionalID != nil {
		q = q.Where("profesional_id = ?", *profesionalID)
	}
	var rows []row
	if err := q.Group("metodo_pago").Scan(&rows).Error; err != nil {
		return nil, err
	}
	sums := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		sums[r.MetodoPago] = r.Total
	}
	return sums, nil
}

func (r *citaRepo) ListarParaRecordatorio(ctx context.Context, fecha time.Time, limit int) ([]model.Cita, error) {
	var citas []model.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Profesional").Preload("Servicio").
		Where("fecha = ? AND estado = ? AND recordatorio_enviado = false", fecha, model.CitaConfirmado).
		Order("hora asc").
		Limit(limit).
		Find(&citas).Error
	return citas, err
}

func (r *citaRepo) MarcarRecordatorioEnviado(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Cita{}).
		Where("id = ?", id).Update("recordatorio_enviado", true).Error
}
