package repository

import (
	"context"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HorarioRepository interface {
	// Upsert creates or replaces the schedule row of (empresa, dia_semana).
	Upsert(ctx context.Context, h *model.HorarioAtencion) error
	Listar(ctx context.Context, empresaID uuid.UUID) ([]model.HorarioAtencion, error)
	ObtenerPorDia(ctx context.Context, empresaID uuid.UUID, diaSemana int) (*model.HorarioAtencion, error)
}

type horarioRepo struct{ db *gorm.DB }

func NewHorarioRepository(db *gorm.DB) HorarioRepository { return &horarioRepo{db: db} }

func (r *horarioRepo) Upsert(ctx context.Context, h *model.HorarioAtencion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "empresa_id"}, {Name: "dia_semana"}},
		DoUpdates: clause.AssignmentColumns([]string{"abierto", "hora_inicio", "hora_fin", "updated_at"}),
	}).Create(h).Error
}

func (r *horarioRepo) Listar(ctx context.Context, empresaID uuid.UUID) ([]model.HorarioAtencion, error) {
	var list []model.HorarioAtencion
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("dia_semana asc").
		Find(&list).Error
	return list, err
}

func (r *horarioRepo) ObtenerPorDia(ctx context.Context, empresaID uuid.UUID, diaSemana int) (*model.HorarioAtencion, error) {
	var h model.HorarioAtencion
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND dia_semana = ?", empresaID, diaSemana).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}
