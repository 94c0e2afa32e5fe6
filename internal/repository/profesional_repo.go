package repository

import (
	"context"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfesionalRepository interface {
	Crear(ctx context.Context, p *model.Profesional) error
	Listar(ctx context.Context, empresaID uuid.UUID, incluirInactivos bool) ([]model.Profesional, error)
	ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Profesional, error)
	Actualizar(ctx context.Context, p *model.Profesional) error
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
	CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error)
}

type profesionalRepo struct{ db *gorm.DB }

func NewProfesionalRepository(db *gorm.DB) ProfesionalRepository { return &profesionalRepo{db: db} }

func (r *profesionalRepo) Crear(ctx context.Context, p *model.Profesional) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profesionalRepo) Listar(ctx context.Context, empresaID uuid.UUID, incluirInactivos bool) ([]model.Profesional, error) {
	var list []model.Profesional
	q := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre asc, apellido asc").Find(&list).Error
	return list, err
}

func (r *profesionalRepo) ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Profesional, error) {
	var p model.Profesional
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profesionalRepo) Actualizar(ctx context.Context, p *model.Profesional) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *profesionalRepo) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Delete(&model.Profesional{}, id).Error
}

func (r *profesionalRepo) CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cita{}).
		Where("empresa_id = ? AND profesional_id = ?", empresaID, id).
		Count(&count).Error
	return count, err
}
