package repository

import (
	"context"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Crear(ctx context.Context, s *model.Servicio) error
	Listar(ctx context.Context, empresaID uuid.UUID) ([]model.Servicio, error)
	ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Servicio, error)
	Actualizar(ctx context.Context, s *model.Servicio) error
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
	CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error)
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Crear(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) Listar(ctx context.Context, empresaID uuid.UUID) ([]model.Servicio, error) {
	var list []model.Servicio
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("nombre asc").
		Find(&list).Error
	return list, err
}

func (r *servicioRepo) ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicioRepo) Actualizar(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Delete(&model.Servicio{}, id).Error
}

func (r *servicioRepo) CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cita{}).
		Where("empresa_id = ? AND servicio_id = ?", empresaID, id).
		Count(&count).Error
	return count, err
}
