package repository

import (
	"context"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpresaRepository interface {
	Crear(ctx context.Context, e *model.Empresa) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Empresa, error)
	// Eliminar removes the tenant; child rows cascade at the DB level.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Crear(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Empresa{}, id).Error
}
