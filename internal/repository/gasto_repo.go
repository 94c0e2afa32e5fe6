package repository

import (
	"context"
	"time"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GastoRepository interface {
	// Categorías
	CrearCategoria(ctx context.Context, c *model.CategoriaGasto) error
	ListarCategorias(ctx context.Context, empresaID uuid.UUID) ([]model.CategoriaGasto, error)
	ObtenerCategoriaPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.CategoriaGasto, error)
	ObtenerCategoriaPorNombre(ctx context.Context, empresaID uuid.UUID, nombre string) (*model.CategoriaGasto, error)
	EliminarCategoria(ctx context.Context, empresaID, id uuid.UUID) error
	CountGastosPorCategoria(ctx context.Context, empresaID, categoriaID uuid.UUID) (int64, error)

	// Gastos
	Crear(ctx context.Context, g *model.Gasto) error
	Listar(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) ([]model.Gasto, error)
	ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Gasto, error)
	Actualizar(ctx context.Context, g *model.Gasto) error
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
	// SumGastos totals gasto.monto over the inclusive range.
	SumGastos(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) CrearCategoria(ctx context.Context, c *model.CategoriaGasto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gastoRepo) ListarCategorias(ctx context.Context, empresaID uuid.UUID) ([]model.CategoriaGasto, error) {
	var list []model.CategoriaGasto
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("nombre asc").
		Find(&list).Error
	return list, err
}

func (r *gastoRepo) ObtenerCategoriaPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.CategoriaGasto, error) {
	var c model.CategoriaGasto
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gastoRepo) ObtenerCategoriaPorNombre(ctx context.Context, empresaID uuid.UUID, nombre string) (*model.CategoriaGasto, error) {
	var c model.CategoriaGasto
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND lower(nombre) = lower(?)", empresaID, nombre).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gastoRepo) EliminarCategoria(ctx context.Context, empresaID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Delete(&model.CategoriaGasto{}, id).Error
}

func (r *gastoRepo) CountGastosPorCategoria(ctx context.Context, empresaID, categoriaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Where("empresa_id = ? AND categoria_id = ?", empresaID, categoriaID).
		Count(&count).Error
	return count, err
}

func (r *gastoRepo) Crear(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) Listar(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) ([]model.Gasto, error) {
	var list []model.Gasto
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Where("empresa_id = ? AND fecha BETWEEN ? AND ?", empresaID, desde, hasta).
		Order("fecha asc").
		Find(&list).Error
	return list, err
}

func (r *gastoRepo) ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Gasto, error) {
	var g model.Gasto
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gastoRepo) Actualizar(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gastoRepo) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Delete(&model.Gasto{}, id).Error
}

func (r *gastoRepo) SumGastos(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("empresa_id = ? AND fecha BETWEEN ? AND ?", empresaID, desde, hasta).
		Scan(&total).Error
	return total, err
}
