package repository

import (
	"context"

	"github.com/luisesse/beauty-manager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines tenant-scoped CRUD for clientes. Every query
// filters by empresaID — a cliente of another tenant behaves as not found.
type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context, empresaID uuid.UUID) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cliente, error)
	ObtenerPorCIRUC(ctx context.Context, empresaID uuid.UUID, ciruc string) (*model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
	// CountCitas counts citas referencing the cliente, for delete protection.
	CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Listar(ctx context.Context, empresaID uuid.UUID) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("nombre asc, apellido asc").
		Find(&list).Error
	return list, err
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, empresaID, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND id = ?", empresaID, id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) ObtenerPorCIRUC(ctx context.Context, empresaID uuid.UUID, ciruc string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND ci_ruc = ?", empresaID, ciruc).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) CountCitas(ctx context.Context, empresaID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cita{}).
		Where("empresa_id = ? AND cliente_id = ?", empresaID, id).
		Count(&count).Error
	return count, err
}
