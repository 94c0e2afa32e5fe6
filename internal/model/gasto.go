package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaGasto groups expenses (insumos, alquiler, servicios públicos…).
// Nombre is unique within the Empresa. A categoría with gastos attached
// cannot be deleted.
type CategoriaGasto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_catgasto_empresa_nombre;constraint:OnDelete:CASCADE"`
	Nombre    string    `gorm:"not null;uniqueIndex:idx_catgasto_empresa_nombre"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoriaGasto) TableName() string { return "categorias_gasto" }

// Gasto is a cash expense. Fecha defaults to today when not supplied.
type Gasto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID   uuid.UUID       `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(10,0);not null"`
	Fecha       time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *CategoriaGasto `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT"`
}

func (Gasto) TableName() string { return "gastos" }
