package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servicio is a catalog entry (corte, tintura, manicura…).
// PrecioEstimado has no decimal places — amounts are guaraníes.
type Servicio struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID       uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Nombre          string    `gorm:"not null"`
	Descripcion     *string
	PrecioEstimado  decimal.Decimal `gorm:"type:decimal(10,0);not null"`
	DuracionMinutos int             `gorm:"not null;default:30"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Servicio) TableName() string { return "servicios" }
