package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a salon customer. CIRUC (cédula o RUC) is unique within the
// Empresa — the same document may exist under a different tenant.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cliente_empresa_ciruc;constraint:OnDelete:CASCADE"`
	CIRUC     string    `gorm:"column:ci_ruc;type:varchar(20);not null;uniqueIndex:idx_cliente_empresa_ciruc"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	Telefono  string    `gorm:"type:varchar(20);not null"`
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Citas []Cita `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
