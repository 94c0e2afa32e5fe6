package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profesional is a staff member who attends citas. It may be linked to a
// Usuario account for login; the link is optional (not every stylist logs in).
type Profesional struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID    uuid.UUID  `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	UsuarioID    *uuid.UUID `gorm:"type:uuid;index"`
	Nombre       string     `gorm:"not null"`
	Apellido     string     `gorm:"not null"`
	Especialidad *string
	Telefono     string `gorm:"type:varchar(20);not null"`
	// PorcentajeComision is the share of billed revenue owed to the
	// professional, 0–100.
	PorcentajeComision decimal.Decimal `gorm:"type:decimal(5,2);not null;default:50"`
	Activo             bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Citas []Cita `gorm:"foreignKey:ProfesionalID"`
}

func (Profesional) TableName() string { return "profesionales" }
