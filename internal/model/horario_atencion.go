package model

import (
	"time"

	"github.com/google/uuid"
)

// HorarioAtencion defines the opening hours of one weekday.
// DiaSemana: 0 = lunes … 6 = domingo. One row per (empresa, weekday).
// Citas outside [HoraInicio, HoraFin) are rejected; a weekday with no row
// configured rejects everything (fail closed).
type HorarioAtencion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_horario_empresa_dia;constraint:OnDelete:CASCADE"`
	DiaSemana  int       `gorm:"not null;uniqueIndex:idx_horario_empresa_dia"`
	Abierto    bool      `gorm:"not null;default:true"`
	HoraInicio string    `gorm:"type:varchar(5);not null"`
	HoraFin    string    `gorm:"type:varchar(5);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (HorarioAtencion) TableName() string { return "horarios_atencion" }

// DiasSemana maps the weekday codes to their display names.
var DiasSemana = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}
