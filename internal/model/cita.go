package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una cita.
// Lifecycle: PENDIENTE → CONFIRMADO (manual) → REALIZADO (finalizar)
//            any → CANCELADO (manual)
// REALIZADO and CANCELADO citas are excluded from future conflict checks.
const (
	CitaPendiente  = "PENDIENTE"
	CitaConfirmado = "CONFIRMADO"
	CitaRealizado  = "REALIZADO"
	CitaCancelado  = "CANCELADO"
)

// Métodos de pago.
const (
	PagoEfectivo      = "EFECTIVO"
	PagoTransferencia = "TRANSFERENCIA"
	PagoTarjeta       = "TARJETA"
	PagoCheque        = "CHEQUE"
	PagoOtro          = "OTRO"
)

// Cita is a booked appointment. Fecha is a calendar date and Hora a
// zero-padded 24h "HH:MM" string, so slot comparisons are plain string
// comparisons with no timezone arithmetic.
//
// A partial unique index on (empresa_id, profesional_id, fecha, hora)
// WHERE estado <> 'CANCELADO' backs up the service-level conflict check
// (see infra.applySchemaPatches) — two concurrent requests cannot both
// book the same slot.
type Cita struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID     uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	ClienteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfesionalID uuid.UUID `gorm:"type:uuid;not null;index"`
	ServicioID    uuid.UUID `gorm:"type:uuid;not null"`
	Fecha         time.Time `gorm:"type:date;not null;index"`
	Hora          string    `gorm:"type:varchar(5);not null"`
	// MontoCobrado stays nil until the cita is finalized; the write path
	// defaults it to the servicio's precio_estimado when unset.
	MontoCobrado *decimal.Decimal `gorm:"type:decimal(10,0)"`
	Estado       string           `gorm:"type:varchar(20);not null;default:'PENDIENTE'"`
	MetodoPago   string           `gorm:"type:varchar(20);not null;default:'EFECTIVO'"`
	Notas        *string
	// RecordatorioEnviado marks that the reminder email job already ran
	// for this cita, so the cron never enqueues it twice.
	RecordatorioEnviado bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
	Profesional *Profesional `gorm:"foreignKey:ProfesionalID;constraint:OnDelete:RESTRICT"`
	Servicio    *Servicio    `gorm:"foreignKey:ServicioID;constraint:OnDelete:RESTRICT"`
}

func (Cita) TableName() string { return "citas" }
