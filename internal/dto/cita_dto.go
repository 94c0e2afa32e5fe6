package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgendarCitaRequest struct {
	ClienteID     string `json:"cliente_id"     validate:"required,uuid"`
	ProfesionalID string `json:"profesional_id" validate:"required,uuid"`
	ServicioID    string `json:"servicio_id"    validate:"required,uuid"`
	Fecha         string `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Hora          string `json:"hora"           validate:"required,datetime=15:04"`
	MetodoPago    string `json:"metodo_pago"    validate:"omitempty,oneof=EFECTIVO TRANSFERENCIA TARJETA CHEQUE OTRO"`
}

// ActualizarCitaRequest re-runs the full validation chain, excluding the
// edited cita from the conflict check.
type ActualizarCitaRequest struct {
	ClienteID     string `json:"cliente_id"     validate:"required,uuid"`
	ProfesionalID string `json:"profesional_id" validate:"required,uuid"`
	ServicioID    string `json:"servicio_id"    validate:"required,uuid"`
	Fecha         string `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Hora          string `json:"hora"           validate:"required,datetime=15:04"`
	MetodoPago    string `json:"metodo_pago"    validate:"omitempty,oneof=EFECTIVO TRANSFERENCIA TARJETA CHEQUE OTRO"`
}

type FinalizarCitaRequest struct {
	MontoCobrado *decimal.Decimal `json:"monto_cobrado" validate:"omitempty,min=0"`
	MetodoPago   string           `json:"metodo_pago"   validate:"omitempty,oneof=EFECTIVO TRANSFERENCIA TARJETA CHEQUE OTRO"`
	Notas        *string          `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CitaResponse struct {
	ID           string           `json:"id"`
	Cliente      string           `json:"cliente"`
	Profesional  string           `json:"profesional"`
	Servicio     string           `json:"servicio"`
	Fecha        string           `json:"fecha"`
	Hora         string           `json:"hora"`
	MontoCobrado *decimal.Decimal `json:"monto_cobrado"`
	Estado       string           `json:"estado"`
	MetodoPago   string           `json:"metodo_pago"`
	Notas        *string          `json:"notas"`
}

type AgendaResponse struct {
	Fecha string         `json:"fecha"`
	Citas []CitaResponse `json:"citas"`
}
