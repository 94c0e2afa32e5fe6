package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearServicioRequest struct {
	Nombre          string          `json:"nombre"           validate:"required,min=2,max=100"`
	Descripcion     *string         `json:"descripcion"`
	PrecioEstimado  decimal.Decimal `json:"precio_estimado"  validate:"required,min=0"`
	DuracionMinutos int             `json:"duracion_minutos" validate:"omitempty,gt=0"`
}

type ActualizarServicioRequest struct {
	Nombre          *string          `json:"nombre"           validate:"omitempty,min=2,max=100"`
	Descripcion     *string          `json:"descripcion"`
	PrecioEstimado  *decimal.Decimal `json:"precio_estimado"  validate:"omitempty,min=0"`
	DuracionMinutos *int             `json:"duracion_minutos" validate:"omitempty,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ServicioResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Descripcion     *string         `json:"descripcion"`
	PrecioEstimado  decimal.Decimal `json:"precio_estimado"`
	DuracionMinutos int             `json:"duracion_minutos"`
}
