package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaGastoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
}

type CrearGastoRequest struct {
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	Descripcion string          `json:"descripcion"  validate:"required,min=2"`
	Monto       decimal.Decimal `json:"monto"        validate:"required,gt=0"`
	// Fecha defaults to today when omitted.
	Fecha string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarGastoRequest struct {
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Descripcion *string          `json:"descripcion"  validate:"omitempty,min=2"`
	Monto       *decimal.Decimal `json:"monto"        validate:"omitempty,gt=0"`
	Fecha       *string          `json:"fecha"        validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaGastoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	Categoria   string          `json:"categoria"`
	CategoriaID string          `json:"categoria_id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}
