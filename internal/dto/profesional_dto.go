package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProfesionalRequest struct {
	Nombre       string  `json:"nombre"       validate:"required,min=2,max=100"`
	Apellido     string  `json:"apellido"     validate:"required,min=2,max=100"`
	Especialidad *string `json:"especialidad" validate:"omitempty,max=100"`
	Telefono     string  `json:"telefono"     validate:"required,max=20"`
	// Defaults to 50 when omitted.
	PorcentajeComision *decimal.Decimal `json:"porcentaje_comision" validate:"omitempty,min=0,max=100"`
	UsuarioID          *string          `json:"usuario_id"          validate:"omitempty,uuid"`
}

type ActualizarProfesionalRequest struct {
	Nombre             *string          `json:"nombre"              validate:"omitempty,min=2,max=100"`
	Apellido           *string          `json:"apellido"            validate:"omitempty,min=2,max=100"`
	Especialidad       *string          `json:"especialidad"        validate:"omitempty,max=100"`
	Telefono           *string          `json:"telefono"            validate:"omitempty,max=20"`
	PorcentajeComision *decimal.Decimal `json:"porcentaje_comision" validate:"omitempty,min=0,max=100"`
	Activo             *bool            `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProfesionalResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Apellido           string          `json:"apellido"`
	Especialidad       *string         `json:"especialidad"`
	Telefono           string          `json:"telefono"`
	PorcentajeComision decimal.Decimal `json:"porcentaje_comision"`
	Activo             bool            `json:"activo"`
}
