package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	CIRUC    string  `json:"ci_ruc"   validate:"required,min=1,max=20"`
	Nombre   string  `json:"nombre"   validate:"required,min=2,max=100"`
	Apellido string  `json:"apellido" validate:"required,min=2,max=100"`
	Telefono string  `json:"telefono" validate:"required,max=20"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type ActualizarClienteRequest struct {
	CIRUC    *string `json:"ci_ruc"   validate:"omitempty,min=1,max=20"`
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2,max=100"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID       string  `json:"id"`
	CIRUC    string  `json:"ci_ruc"`
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Telefono string  `json:"telefono"`
	Email    *string `json:"email"`
}

// HistorialClienteResponse lists a client's citas, newest first.
type HistorialClienteResponse struct {
	Cliente ClienteResponse `json:"cliente"`
	Citas   []CitaResponse  `json:"citas"`
}
