package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ConfigurarHorarioRequest creates or replaces the schedule of one weekday.
type ConfigurarHorarioRequest struct {
	Abierto    bool   `json:"abierto"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin    string `json:"hora_fin"    validate:"required,datetime=15:04"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HorarioResponse struct {
	DiaSemana  int    `json:"dia_semana"`
	Dia        string `json:"dia"`
	Abierto    bool   `json:"abierto"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}
