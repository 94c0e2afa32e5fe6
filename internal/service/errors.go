package service

import (
	"errors"
	"fmt"
)

// Validation failures of the cita scheduler. Each rejection carries a
// distinct, user-facing Spanish message; the handler layer renders them
// verbatim inside the apierror envelope.
var (
	ErrFechaPasada           = errors.New("No se pueden agendar citas en fechas pasadas.")
	ErrHoraPasada            = errors.New("La hora seleccionada ya ha pasado.")
	ErrSinHorarioConfigurado = errors.New("No hay horario de atención configurado para ese día.")
	ErrDiaCerrado            = errors.New("El local permanece cerrado ese día.")
	ErrFueraDeHorario        = errors.New("La hora está fuera del horario de atención.")
)

// ErrNoEncontrado marks a tenant-scoped lookup miss. Handlers map it to 404.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ConflictoCitaError is returned when the requested slot is already taken
// by a non-cancelled cita of the same professional.
type ConflictoCitaError struct {
	Profesional string
	Hora        string
}

func (e *ConflictoCitaError) Error() string {
	return fmt.Sprintf("El profesional %s ya tiene una cita agendada a las %s.", e.Profesional, e.Hora)
}

// ProtegidoError is returned when a delete is blocked by referencing rows
// (citas on a cliente/profesional/servicio, gastos on a categoría).
// No partial deletion ever occurs. Handlers map it to 409.
type ProtegidoError struct {
	Mensaje string
}

func (e *ProtegidoError) Error() string { return e.Mensaje }
