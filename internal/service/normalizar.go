package service

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Layouts shared by the whole service layer. Fechas travel as "2006-01-02"
// strings and horas as zero-padded 24h "HH:MM", so ordering comparisons are
// plain string comparisons with no timezone arithmetic.
const (
	LayoutFecha = "2006-01-02"
	LayoutHora  = "15:04"
)

var titulador = cases.Title(language.Spanish)

// NormalizarNombre title-cases a personal name or label ("ana maría" →
// "Ana María"). Explicit write-path normalization: callers invoke it before
// persisting, nothing happens implicitly on save.
func NormalizarNombre(s string) string {
	return titulador.String(strings.TrimSpace(s))
}

// ParseFecha parses a "2006-01-02" date into a midnight-UTC time, matching
// how the `date` columns round-trip through the driver.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(LayoutFecha, s)
}

// SoloFecha truncates a timestamp to its calendar date in local time.
func SoloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DiaSemana maps Go's Sunday-first weekday to the lunes-first 0–6 code the
// horario rows use (0 = lunes … 6 = domingo).
func DiaSemana(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
