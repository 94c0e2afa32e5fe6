package dto

import "github.com/shopspring/decimal"

// ReporteCajaResponse is the cash report for a date range [desde, hasta].
// Invariants: IngresosEfectivo + IngresosDigitales == TotalIngresos,
// SaldoNeto == TotalIngresos − TotalGastos, and EfectivoFisico ==
// IngresosEfectivo − TotalGastos (gastos assumed paid in cash).
type ReporteCajaResponse struct {
	FechaInicio       string          `json:"fecha_inicio"`
	FechaFin          string          `json:"fecha_fin"`
	TotalIngresos     decimal.Decimal `json:"total_ingresos"`
	IngresosEfectivo  decimal.Decimal `json:"ingresos_efectivo"`
	IngresosDigitales decimal.Decimal `json:"ingresos_digitales"`
	TotalGastos       decimal.Decimal `json:"total_gastos"`
	SaldoNeto         decimal.Decimal `json:"saldo_neto"`
	EfectivoFisico    decimal.Decimal `json:"efectivo_fisico"`
	Citas             []CitaResponse  `json:"citas"`
}

// ComisionResponse reports a professional's commission over a range.
type ComisionResponse struct {
	ProfesionalID      string          `json:"profesional_id"`
	Profesional        string          `json:"profesional"`
	FechaInicio        string          `json:"fecha_inicio"`
	FechaFin           string          `json:"fecha_fin"`
	TotalFacturado     decimal.Decimal `json:"total_facturado"`
	PorcentajeComision decimal.Decimal `json:"porcentaje_comision"`
	MontoComision      decimal.Decimal `json:"monto_comision"`
}
