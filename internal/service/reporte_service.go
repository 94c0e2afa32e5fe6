package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/infra"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

type ReporteService interface {
	// ReporteCaja aggregates REALIZADO citas and gastos over the inclusive
	// range [desde, hasta].
	ReporteCaja(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (*dto.ReporteCajaResponse, error)
	// ReporteCajaPDF renders the same report to a PDF file and returns its path.
	ReporteCajaPDF(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (string, error)
	ComisionProfesional(ctx context.Context, empresaID, profesionalID uuid.UUID, desde, hasta time.Time) (*dto.ComisionResponse, error)
}

type reporteService struct {
	citaRepo        repository.CitaRepository
	gastoRepo       repository.GastoRepository
	profesionalRepo repository.ProfesionalRepository
	empresaRepo     repository.EmpresaRepository
	pdfStoragePath  string
}

func NewReporteService(
	citaRepo repository.CitaRepository,
	gastoRepo repository.GastoRepository,
	profesionalRepo repository.ProfesionalRepository,
	empresaRepo repository.EmpresaRepository,
	pdfStoragePath string,
) ReporteService {
	return &reporteService{
		citaRepo:        citaRepo,
		gastoRepo:       gastoRepo,
		profesionalRepo: profesionalRepo,
		empresaRepo:     empresaRepo,
		pdfStoragePath:  pdfStoragePath,
	}
}

func (s *reporteService) ReporteCaja(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (*dto.ReporteCajaResponse, error) {
	sumas, err := s.citaRepo.SumMontoPorMetodo(ctx, empresaID, desde, hasta, nil)
	if err != nil {
		return nil, err
	}

	totalIngresos := decimal.Zero
	for _, monto := range sumas {
		totalIngresos = totalIngresos.Add(monto)
	}
	efectivo := sumas[model.PagoEfectivo]
	// Everything not charged in cash counts as digital income.
	digitales := totalIngresos.Sub(efectivo)

	totalGastos, err := s.gastoRepo.SumGastos(ctx, empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}

	citas, err := s.citaRepo.ListarRealizadas(ctx, empresaID, desde, hasta, nil)
	if err != nil {
		return nil, err
	}

	return &dto.ReporteCajaResponse{
		FechaInicio:       desde.Format(LayoutFecha),
		FechaFin:          hasta.Format(LayoutFecha),
		TotalIngresos:     totalIngresos,
		IngresosEfectivo:  efectivo,
		IngresosDigitales: digitales,
		TotalGastos:       totalGastos,
		SaldoNeto:         totalIngresos.Sub(totalGastos),
		// Gastos are assumed paid from the register, so the physical cash
		// on hand is cash income minus all expenses.
		EfectivoFisico: efectivo.Sub(totalGastos),
		Citas:          citasToResponses(citas),
	}, nil
}

func (s *reporteService) ReporteCajaPDF(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) (string, error) {
	reporte, err := s.ReporteCaja(ctx, empresaID, desde, hasta)
	if err != nil {
		return "", err
	}
	empresa, err := s.empresaRepo.ObtenerPorID(ctx, empresaID)
	if err != nil {
		return "", fmt.Errorf("empresa: %w", ErrNoEncontrado)
	}
	return infra.GenerateReporteCajaPDF(empresa.Nombre, reporte, s.pdfStoragePath)
}

// ComisionProfesional computes the professional's share of what they billed
// in the range. The monto is truncated to whole guaraníes, never rounded up.
func (s *reporteService) ComisionProfesional(ctx context.Context, empresaID, profesionalID uuid.UUID, desde, hasta time.Time) (*dto.ComisionResponse, error) {
	prof, err := s.profesionalRepo.ObtenerPorID(ctx, empresaID, profesionalID)
	if err != nil {
		return nil, fmt.Errorf("profesional: %w", ErrNoEncontrado)
	}

	sumas, err := s.citaRepo.SumMontoPorMetodo(ctx, empresaID, desde, hasta, &profesionalID)
	if err != nil {
		return nil, err
	}
	totalFacturado := decimal.Zero
	for _, monto := range sumas {
		totalFacturado = totalFacturado.Add(monto)
	}

	comision := totalFacturado.Mul(prof.PorcentajeComision).Div(cien).RoundDown(0)

	return &dto.ComisionResponse{
		ProfesionalID:      prof.ID.String(),
		Profesional:        prof.Nombre + " " + prof.Apellido,
		FechaInicio:        desde.Format(LayoutFecha),
		FechaFin:           hasta.Format(LayoutFecha),
		TotalFacturado:     totalFacturado,
		PorcentajeComision: prof.PorcentajeComision,
		MontoComision:      comision,
	}, nil
}
