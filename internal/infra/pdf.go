package infra

// pdf.go — Cash-register report export using go-pdf/fpdf.
// Generates an A4 report with:
//   - Business name header and date range
//   - Income / expense summary table
//   - One line per REALIZADO cita (fecha, hora, cliente, servicio, monto)
//
// The output file is saved to storagePath/reporte_caja_{inicio}_{fin}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luisesse/beauty-manager/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReporteCajaPDF writes a cash-register report PDF and returns the
// absolute path of the generated file. storagePath is created if needed.
func GenerateReporteCajaPDF(empresaNombre string, reporte *dto.ReporteCajaResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_caja_%s_%s.pdf", reporte.FechaInicio, reporte.FechaFin)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, empresaNombre, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Reporte de Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Del %s al %s", reporte.FechaInicio, reporte.FechaFin), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Summary ──────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 7, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "B", 1, "R", false, 0, "")
	}

	row("Ingresos totales", "Gs. "+reporte.TotalIngresos.StringFixed(0), false)
	row("Ingresos en efectivo", "Gs. "+reporte.IngresosEfectivo.StringFixed(0), false)
	row("Ingresos digitales", "Gs. "+reporte.IngresosDigitales.StringFixed(0), false)
	row("Gastos", "Gs. "+reporte.TotalGastos.StringFixed(0), false)
	row("Saldo neto", "Gs. "+reporte.SaldoNeto.StringFixed(0), true)
	row("Efectivo físico en caja", "Gs. "+reporte.EfectivoFisico.StringFixed(0), true)
	pdf.Ln(6)

	// ── Citas detail ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Citas realizadas (%d)", len(reporte.Citas)), "", 1, "L", false, 0, "")

	col1 := contentW * 0.14 // fecha
	col2 := contentW * 0.09 // hora
	col3 := contentW * 0.25 // cliente
	col4 := contentW * 0.25 // servicio
	col5 := contentW * 0.13 // metodo
	col6 := contentW * 0.14 // monto

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Servicio", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 6, "Pago", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col6, 6, "Monto", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, cita := range reporte.Citas {
		monto := "-"
		if cita.MontoCobrado != nil {
			monto = "Gs. " + cita.MontoCobrado.StringFixed(0)
		}
		pdf.CellFormat(col1, 5, cita.Fecha, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, cita.Hora, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, truncar(cita.Cliente, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, truncar(cita.Servicio, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(col5, 5, cita.MetodoPago, "", 0, "L", false, 0, "")
		pdf.CellFormat(col6, 5, monto, "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func truncar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
