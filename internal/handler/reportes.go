package handler

import (
	"net/http"

	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Caja godoc
// @Summary      Reporte de caja
// @Description  Ingresos por método de pago, gastos y saldos sobre el rango [fecha_inicio, fecha_fin]. Fechas malformadas caen al día de hoy.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_inicio query string false "YYYY-MM-DD (default hoy)"
// @Param        fecha_fin    query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {object} dto.ReporteCajaResponse
// @Router       /v1/reportes/caja [get]
func (h *ReportesHandler) Caja(c *gin.Context) {
	desde, hasta := rangoFechas(c)
	resp, err := h.svc.ReporteCaja(c.Request.Context(), middleware.EmpresaID(c), desde, hasta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CajaPDF godoc
// @Summary      Reporte de caja en PDF
// @Description  Genera el mismo reporte como archivo PDF y lo devuelve para descarga.
// @Tags         reportes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        fecha_inicio query string false "YYYY-MM-DD (default hoy)"
// @Param        fecha_fin    query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {file} file
// @Router       /v1/reportes/caja/pdf [get]
func (h *ReportesHandler) CajaPDF(c *gin.Context) {
	desde, hasta := rangoFechas(c)
	path, err := h.svc.ReporteCajaPDF(c.Request.Context(), middleware.EmpresaID(c), desde, hasta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, "reporte_caja.pdf")
}

// Comision godoc
// @Summary      Comisión de un profesional
// @Description  Total facturado por el profesional en el rango y su comisión (truncada a guaraníes enteros).
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        profesional_id path  string true  "UUID del profesional"
// @Param        fecha_inicio   query string false "YYYY-MM-DD (default hoy)"
// @Param        fecha_fin      query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {object} dto.ComisionResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/reportes/comisiones/{profesional_id} [get]
func (h *ReportesHandler) Comision(c *gin.Context) {
	profesionalID, ok := uuidParam(c, "profesional_id")
	if !ok {
		return
	}
	desde, hasta := rangoFechas(c)
	resp, err := h.svc.ComisionProfesional(c.Request.Context(), middleware.EmpresaID(c), profesionalID, desde, hasta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
