package handler

import (
	"net/http"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type GastosHandler struct{ svc service.GastoService }

func NewGastosHandler(svc service.GastoService) *GastosHandler { return &GastosHandler{svc: svc} }

// ── Categorías ────────────────────────────────────────────────────────────────

// CrearCategoria godoc
// @Summary      Crear categoría de gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCategoriaGastoRequest true "Nombre de la categoría"
// @Success      201  {object} dto.CategoriaGastoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/gastos/categorias [post]
func (h *GastosHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCategoria(c.Request.Context(), middleware.EmpresaID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarCategorias godoc
// @Summary      Listar categorías de gasto
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoriaGastoResponse
// @Router       /v1/gastos/categorias [get]
func (h *GastosHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarCategoria godoc
// @Summary      Eliminar categoría de gasto
// @Description  Rechazado con 409 si la categoría tiene gastos registrados.
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la categoría"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/gastos/categorias/{id} [delete]
func (h *GastosHandler) EliminarCategoria(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarCategoria(c.Request.Context(), middleware.EmpresaID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// Crear godoc
// @Summary      Registrar gasto
// @Description  La fecha por defecto es hoy.
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearGastoRequest true "Datos del gasto"
// @Success      201  {object} dto.GastoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/gastos [post]
func (h *GastosHandler) Crear(c *gin.Context) {
	var req dto.CrearGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.EmpresaID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar gastos por rango de fechas
// @Description  fecha_inicio y fecha_fin en formato YYYY-MM-DD; por defecto el día de hoy. Fechas malformadas caen al valor por defecto.
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_inicio query string false "YYYY-MM-DD (default hoy)"
// @Param        fecha_fin    query string false "YYYY-MM-DD (default hoy)"
// @Success      200 {array} dto.GastoResponse
// @Router       /v1/gastos [get]
func (h *GastosHandler) Listar(c *gin.Context) {
	desde, hasta := rangoFechas(c)
	resp, err := h.svc.Listar(c.Request.Context(), middleware.EmpresaID(c), desde, hasta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del gasto"
// @Param        body body dto.ActualizarGastoRequest true "Campos a actualizar"
// @Success      200  {object} dto.GastoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/gastos/{id} [put]
func (h *GastosHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.EmpresaID(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar gasto
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del gasto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/gastos/{id} [delete]
func (h *GastosHandler) Eliminar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.EmpresaID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
