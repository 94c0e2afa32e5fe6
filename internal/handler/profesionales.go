package handler

import (
	"net/http"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfesionalesHandler struct{ svc service.ProfesionalService }

func NewProfesionalesHandler(svc service.ProfesionalService) *ProfesionalesHandler {
	return &ProfesionalesHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar profesional
// @Description  El porcentaje de comisión por defecto es 50.
// @Tags         profesionales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProfesionalRequest true "Datos del profesional"
// @Success      201  {object} dto.ProfesionalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/profesionales [post]
func (h *ProfesionalesHandler) Crear(c *gin.Context) {
	var req dto.CrearProfesionalRequest
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
// @Summary      Listar profesionales
// @Tags         profesionales
// @Produce      json
// @Security     BearerAuth
// @Param        incluir_inactivos query bool false "Incluir profesionales desactivados"
// @Success      200 {array} dto.ProfesionalResponse
// @Router       /v1/profesionales [get]
func (h *ProfesionalesHandler) Listar(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), middleware.EmpresaID(c), incluirInactivos)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Detalle de un profesional
// @Tags         profesionales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del profesional"
// @Success      200 {object} dto.ProfesionalResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/profesionales/{id} [get]
func (h *ProfesionalesHandler) Obtener(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.EmpresaID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar profesional
// @Tags         profesionales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del profesional"
// @Param        body body dto.ActualizarProfesionalRequest true "Campos a actualizar"
// @Success      200  {object} dto.ProfesionalResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/profesionales/{id} [put]
func (h *ProfesionalesHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProfesionalRequest
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
// @Summary      Eliminar profesional
// @Description  Si tiene citas registradas se desactiva en lugar de eliminarse.
// @Tags         profesionales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del profesional"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/profesionales/{id} [delete]
func (h *ProfesionalesHandler) Eliminar(c *gin.Context) {
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
