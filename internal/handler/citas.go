package handler

import (
	"net/http"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type CitasHandler struct{ svc service.CitaService }

func NewCitasHandler(svc service.CitaService) *CitasHandler { return &CitasHandler{svc: svc} }

// Agendar godoc
// @Summary      Agendar una nueva cita
// @Description  Valida fecha/hora futura, horario de atención y disponibilidad del profesional antes de agendar.
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AgendarCitaRequest true "Datos de la cita"
// @Success      201  {object} dto.CitaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/citas [post]
func (h *CitasHandler) Agendar(c *gin.Context) {
	var req dto.AgendarCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agendar(c.Request.Context(), middleware.EmpresaID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Editar una cita
// @Description  Re-valida la cita completa; la cita editada no cuenta como conflicto contra sí misma.
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la cita"
// @Param        body body dto.ActualizarCitaRequest true "Nuevos datos"
// @Success      200  {object} dto.CitaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/citas/{id} [put]
func (h *CitasHandler) Actualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCitaRequest
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

// Finalizar godoc
// @Summary      Finalizar una cita
// @Description  Marca la cita como REALIZADO y registra el monto cobrado (por defecto el precio estimado del servicio).
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la cita"
// @Param        body body dto.FinalizarCitaRequest true "Monto y método de pago"
// @Success      200  {object} dto.CitaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/citas/{id}/finalizar [post]
func (h *CitasHandler) Finalizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Finalizar(c.Request.Context(), middleware.EmpresaID(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Confirmar godoc
// @Summary      Confirmar una cita pendiente
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la cita"
// @Success      200 {object} dto.CitaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/citas/{id}/confirmar [post]
func (h *CitasHandler) Confirmar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Confirmar(c.Request.Context(), middleware.EmpresaID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary      Cancelar una cita
// @Description  La cita cancelada libera su franja horaria.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la cita"
// @Success      200 {object} dto.CitaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/citas/{id}/cancelar [post]
func (h *CitasHandler) Cancelar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), middleware.EmpresaID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Agenda godoc
// @Summary      Agenda del día
// @Description  Citas de hoy ordenadas por hora. Respuesta cacheada brevemente en Redis.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.AgendaResponse
// @Router       /v1/citas/agenda [get]
func (h *CitasHandler) Agenda(c *gin.Context) {
	resp, err := h.svc.AgendaDelDia(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activas godoc
// @Summary      Citas activas
// @Description  Citas futuras en estado PENDIENTE o CONFIRMADO, en orden cronológico.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CitaResponse
// @Router       /v1/citas/activas [get]
func (h *CitasHandler) Activas(c *gin.Context) {
	resp, err := h.svc.ListarActivas(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
