package handler

import (
	"net/http"
	"strconv"

	"github.com/luisesse/beauty-manager/internal/apierror"
	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type HorariosHandler struct{ svc service.HorarioService }

func NewHorariosHandler(svc service.HorarioService) *HorariosHandler {
	return &HorariosHandler{svc: svc}
}

// Listar godoc
// @Summary      Horario de atención semanal
// @Description  Devuelve los 7 días (0 = lunes). Los días no configurados aparecen cerrados.
// @Tags         horarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.HorarioResponse
// @Router       /v1/horarios [get]
func (h *HorariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarSemana(c.Request.Context(), middleware.EmpresaID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Configurar godoc
// @Summary      Configurar el horario de un día
// @Description  Crea o reemplaza el horario del día indicado (0 = lunes … 6 = domingo).
// @Tags         horarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        dia  path int true "Día de la semana (0-6)"
// @Param        body body dto.ConfigurarHorarioRequest true "Horario del día"
// @Success      200  {object} dto.HorarioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/horarios/{dia} [put]
func (h *HorariosHandler) Configurar(c *gin.Context) {
	dia, err := strconv.Atoi(c.Param("dia"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Dia invalido"))
		return
	}
	var req dto.ConfigurarHorarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Configurar(c.Request.Context(), middleware.EmpresaID(c), dia, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
