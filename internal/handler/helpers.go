package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/luisesse/beauty-manager/internal/apierror"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondServiceError maps service errors onto HTTP statuses:
// missing records → 404, delete protections → 409, everything else
// (validation chain failures included) → 400.
func respondServiceError(c *gin.Context, err error) {
	var protegido *service.ProtegidoError
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &protegido):
		c.JSON(http.StatusConflict, apierror.New(protegido.Mensaje))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

// rangoFechas reads fecha_inicio / fecha_fin query params. Missing or
// malformed values fall back to today instead of failing the request, and
// an inverted range is swapped into order.
func rangoFechas(c *gin.Context) (time.Time, time.Time) {
	hoy := service.SoloFecha(time.Now())

	desde := hoy
	if v, err := service.ParseFecha(c.Query("fecha_inicio")); err == nil {
		desde = v
	}
	hasta := hoy
	if v, err := service.ParseFecha(c.Query("fecha_fin")); err == nil {
		hasta = v
	}
	if hasta.Before(desde) {
		desde, hasta = hasta, desde
	}
	return desde, hasta
}

// uuidParam reads a UUID path parameter, writing the 400 itself on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
