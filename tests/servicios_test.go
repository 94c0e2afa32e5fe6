package tests

import (
	"context"
	"testing"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearServicioDuracionPorDefecto(t *testing.T) {
	svc := service.NewServicioService(newStubServicioRepo())

	resp, err := svc.Crear(context.Background(), uuid.New(), dto.CrearServicioRequest{
		Nombre:         "corte de dama",
		PrecioEstimado: decimal.NewFromInt(80000),
	})
	require.NoError(t, err)

	assert.Equal(t, "Corte De Dama", resp.Nombre)
	assert.Equal(t, 30, resp.DuracionMinutos)
	assert.True(t, resp.PrecioEstimado.Equal(decimal.NewFromInt(80000)))
}

func TestActualizarServicioPrecio(t *testing.T) {
	svc := service.NewServicioService(newStubServicioRepo())
	empresaID := uuid.New()
	ctx := context.Background()

	creado, err := svc.Crear(ctx, empresaID, dto.CrearServicioRequest{
		Nombre:          "Tintura",
		PrecioEstimado:  decimal.NewFromInt(200000),
		DuracionMinutos: 90,
	})
	require.NoError(t, err)

	precio := decimal.NewFromInt(220000)
	resp, err := svc.Actualizar(ctx, empresaID, uuid.MustParse(creado.ID), dto.ActualizarServicioRequest{
		PrecioEstimado: &precio,
	})
	require.NoError(t, err)
	assert.True(t, resp.PrecioEstimado.Equal(precio))
	assert.Equal(t, 90, resp.DuracionMinutos)
}

func TestEliminarServicioConCitas(t *testing.T) {
	repo := newStubServicioRepo()
	svc := service.NewServicioService(repo)
	empresaID := uuid.New()
	ctx := context.Background()

	creado, err := svc.Crear(ctx, empresaID, dto.CrearServicioRequest{
		Nombre:         "Manicura",
		PrecioEstimado: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	servicioID := uuid.MustParse(creado.ID)
	repo.citaCount[servicioID] = 2

	err = svc.Eliminar(ctx, empresaID, servicioID)
	var protegido *service.ProtegidoError
	require.ErrorAs(t, err, &protegido)
	assert.Equal(t, "No se puede eliminar el servicio Manicura porque tiene citas registradas.", protegido.Mensaje)
}

func TestEliminarServicioSinCitas(t *testing.T) {
	svc := service.NewServicioService(newStubServicioRepo())
	empresaID := uuid.New()
	ctx := context.Background()

	creado, err := svc.Crear(ctx, empresaID, dto.CrearServicioRequest{
		Nombre:         "Manicura",
		PrecioEstimado: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, empresaID, uuid.MustParse(creado.ID)))

	_, err = svc.Obtener(ctx, empresaID, uuid.MustParse(creado.ID))
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}
