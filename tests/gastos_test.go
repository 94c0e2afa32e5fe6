package tests

import (
	"context"
	"testing"
	"time"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var relojGastos = func() time.Time {
	return time.Date(2026, 3, 16, 14, 30, 0, 0, time.UTC)
}

func newGastoSvc() (service.GastoService, *stubGastoRepo) {
	repo := newStubGastoRepo()
	return service.NewGastoServiceWithClock(repo, relojGastos), repo
}

func TestCrearCategoriaGasto(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()

	resp, err := svc.CrearCategoria(context.Background(), empresaID, dto.CrearCategoriaGastoRequest{Nombre: "insumos de peluquería"})
	require.NoError(t, err)
	assert.Equal(t, "Insumos De Peluquería", resp.Nombre)
}

func TestCrearCategoriaGastoDuplicada(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	_, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Alquiler"})
	require.NoError(t, err)

	// Duplicate detection runs on the normalized name.
	_, err = svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "alquiler"})
	assert.EqualError(t, err, "ya existe la categoría Alquiler")
}

func TestEliminarCategoriaConGastos(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	cat, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Alquiler"})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, empresaID, dto.CrearGastoRequest{
		CategoriaID: cat.ID,
		Descripcion: "alquiler marzo",
		Monto:       decimal.NewFromInt(2500000),
	})
	require.NoError(t, err)

	err = svc.EliminarCategoria(ctx, empresaID, uuid.MustParse(cat.ID))
	var protegido *service.ProtegidoError
	require.ErrorAs(t, err, &protegido)
	assert.Equal(t, "No se puede eliminar la categoría Alquiler porque tiene gastos registrados.", protegido.Mensaje)

	cats, err := svc.ListarCategorias(ctx, empresaID)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestEliminarCategoriaVacia(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	cat, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Alquiler"})
	require.NoError(t, err)

	require.NoError(t, svc.EliminarCategoria(ctx, empresaID, uuid.MustParse(cat.ID)))

	cats, err := svc.ListarCategorias(ctx, empresaID)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestCrearGastoFechaPorDefecto(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	cat, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Insumos"})
	require.NoError(t, err)

	resp, err := svc.Crear(ctx, empresaID, dto.CrearGastoRequest{
		CategoriaID: cat.ID,
		Descripcion: "tinturas",
		Monto:       decimal.NewFromInt(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", resp.Fecha)
	assert.Equal(t, "Insumos", resp.Categoria)
}

func TestCrearGastoCategoriaInexistente(t *testing.T) {
	svc, _ := newGastoSvc()

	_, err := svc.Crear(context.Background(), uuid.New(), dto.CrearGastoRequest{
		CategoriaID: uuid.NewString(),
		Descripcion: "tinturas",
		Monto:       decimal.NewFromInt(150000),
	})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestActualizarGasto(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	cat, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Insumos"})
	require.NoError(t, err)
	creado, err := svc.Crear(ctx, empresaID, dto.CrearGastoRequest{
		CategoriaID: cat.ID,
		Descripcion: "tinturas",
		Monto:       decimal.NewFromInt(150000),
		Fecha:       "2026-03-10",
	})
	require.NoError(t, err)

	monto := decimal.NewFromInt(180000)
	fecha := "2026-03-12"
	resp, err := svc.Actualizar(ctx, empresaID, uuid.MustParse(creado.ID), dto.ActualizarGastoRequest{
		Monto: &monto,
		Fecha: &fecha,
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(monto))
	assert.Equal(t, "2026-03-12", resp.Fecha)
	assert.Equal(t, "tinturas", resp.Descripcion)
}

func TestListarGastosPorRango(t *testing.T) {
	svc, _ := newGastoSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	cat, err := svc.CrearCategoria(ctx, empresaID, dto.CrearCategoriaGastoRequest{Nombre: "Insumos"})
	require.NoError(t, err)
	for _, fecha := range []string{"2026-03-05", "2026-03-10", "2026-03-20"} {
		_, err = svc.Crear(ctx, empresaID, dto.CrearGastoRequest{
			CategoriaID: cat.ID,
			Descripcion: "compra",
			Monto:       decimal.NewFromInt(10000),
			Fecha:       fecha,
		})
		require.NoError(t, err)
	}

	gastos, err := svc.Listar(ctx, empresaID, fechaDe(t, "2026-03-08"), fechaDe(t, "2026-03-15"))
	require.NoError(t, err)
	require.Len(t, gastos, 1)
	assert.Equal(t, "2026-03-10", gastos[0].Fecha)
}
