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

func TestCrearProfesionalComisionPorDefecto(t *testing.T) {
	svc := service.NewProfesionalService(newStubProfesionalRepo())

	resp, err := svc.Crear(context.Background(), uuid.New(), dto.CrearProfesionalRequest{
		Nombre:   "lorena",
		Apellido: "giménez",
		Telefono: "0982333444",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lorena", resp.Nombre)
	assert.Equal(t, "Giménez", resp.Apellido)
	assert.True(t, resp.PorcentajeComision.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.Activo)
}

func TestCrearProfesionalComisionExplicita(t *testing.T) {
	svc := service.NewProfesionalService(newStubProfesionalRepo())

	comision := decimal.NewFromInt(35)
	resp, err := svc.Crear(context.Background(), uuid.New(), dto.CrearProfesionalRequest{
		Nombre:             "Rosa",
		Apellido:           "Duarte",
		Telefono:           "0983555666",
		PorcentajeComision: &comision,
	})
	require.NoError(t, err)
	assert.True(t, resp.PorcentajeComision.Equal(comision))
}

func TestEliminarProfesionalConCitas(t *testing.T) {
	repo := newStubProfesionalRepo()
	svc := service.NewProfesionalService(repo)
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearProfesionalRequest{
		Nombre: "Lorena", Apellido: "Giménez", Telefono: "0982333444",
	})
	require.NoError(t, err)
	profID := uuid.MustParse(resp.ID)
	repo.citaCount[profID] = 5

	err = svc.Eliminar(ctx, empresaID, profID)
	var protegido *service.ProtegidoError
	require.ErrorAs(t, err, &protegido)
	assert.Equal(t, "No se puede eliminar a Lorena Giménez porque tiene citas registradas. Desactívalo en su lugar.", protegido.Mensaje)

	// Still there, still active: the failed delete mutated nothing.
	obtenido, err := svc.Obtener(ctx, empresaID, profID)
	require.NoError(t, err)
	assert.True(t, obtenido.Activo)
}

func TestEliminarProfesionalSinCitas(t *testing.T) {
	svc := service.NewProfesionalService(newStubProfesionalRepo())
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearProfesionalRequest{
		Nombre: "Lorena", Apellido: "Giménez", Telefono: "0982333444",
	})
	require.NoError(t, err)
	profID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Eliminar(ctx, empresaID, profID))

	_, err = svc.Obtener(ctx, empresaID, profID)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestActualizarProfesionalDesactivaYReactiva(t *testing.T) {
	svc := service.NewProfesionalService(newStubProfesionalRepo())
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearProfesionalRequest{
		Nombre: "Lorena", Apellido: "Giménez", Telefono: "0982333444",
	})
	require.NoError(t, err)
	profID := uuid.MustParse(resp.ID)

	// Deactivation is an explicit update, not a delete side effect.
	inactivo := false
	desactivado, err := svc.Actualizar(ctx, empresaID, profID, dto.ActualizarProfesionalRequest{Activo: &inactivo})
	require.NoError(t, err)
	assert.False(t, desactivado.Activo)

	// Hidden from the default listing, visible with inactive included.
	activos, err := svc.Listar(ctx, empresaID, false)
	require.NoError(t, err)
	assert.Empty(t, activos)

	todos, err := svc.Listar(ctx, empresaID, true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	activo := true
	reactivado, err := svc.Actualizar(ctx, empresaID, profID, dto.ActualizarProfesionalRequest{Activo: &activo})
	require.NoError(t, err)
	assert.True(t, reactivado.Activo)
}

func TestProfesionalEspecialidadNormalizada(t *testing.T) {
	svc := service.NewProfesionalService(newStubProfesionalRepo())
	empresaID := uuid.New()
	ctx := context.Background()

	especialidad := "colorimetría y peinados"
	resp, err := svc.Crear(ctx, empresaID, dto.CrearProfesionalRequest{
		Nombre:       "Lorena",
		Apellido:     "Giménez",
		Telefono:     "0982333444",
		Especialidad: &especialidad,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Especialidad)
	assert.Equal(t, "Colorimetría Y Peinados", *resp.Especialidad)

	otra := "uñas esculpidas"
	actualizado, err := svc.Actualizar(ctx, empresaID, uuid.MustParse(resp.ID), dto.ActualizarProfesionalRequest{
		Especialidad: &otra,
	})
	require.NoError(t, err)
	require.NotNil(t, actualizado.Especialidad)
	assert.Equal(t, "Uñas Esculpidas", *actualizado.Especialidad)
}
