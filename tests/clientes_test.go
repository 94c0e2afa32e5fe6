package tests

import (
	"context"
	"testing"
	"time"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClienteSvc() (service.ClienteService, *stubClienteRepo, *stubCitaRepo) {
	clientes := newStubClienteRepo()
	citas := newStubCitaRepo()
	return service.NewClienteService(clientes, citas), clientes, citas
}

func TestCrearClienteNormalizaNombres(t *testing.T) {
	svc, _, _ := newClienteSvc()
	empresaID := uuid.New()

	resp, err := svc.Crear(context.Background(), empresaID, dto.CrearClienteRequest{
		CIRUC:    "  4567890 ",
		Nombre:   "ana maría",
		Apellido: "BENÍTEZ",
		Telefono: " 0981111222 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "4567890", resp.CIRUC)
	assert.Equal(t, "Ana María", resp.Nombre)
	assert.Equal(t, "Benítez", resp.Apellido)
	assert.Equal(t, "0981111222", resp.Telefono)
}

func TestCrearClienteCIRUCDuplicado(t *testing.T) {
	svc, _, _ := newClienteSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	_, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Otra", Apellido: "Persona", Telefono: "0983000111",
	})
	assert.EqualError(t, err, "ya existe un cliente con CI/RUC 4567890")

	// The same document under a different tenant is fine.
	_, err = svc.Crear(ctx, uuid.New(), dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	assert.NoError(t, err)
}

func TestActualizarClienteCambioDeCIRUC(t *testing.T) {
	svc, _, _ := newClienteSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	a, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "1111111", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	require.NoError(t, err)
	b, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "2222222", Nombre: "Rosa", Apellido: "Duarte", Telefono: "0983000111",
	})
	require.NoError(t, err)

	// Taking another cliente's document is rejected.
	tomado := "2222222"
	_, err = svc.Actualizar(ctx, empresaID, uuid.MustParse(a.ID), dto.ActualizarClienteRequest{CIRUC: &tomado})
	assert.EqualError(t, err, "ya existe un cliente con CI/RUC 2222222")

	// Re-saving the own document is not a duplicate.
	propio := "2222222"
	_, err = svc.Actualizar(ctx, empresaID, uuid.MustParse(b.ID), dto.ActualizarClienteRequest{CIRUC: &propio})
	assert.NoError(t, err)
}

func TestEliminarClienteConCitas(t *testing.T) {
	svc, clientes, _ := newClienteSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	require.NoError(t, err)
	clienteID := uuid.MustParse(resp.ID)
	clientes.citaCount[clienteID] = 3

	err = svc.Eliminar(ctx, empresaID, clienteID)
	var protegido *service.ProtegidoError
	require.ErrorAs(t, err, &protegido)
	assert.Equal(t, "No se puede eliminar a Ana Benítez porque tiene citas registradas. Borra sus citas primero.", protegido.Mensaje)

	// Still there.
	_, err = svc.Obtener(ctx, empresaID, clienteID)
	assert.NoError(t, err)
}

func TestEliminarClienteSinCitas(t *testing.T) {
	svc, _, _ := newClienteSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	require.NoError(t, err)
	clienteID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Eliminar(ctx, empresaID, clienteID))

	_, err = svc.Obtener(ctx, empresaID, clienteID)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestHistorialClienteMasRecientePrimero(t *testing.T) {
	svc, _, citas := newClienteSvc()
	empresaID := uuid.New()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, empresaID, dto.CrearClienteRequest{
		CIRUC: "4567890", Nombre: "Ana", Apellido: "Benítez", Telefono: "0981111222",
	})
	require.NoError(t, err)
	clienteID := uuid.MustParse(resp.ID)

	for _, c := range []struct {
		fecha string
		hora  string
	}{
		{"2026-02-01", "09:00"},
		{"2026-03-01", "10:00"},
		{"2026-03-01", "15:00"},
	} {
		f, perr := time.Parse("2006-01-02", c.fecha)
		require.NoError(t, perr)
		require.NoError(t, citas.Crear(ctx, &model.Cita{
			EmpresaID:     empresaID,
			ClienteID:     clienteID,
			ProfesionalID: uuid.New(),
			ServicioID:    uuid.New(),
			Fecha:         f,
			Hora:          c.hora,
			Estado:        model.CitaRealizado,
			MetodoPago:    model.PagoEfectivo,
		}))
	}

	historial, err := svc.Historial(ctx, empresaID, clienteID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", historial.Cliente.Nombre)
	require.Len(t, historial.Citas, 3)
	assert.Equal(t, "15:00", historial.Citas[0].Hora)
	assert.Equal(t, "2026-02-01", historial.Citas[2].Fecha)
}
