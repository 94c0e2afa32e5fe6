package tests

import (
	"context"
	"testing"
	"time"

	"github.com/luisesse/beauty-manager/internal/config"
	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv() (service.AuthService, *stubUsuarioRepo, *config.Config) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo, cfg
}

func crearAdmin(t *testing.T, svc service.AuthService, empresaID uuid.UUID) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.CrearUsuario(context.Background(), empresaID, dto.CrearUsuarioRequest{
		Username: "admin@salondemo.com",
		Nombre:   "carla",
		Password: "superclave",
		Rol:      middleware.RolAdministrador,
	})
	require.NoError(t, err)
	return resp
}

func TestLoginOK(t *testing.T) {
	svc, _, cfg := newAuthEnv()
	empresaID := uuid.New()
	creado := crearAdmin(t, svc, empresaID)
	assert.Equal(t, "Carla", creado.Nombre)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin@salondemo.com",
		Password: "superclave",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, middleware.RolAdministrador, resp.User.Rol)
	assert.NotEmpty(t, resp.RefreshToken)

	// The access token carries the tenant and role claims the middleware reads.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, empresaID.String(), claims["empresa_id"])
	assert.Equal(t, middleware.RolAdministrador, claims["rol"])
	assert.Equal(t, creado.ID, claims["user_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	// Wrong password and unknown user fail with the same opaque message.
	_, err := svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "otra"})
	assert.EqualError(t, err, "credenciales invalidas")

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nadie@salondemo.com", Password: "superclave"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestLoginUsuarioDesactivado(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	creado := crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	require.NoError(t, svc.DesactivarUsuario(ctx, empresaID, uuid.MustParse(creado.ID)))

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "superclave"})
	assert.EqualError(t, err, "credenciales invalidas")

	require.NoError(t, svc.ReactivarUsuario(ctx, empresaID, uuid.MustParse(creado.ID)))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "superclave"})
	assert.NoError(t, err)
}

func TestRefreshOK(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "superclave"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, renovado.User.ID)
	assert.NotEmpty(t, renovado.AccessToken)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, _, _ := newAuthEnv()
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "no-es-un-jwt")
	assert.EqualError(t, err, "refresh token invalido o expirado")

	// A token signed with a different secret is rejected.
	otro := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	firmado, err := otro.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, firmado)
	assert.EqualError(t, err, "refresh token invalido o expirado")
}

func TestRefreshUsuarioDesactivado(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	creado := crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "superclave"})
	require.NoError(t, err)

	require.NoError(t, svc.DesactivarUsuario(ctx, empresaID, uuid.MustParse(creado.ID)))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.EqualError(t, err, "usuario no encontrado o inactivo")
}

func TestActualizarUsuarioDeOtraEmpresa(t *testing.T) {
	svc, _, _ := newAuthEnv()
	creado := crearAdmin(t, svc, uuid.New())

	_, err := svc.ActualizarUsuario(context.Background(), uuid.New(), uuid.MustParse(creado.ID), dto.ActualizarUsuarioRequest{
		Nombre: "Intrusa",
	})
	assert.EqualError(t, err, "usuario no encontrado")
}

func TestActualizarUsuarioCambioDeClave(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	creado := crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	_, err := svc.ActualizarUsuario(ctx, empresaID, uuid.MustParse(creado.ID), dto.ActualizarUsuarioRequest{
		Password: "clave-nueva",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "superclave"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin@salondemo.com", Password: "clave-nueva"})
	assert.NoError(t, err)
}

func TestListarUsuariosInactivos(t *testing.T) {
	svc, _, _ := newAuthEnv()
	empresaID := uuid.New()
	creado := crearAdmin(t, svc, empresaID)
	ctx := context.Background()

	_, err := svc.CrearUsuario(ctx, empresaID, dto.CrearUsuarioRequest{
		Username: "recepcion@salondemo.com",
		Nombre:   "Mirta",
		Password: "recepcion1",
		Rol:      middleware.RolRecepcion,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DesactivarUsuario(ctx, empresaID, uuid.MustParse(creado.ID)))

	activos, err := svc.ListarUsuarios(ctx, empresaID, false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarUsuarios(ctx, empresaID, true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
