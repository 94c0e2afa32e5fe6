package service

import (
	"context"
	"fmt"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
)

const duracionDefaultMinutos = 30

type ServicioService interface {
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ServicioResponse, error)
	Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ServicioResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
}

type servicioService struct {
	repo repository.ServicioRepository
}

func NewServicioService(repo repository.ServicioRepository) ServicioService {
	return &servicioService{repo: repo}
}

func (s *servicioService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	duracion := req.DuracionMinutos
	if duracion <= 0 {
		duracion = duracionDefaultMinutos
	}

	servicio := &model.Servicio{
		EmpresaID:       empresaID,
		Nombre:          NormalizarNombre(req.Nombre),
		Descripcion:     req.Descripcion,
		PrecioEstimado:  req.PrecioEstimado,
		DuracionMinutos: duracion,
	}
	if err := s.repo.Crear(ctx, servicio); err != nil {
		return nil, err
	}
	return servicioToResponse(servicio), nil
}

func (s *servicioService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ServicioResponse, error) {
	servicios, err := s.repo.Listar(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		out = append(out, *servicioToResponse(&servicios[i]))
	}
	return out, nil
}

func (s *servicioService) Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("servicio: %w", ErrNoEncontrado)
	}
	return servicioToResponse(servicio), nil
}

func (s *servicioService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("servicio: %w", ErrNoEncontrado)
	}

	if req.Nombre != nil {
		servicio.Nombre = NormalizarNombre(*req.Nombre)
	}
	if req.Descripcion != nil {
		servicio.Descripcion = req.Descripcion
	}
	if req.PrecioEstimado != nil {
		servicio.PrecioEstimado = *req.PrecioEstimado
	}
	if req.DuracionMinutos != nil && *req.DuracionMinutos > 0 {
		servicio.DuracionMinutos = *req.DuracionMinutos
	}

	if err := s.repo.Actualizar(ctx, servicio); err != nil {
		return nil, err
	}
	return servicioToResponse(servicio), nil
}

func (s *servicioService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	servicio, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return fmt.Errorf("servicio: %w", ErrNoEncontrado)
	}

	count, err := s.repo.CountCitas(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ProtegidoError{Mensaje: fmt.Sprintf(
			"No se puede eliminar el servicio %s porque tiene citas registradas.", servicio.Nombre)}
	}
	return s.repo.Eliminar(ctx, empresaID, id)
}

func servicioToResponse(sv *model.Servicio) *dto.ServicioResponse {
	return &dto.ServicioResponse{
		ID:              sv.ID.String(),
		Nombre:          sv.Nombre,
		Descripcion:     sv.Descripcion,
		PrecioEstimado:  sv.PrecioEstimado,
		DuracionMinutos: sv.DuracionMinutos,
	}
}
