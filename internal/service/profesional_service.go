package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var comisionDefault = decimal.NewFromInt(50)

type ProfesionalService interface {
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearProfesionalRequest) (*dto.ProfesionalResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID, incluirInactivos bool) ([]dto.ProfesionalResponse, error)
	Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProfesionalResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarProfesionalRequest) (*dto.ProfesionalResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
}

type profesionalService struct {
	repo repository.ProfesionalRepository
}

func NewProfesionalService(repo repository.ProfesionalRepository) ProfesionalService {
	return &profesionalService{repo: repo}
}

func (s *profesionalService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearProfesionalRequest) (*dto.ProfesionalResponse, error) {
	comision := comisionDefault
	if req.PorcentajeComision != nil {
		comision = *req.PorcentajeComision
	}

	var usuarioID *uuid.UUID
	if req.UsuarioID != nil {
		parsed, err := uuid.Parse(*req.UsuarioID)
		if err != nil {
			return nil, fmt.Errorf("usuario_id inválido: %w", err)
		}
		usuarioID = &parsed
	}

	prof := &model.Profesional{
		EmpresaID:          empresaID,
		UsuarioID:          usuarioID,
		Nombre:             NormalizarNombre(req.Nombre),
		Apellido:           NormalizarNombre(req.Apellido),
		Especialidad:       normalizarEspecialidad(req.Especialidad),
		Telefono:           strings.TrimSpace(req.Telefono),
		PorcentajeComision: comision,
		Activo:             true,
	}
	if err := s.repo.Crear(ctx, prof); err != nil {
		return nil, err
	}
	return profesionalToResponse(prof), nil
}

func (s *profesionalService) Listar(ctx context.Context, empresaID uuid.UUID, incluirInactivos bool) ([]dto.ProfesionalResponse, error) {
	profs, err := s.repo.Listar(ctx, empresaID, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfesionalResponse, 0, len(profs))
	for i := range profs {
		out = append(out, *profesionalToResponse(&profs[i]))
	}
	return out, nil
}

func (s *profesionalService) Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProfesionalResponse, error) {
	prof, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("profesional: %w", ErrNoEncontrado)
	}
	return profesionalToResponse(prof), nil
}

func (s *profesionalService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarProfesionalRequest) (*dto.ProfesionalResponse, error) {
	prof, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("profesional: %w", ErrNoEncontrado)
	}

	if req.Nombre != nil {
		prof.Nombre = NormalizarNombre(*req.Nombre)
	}
	if req.Apellido != nil {
		prof.Apellido = NormalizarNombre(*req.Apellido)
	}
	if req.Especialidad != nil {
		prof.Especialidad = normalizarEspecialidad(req.Especialidad)
	}
	if req.Telefono != nil {
		prof.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.PorcentajeComision != nil {
		prof.PorcentajeComision = *req.PorcentajeComision
	}
	if req.Activo != nil {
		prof.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, prof); err != nil {
		return nil, err
	}
	return profesionalToResponse(prof), nil
}

// Eliminar refuses to delete a profesional with citas on file; deactivation
// is an explicit update (Activo=false), never a side effect of delete.
func (s *profesionalService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	prof, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return fmt.Errorf("profesional: %w", ErrNoEncontrado)
	}

	count, err := s.repo.CountCitas(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ProtegidoError{Mensaje: fmt.Sprintf(
			"No se puede eliminar a %s %s porque tiene citas registradas. Desactívalo en su lugar.",
			prof.Nombre, prof.Apellido)}
	}
	return s.repo.Eliminar(ctx, empresaID, id)
}

func normalizarEspecialidad(e *string) *string {
	if e == nil {
		return nil
	}
	normalizada := NormalizarNombre(*e)
	return &normalizada
}

func profesionalToResponse(p *model.Profesional) *dto.ProfesionalResponse {
	return &dto.ProfesionalResponse{
		ID:                 p.ID.String(),
		Nombre:             p.Nombre,
		Apellido:           p.Apellido,
		Especialidad:       p.Especialidad,
		Telefono:           p.Telefono,
		PorcentajeComision: p.PorcentajeComision,
		Activo:             p.Activo,
	}
}
