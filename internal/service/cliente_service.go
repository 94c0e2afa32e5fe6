package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
	Historial(ctx context.Context, empresaID, id uuid.UUID) (*dto.HistorialClienteResponse, error)
}

type clienteService struct {
	repo     repository.ClienteRepository
	citaRepo repository.CitaRepository
}

func NewClienteService(repo repository.ClienteRepository, citaRepo repository.CitaRepository) ClienteService {
	return &clienteService{repo: repo, citaRepo: citaRepo}
}

func (s *clienteService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	ciruc := strings.TrimSpace(req.CIRUC)
	if existente, err := s.repo.ObtenerPorCIRUC(ctx, empresaID, ciruc); err == nil && existente != nil {
		return nil, fmt.Errorf("ya existe un cliente con CI/RUC %s", ciruc)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cliente := &model.Cliente{
		EmpresaID: empresaID,
		CIRUC:     ciruc,
		Nombre:    NormalizarNombre(req.Nombre),
		Apellido:  NormalizarNombre(req.Apellido),
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     req.Email,
	}
	if err := s.repo.Crear(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Listar(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Obtener(ctx context.Context, empresaID, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNoEncontrado)
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNoEncontrado)
	}

	if req.CIRUC != nil {
		ciruc := strings.TrimSpace(*req.CIRUC)
		if ciruc != cliente.CIRUC {
			if existente, lookErr := s.repo.ObtenerPorCIRUC(ctx, empresaID, ciruc); lookErr == nil && existente != nil && existente.ID != cliente.ID {
				return nil, fmt.Errorf("ya existe un cliente con CI/RUC %s", ciruc)
			}
			cliente.CIRUC = ciruc
		}
	}
	if req.Nombre != nil {
		cliente.Nombre = NormalizarNombre(*req.Nombre)
	}
	if req.Apellido != nil {
		cliente.Apellido = NormalizarNombre(*req.Apellido)
	}
	if req.Telefono != nil {
		cliente.Telefono = strings.TrimSpace(*req.Telefono)
	}
	if req.Email != nil {
		cliente.Email = req.Email
	}

	if err := s.repo.Actualizar(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// Eliminar refuses to delete a cliente with citas on file, mirroring the
// RESTRICT constraint with a readable message.
func (s *clienteService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	cliente, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return fmt.Errorf("cliente: %w", ErrNoEncontrado)
	}

	count, err := s.repo.CountCitas(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ProtegidoError{Mensaje: fmt.Sprintf(
			"No se puede eliminar a %s %s porque tiene citas registradas. Borra sus citas primero.",
			cliente.Nombre, cliente.Apellido)}
	}
	return s.repo.Eliminar(ctx, empresaID, id)
}

func (s *clienteService) Historial(ctx context.Context, empresaID, id uuid.UUID) (*dto.HistorialClienteResponse, error) {
	cliente, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", ErrNoEncontrado)
	}
	citas, err := s.citaRepo.ListarPorCliente(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	return &dto.HistorialClienteResponse{
		Cliente: *clienteToResponse(cliente),
		Citas:   citasToResponses(citas),
	}, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID.String(),
		CIRUC:    c.CIRUC,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		Telefono: c.Telefono,
		Email:    c.Email,
	}
}
