package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GastoService interface {
	CrearCategoria(ctx context.Context, empresaID uuid.UUID, req dto.CrearCategoriaGastoRequest) (*dto.CategoriaGastoResponse, error)
	ListarCategorias(ctx context.Context, empresaID uuid.UUID) ([]dto.CategoriaGastoResponse, error)
	EliminarCategoria(ctx context.Context, empresaID, id uuid.UUID) error

	Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearGastoRequest) (*dto.GastoResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) ([]dto.GastoResponse, error)
	Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarGastoRequest) (*dto.GastoResponse, error)
	Eliminar(ctx context.Context, empresaID, id uuid.UUID) error
}

type gastoService struct {
	repo repository.GastoRepository
	now  func() time.Time
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return NewGastoServiceWithClock(repo, time.Now)
}

func NewGastoServiceWithClock(repo repository.GastoRepository, now func() time.Time) GastoService {
	return &gastoService{repo: repo, now: now}
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (s *gastoService) CrearCategoria(ctx context.Context, empresaID uuid.UUID, req dto.CrearCategoriaGastoRequest) (*dto.CategoriaGastoResponse, error) {
	nombre := NormalizarNombre(req.Nombre)

	if existente, err := s.repo.ObtenerCategoriaPorNombre(ctx, empresaID, nombre); err == nil && existente != nil {
		return nil, fmt.Errorf("ya existe la categoría %s", existente.Nombre)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat := &model.CategoriaGasto{EmpresaID: empresaID, Nombre: nombre}
	if err := s.repo.CrearCategoria(ctx, cat); err != nil {
		return nil, err
	}
	return &dto.CategoriaGastoResponse{ID: cat.ID.String(), Nombre: cat.Nombre}, nil
}

func (s *gastoService) ListarCategorias(ctx context.Context, empresaID uuid.UUID) ([]dto.CategoriaGastoResponse, error) {
	cats, err := s.repo.ListarCategorias(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaGastoResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoriaGastoResponse{ID: c.ID.String(), Nombre: c.Nombre})
	}
	return out, nil
}

func (s *gastoService) EliminarCategoria(ctx context.Context, empresaID, id uuid.UUID) error {
	cat, err := s.repo.ObtenerCategoriaPorID(ctx, empresaID, id)
	if err != nil {
		return fmt.Errorf("categoría: %w", ErrNoEncontrado)
	}

	count, err := s.repo.CountGastosPorCategoria(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ProtegidoError{Mensaje: fmt.Sprintf(
			"No se puede eliminar la categoría %s porque tiene gastos registrados.", cat.Nombre)}
	}
	return s.repo.EliminarCategoria(ctx, empresaID, id)
}

// ── Gastos ────────────────────────────────────────────────────────────────────

func (s *gastoService) Crear(ctx context.Context, empresaID uuid.UUID, req dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoria_id inválido: %w", err)
	}
	cat, err := s.repo.ObtenerCategoriaPorID(ctx, empresaID, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoría: %w", ErrNoEncontrado)
	}

	fecha := SoloFecha(s.now())
	if req.Fecha != "" {
		if fecha, err = ParseFecha(req.Fecha); err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
	}

	gasto := &model.Gasto{
		EmpresaID:   empresaID,
		CategoriaID: cat.ID,
		Descripcion: strings.TrimSpace(req.Descripcion),
		Monto:       req.Monto,
		Fecha:       fecha,
	}
	if err := s.repo.Crear(ctx, gasto); err != nil {
		return nil, err
	}
	gasto.Categoria = cat
	return gastoToResponse(gasto), nil
}

func (s *gastoService) Listar(ctx context.Context, empresaID uuid.UUID, desde, hasta time.Time) ([]dto.GastoResponse, error) {
	gastos, err := s.repo.Listar(ctx, empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, *gastoToResponse(&gastos[i]))
	}
	return out, nil
}

func (s *gastoService) Actualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.ActualizarGastoRequest) (*dto.GastoResponse, error) {
	gasto, err := s.repo.ObtenerPorID(ctx, empresaID, id)
	if err != nil {
		return nil, fmt.Errorf("gasto: %w", ErrNoEncontrado)
	}

	if req.CategoriaID != nil {
		categoriaID, parseErr := uuid.Parse(*req.CategoriaID)
		if parseErr != nil {
			return nil, fmt.Errorf("categoria_id inválido: %w", parseErr)
		}
		cat, catErr := s.repo.ObtenerCategoriaPorID(ctx, empresaID, categoriaID)
		if catErr != nil {
			return nil, fmt.Errorf("categoría: %w", ErrNoEncontrado)
		}
		gasto.CategoriaID = cat.ID
		gasto.Categoria = cat
	}
	if req.Descripcion != nil {
		gasto.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Monto != nil {
		gasto.Monto = *req.Monto
	}
	if req.Fecha != nil {
		fecha, parseErr := ParseFecha(*req.Fecha)
		if parseErr != nil {
			return nil, fmt.Errorf("fecha inválida: %w", parseErr)
		}
		gasto.Fecha = fecha
	}

	if err := s.repo.Actualizar(ctx, gasto); err != nil {
		return nil, err
	}
	return gastoToResponse(gasto), nil
}

func (s *gastoService) Eliminar(ctx context.Context, empresaID, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, empresaID, id); err != nil {
		return fmt.Errorf("gasto: %w", ErrNoEncontrado)
	}
	return s.repo.Eliminar(ctx, empresaID, id)
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	resp := &dto.GastoResponse{
		ID:          g.ID.String(),
		CategoriaID: g.CategoriaID.String(),
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha.Format(LayoutFecha),
	}
	if g.Categoria != nil {
		resp.Categoria = g.Categoria.Nombre
	}
	return resp
}
