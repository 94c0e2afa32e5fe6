package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
)

type HorarioService interface {
	Configurar(ctx context.Context, empresaID uuid.UUID, diaSemana int, req dto.ConfigurarHorarioRequest) (*dto.HorarioResponse, error)
	ListarSemana(ctx context.Context, empresaID uuid.UUID) ([]dto.HorarioResponse, error)
}

type horarioService struct {
	repo repository.HorarioRepository
}

func NewHorarioService(repo repository.HorarioRepository) HorarioService {
	return &horarioService{repo: repo}
}

// Configurar creates or replaces the schedule of one weekday (0 = lunes).
func (s *horarioService) Configurar(ctx context.Context, empresaID uuid.UUID, diaSemana int, req dto.ConfigurarHorarioRequest) (*dto.HorarioResponse, error) {
	if diaSemana < 0 || diaSemana > 6 {
		return nil, fmt.Errorf("dia_semana debe estar entre 0 (lunes) y 6 (domingo), recibido %d", diaSemana)
	}
	if req.Abierto && req.HoraInicio >= req.HoraFin {
		return nil, errors.New("la hora de inicio debe ser anterior a la hora de fin")
	}

	horario := &model.HorarioAtencion{
		EmpresaID:  empresaID,
		DiaSemana:  diaSemana,
		Abierto:    req.Abierto,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
	}
	if err := s.repo.Upsert(ctx, horario); err != nil {
		return nil, err
	}
	return horarioToResponse(horario), nil
}

// ListarSemana returns all seven days in order. Days never configured come
// back closed with empty hours, so the caller always sees a full week.
func (s *horarioService) ListarSemana(ctx context.Context, empresaID uuid.UUID) ([]dto.HorarioResponse, error) {
	horarios, err := s.repo.Listar(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	porDia := make(map[int]*model.HorarioAtencion, len(horarios))
	for i := range horarios {
		porDia[horarios[i].DiaSemana] = &horarios[i]
	}

	semana := make([]dto.HorarioResponse, 0, 7)
	for dia := 0; dia < 7; dia++ {
		if h, ok := porDia[dia]; ok {
			semana = append(semana, *horarioToResponse(h))
			continue
		}
		semana = append(semana, dto.HorarioResponse{
			DiaSemana: dia,
			Dia:       model.DiasSemana[dia],
			Abierto:   false,
		})
	}
	return semana, nil
}

func horarioToResponse(h *model.HorarioAtencion) *dto.HorarioResponse {
	return &dto.HorarioResponse{
		DiaSemana:  h.DiaSemana,
		Dia:        model.DiasSemana[h.DiaSemana],
		Abierto:    h.Abierto,
		HoraInicio: h.HoraInicio,
		HoraFin:    h.HoraFin,
	}
}
