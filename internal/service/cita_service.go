package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/luisesse/beauty-manager/internal/dto"
	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"
	"github.com/luisesse/beauty-manager/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const agendaCacheTTL = time.Minute

type CitaService interface {
	Agendar(ctx context.Context, empresaID uuid.UUID, req dto.AgendarCitaRequest) (*dto.CitaResponse, error)
	Actualizar(ctx context.Context, empresaID, citaID uuid.UUID, req dto.ActualizarCitaRequest) (*dto.CitaResponse, error)
	Finalizar(ctx context.Context, empresaID, citaID uuid.UUID, req dto.FinalizarCitaRequest) (*dto.CitaResponse, error)
	Confirmar(ctx context.Context, empresaID, citaID uuid.UUID) (*dto.CitaResponse, error)
	Cancelar(ctx context.Context, empresaID, citaID uuid.UUID) (*dto.CitaResponse, error)
	AgendaDelDia(ctx context.Context, empresaID uuid.UUID) (*dto.AgendaResponse, error)
	ListarActivas(ctx context.Context, empresaID uuid.UUID) ([]dto.CitaResponse, error)
}

type citaService struct {
	repo            repository.CitaRepository
	horarioRepo     repository.HorarioRepository
	clienteRepo     repository.ClienteRepository
	profesionalRepo repository.ProfesionalRepository
	servicioRepo    repository.ServicioRepository
	rdb             *redis.Client      // nil disables the agenda cache
	dispatcher      *worker.Dispatcher // nil disables email jobs
	now             func() time.Time
}

func NewCitaService(
	repo repository.CitaRepository,
	horarioRepo repository.HorarioRepository,
	clienteRepo repository.ClienteRepository,
	profesionalRepo repository.ProfesionalRepository,
	servicioRepo repository.ServicioRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) CitaService {
	return NewCitaServiceWithClock(repo, horarioRepo, clienteRepo, profesionalRepo, servicioRepo, rdb, dispatcher, time.Now)
}

// NewCitaServiceWithClock injects the clock used for the "no past
// scheduling" checks; tests pin it to a fixed instant.
func NewCitaServiceWithClock(
	repo repository.CitaRepository,
	horarioRepo repository.HorarioRepository,
	clienteRepo repository.ClienteRepository,
	profesionalRepo repository.ProfesionalRepository,
	servicioRepo repository.ServicioRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
	now func() time.Time,
) CitaService {
	return &citaService{
		repo:            repo,
		horarioRepo:     horarioRepo,
		clienteRepo:     clienteRepo,
		profesionalRepo: profesionalRepo,
		servicioRepo:    servicioRepo,
		rdb:             rdb,
		dispatcher:      dispatcher,
		now:             now,
	}
}

// ── Validación ────────────────────────────────────────────────────────────────
// Checks run in order and short-circuit on the first failure:
//   1. no past scheduling (date, then time-of-day when the date is today)
//   2. business hours: missing config fails closed; [inicio, fin) half-open
//   3. double-booking against non-cancelled citas, excluding excluirID

func (s *citaService) validar(ctx context.Context, empresaID uuid.UUID, prof *model.Profesional, fecha time.Time, hora string, excluirID *uuid.UUID) error {
	ahora := s.now()
	hoy := ahora.Format(LayoutFecha)
	dia := fecha.Format(LayoutFecha)

	if dia < hoy {
		return ErrFechaPasada
	}
	if dia == hoy && hora < ahora.Format(LayoutHora) {
		return ErrHoraPasada
	}

	horario, err := s.horarioRepo.ObtenerPorDia(ctx, empresaID, DiaSemana(fecha))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSinHorarioConfigurado
		}
		return err
	}
	if !horario.Abierto {
		return ErrDiaCerrado
	}
	if hora < horario.HoraInicio || hora >= horario.HoraFin {
		return ErrFueraDeHorario
	}

	conflicto, err := s.repo.ExisteConflicto(ctx, empresaID, prof.ID, fecha, hora, excluirID)
	if err != nil {
		return err
	}
	if conflicto {
		return &ConflictoCitaError{
			Profesional: prof.Nombre + " " + prof.Apellido,
			Hora:        hora,
		}
	}
	return nil
}

// resolverReferencias loads the three tenant-scoped references of a cita.
// A reference belonging to another empresa reads as not found.
func (s *citaService) resolverReferencias(ctx context.Context, empresaID uuid.UUID, clienteID, profesionalID, servicioID string) (*model.Cliente, *model.Profesional, *model.Servicio, error) {
	cid, err := uuid.Parse(clienteID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	pid, err := uuid.Parse(profesionalID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("profesional_id inválido: %w", err)
	}
	sid, err := uuid.Parse(servicioID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("servicio_id inválido: %w", err)
	}

	cliente, err := s.clienteRepo.ObtenerPorID(ctx, empresaID, cid)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cliente: %w", ErrNoEncontrado)
	}
	prof, err := s.profesionalRepo.ObtenerPorID(ctx, empresaID, pid)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("profesional: %w", ErrNoEncontrado)
	}
	servicio, err := s.servicioRepo.ObtenerPorID(ctx, empresaID, sid)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("servicio: %w", ErrNoEncontrado)
	}
	return cliente, prof, servicio, nil
}

// ── Agendar ───────────────────────────────────────────────────────────────────

func (s *citaService) Agendar(ctx context.Context, empresaID uuid.UUID, req dto.AgendarCitaRequest) (*dto.CitaResponse, error) {
	cliente, prof, servicio, err := s.resolverReferencias(ctx, empresaID, req.ClienteID, req.ProfesionalID, req.ServicioID)
	if err != nil {
		return nil, err
	}

	fecha, err := ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}

	if err := s.validar(ctx, empresaID, prof, fecha, req.Hora, nil); err != nil {
		return nil, err
	}

	metodo := req.MetodoPago
	if metodo == "" {
		metodo = model.PagoEfectivo
	}

	cita := &model.Cita{
		EmpresaID:     empresaID,
		ClienteID:     cliente.ID,
		ProfesionalID: prof.ID,
		ServicioID:    servicio.ID,
		Fecha:         fecha,
		Hora:          req.Hora,
		Estado:        model.CitaPendiente,
		MetodoPago:    metodo,
	}
	if err := s.repo.Crear(ctx, cita); err != nil {
		return nil, err
	}

	s.invalidarAgenda(ctx, empresaID, fecha)

	cita.Cliente, cita.Profesional, cita.Servicio = cliente, prof, servicio
	return citaToResponse(cita), nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Editing re-runs the whole validation chain; the edited cita is excluded
// from its own conflict check. Estado is preserved.

func (s *citaService) Actualizar(ctx context.Context, empresaID, citaID uuid.UUID, req dto.ActualizarCitaRequest) (*dto.CitaResponse, error) {
	cita, err := s.repo.ObtenerPorID(ctx, empresaID, citaID)
	if err != nil {
		return nil, fmt.Errorf("cita: %w", ErrNoEncontrado)
	}

	cliente, prof, servicio, err := s.resolverReferencias(ctx, empresaID, req.ClienteID, req.ProfesionalID, req.ServicioID)
	if err != nil {
		return nil, err
	}

	fecha, err := ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}

	if err := s.validar(ctx, empresaID, prof, fecha, req.Hora, &cita.ID); err != nil {
		return nil, err
	}

	fechaAnterior := cita.Fecha

	cita.ClienteID = cliente.ID
	cita.ProfesionalID = prof.ID
	cita.ServicioID = servicio.ID
	cita.Fecha = fecha
	cita.Hora = req.Hora
	if req.MetodoPago != "" {
		cita.MetodoPago = req.MetodoPago
	}
	if err := s.repo.Actualizar(ctx, cita); err != nil {
		return nil, err
	}

	s.invalidarAgenda(ctx, empresaID, fechaAnterior)
	s.invalidarAgenda(ctx, empresaID, fecha)

	cita.Cliente, cita.Profesional, cita.Servicio = cliente, prof, servicio
	return citaToResponse(cita), nil
}

// ── Finalizar ─────────────────────────────────────────────────────────────────
// Attaches the charged amount and forces estado REALIZADO. When no monto is
// supplied the servicio's precio_estimado is used. No conflict re-check.

func (s *citaService) Finalizar(ctx context.Context, empresaID, citaID uuid.UUID, req dto.FinalizarCitaRequest) (*dto.CitaResponse, error) {
	cita, err := s.repo.ObtenerPorID(ctx, empresaID, citaID)
	if err != nil {
		return nil, fmt.Errorf("cita: %w", ErrNoEncontrado)
	}
	if cita.Estado == model.CitaCancelado {
		return nil, errors.New("no se puede finalizar una cita cancelada")
	}

	monto := req.MontoCobrado
	if monto == nil {
		if cita.MontoCobrado != nil {
			monto = cita.MontoCobrado
		} else if cita.Servicio != nil {
			precio := cita.Servicio.PrecioEstimado
			monto = &precio
		}
	}

	cita.MontoCobrado = monto
	cita.Estado = model.CitaRealizado
	if req.MetodoPago != "" {
		cita.MetodoPago = req.MetodoPago
	}
	if req.Notas != nil && *req.Notas != "" {
		if cita.Notas != nil && *cita.Notas != "" {
			combinadas := *cita.Notas + "\n" + *req.Notas
			cita.Notas = &combinadas
		} else {
			cita.Notas = req.Notas
		}
	}

	if err := s.repo.Actualizar(ctx, cita); err != nil {
		return nil, err
	}
	s.invalidarAgenda(ctx, empresaID, cita.Fecha)
	return citaToResponse(cita), nil
}

// ── Confirmar / Cancelar ──────────────────────────────────────────────────────

func (s *citaService) Confirmar(ctx context.Context, empresaID, citaID uuid.UUID) (*dto.CitaResponse, error) {
	cita, err := s.repo.ObtenerPorID(ctx, empresaID, citaID)
	if err != nil {
		return nil, fmt.Errorf("cita: %w", ErrNoEncontrado)
	}
	// Re-confirming is a no-op; terminal states never move back.
	if cita.Estado == model.CitaConfirmado {
		return citaToResponse(cita), nil
	}
	if cita.Estado != model.CitaPendiente {
		return nil, errors.New("solo se puede confirmar una cita pendiente")
	}

	cita.Estado = model.CitaConfirmado
	if err := s.repo.Actualizar(ctx, cita); err != nil {
		return nil, err
	}
	s.invalidarAgenda(ctx, empresaID, cita.Fecha)

	// Best-effort confirmation email — never blocks the transition.
	if s.dispatcher != nil && cita.Cliente != nil && cita.Cliente.Email != nil {
		servicio := ""
		if cita.Servicio != nil {
			servicio = cita.Servicio.Nombre
		}
		_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: *cita.Cliente.Email,
			Subject: "Cita confirmada",
			Body: fmt.Sprintf("Su cita de %s fue confirmada para el %s a las %s.",
				servicio, cita.Fecha.Format(LayoutFecha), cita.Hora),
		})
	}
	return citaToResponse(cita), nil
}

func (s *citaService) Cancelar(ctx context.Context, empresaID, citaID uuid.UUID) (*dto.CitaResponse, error) {
	cita, err := s.repo.ObtenerPorID(ctx, empresaID, citaID)
	if err != nil {
		return nil, fmt.Errorf("cita: %w", ErrNoEncontrado)
	}

	cita.Estado = model.CitaCancelado
	if err := s.repo.Actualizar(ctx, cita); err != nil {
		return nil, err
	}
	s.invalidarAgenda(ctx, empresaID, cita.Fecha)
	return citaToResponse(cita), nil
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// AgendaDelDia returns today's citas ordered by hora. The response is
// cached in Redis for a minute; every cita write invalidates its fecha.
func (s *citaService) AgendaDelDia(ctx context.Context, empresaID uuid.UUID) (*dto.AgendaResponse, error) {
	hoy := SoloFecha(s.now())
	cacheKey := s.agendaCacheKey(empresaID, hoy)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.AgendaResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	citas, err := s.repo.ListarPorFecha(ctx, empresaID, hoy)
	if err != nil {
		return nil, err
	}
	resp := &dto.AgendaResponse{
		Fecha: hoy.Format(LayoutFecha),
		Citas: citasToResponses(citas),
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, agendaCacheTTL).Err()
		}
	}
	return resp, nil
}

// ListarActivas returns upcoming citas (fecha >= hoy) still PENDIENTE or
// CONFIRMADO, chronologically ordered.
func (s *citaService) ListarActivas(ctx context.Context, empresaID uuid.UUID) ([]dto.CitaResponse, error) {
	citas, err := s.repo.ListarActivas(ctx, empresaID, SoloFecha(s.now()))
	if err != nil {
		return nil, err
	}
	return citasToResponses(citas), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *citaService) agendaCacheKey(empresaID uuid.UUID, fecha time.Time) string {
	return "agenda:" + empresaID.String() + ":" + fecha.Format(LayoutFecha)
}

func (s *citaService) invalidarAgenda(ctx context.Context, empresaID uuid.UUID, fecha time.Time) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, s.agendaCacheKey(empresaID, SoloFecha(fecha))).Err()
}

func citaToResponse(c *model.Cita) *dto.CitaResponse {
	resp := &dto.CitaResponse{
		ID:           c.ID.String(),
		Fecha:        c.Fecha.Format(LayoutFecha),
		Hora:         c.Hora,
		MontoCobrado: c.MontoCobrado,
		Estado:       c.Estado,
		MetodoPago:   c.MetodoPago,
		Notas:        c.Notas,
	}
	if c.Cliente != nil {
		resp.Cliente = c.Cliente.Nombre + " " + c.Cliente.Apellido
	}
	if c.Profesional != nil {
		resp.Profesional = c.Profesional.Nombre + " " + c.Profesional.Apellido
	}
	if c.Servicio != nil {
		resp.Servicio = c.Servicio.Nombre
	}
	return resp
}

func citasToResponses(citas []model.Cita) []dto.CitaResponse {
	out := make([]dto.CitaResponse, 0, len(citas))
	for i := range citas {
		out = append(out, *citaToResponse(&citas[i]))
	}
	return out
}
