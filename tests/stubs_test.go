package tests

// In-memory repository stubs shared by the service tests.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/luisesse/beauty-manager/internal/model"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Citas ─────────────────────────────────────────────────────────────────────

type stubCitaRepo struct {
	citas map[uuid.UUID]*model.Cita
}

func newStubCitaRepo() *stubCitaRepo {
	return &stubCitaRepo{citas: make(map[uuid.UUID]*model.Cita)}
}

func (r *stubCitaRepo) Crear(_ context.Context, c *model.Cita) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.citas[c.ID] = c
	return nil
}

func (r *stubCitaRepo) Actualizar(_ context.Context, c *model.Cita) error {
	r.citas[c.ID] = c
	return nil
}

func (r *stubCitaRepo) ObtenerPorID(_ context.Context, empresaID, id uuid.UUID) (*model.Cita, error) {
	c, ok := r.citas[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCitaRepo) ExisteConflicto(_ context.Context, empresaID, profesionalID uuid.UUID, fecha time.Time, hora string, excluirID *uuid.UUID) (bool, error) {
	for _, c := range r.citas {
		if excluirID != nil && c.ID == *excluirID {
			continue
		}
		if c.EmpresaID == empresaID && c.ProfesionalID == profesionalID &&
			c.Fecha.Equal(fecha) && c.Hora == hora && c.Estado != model.CitaCancelado {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCitaRepo) ListarPorFecha(_ context.Context, empresaID uuid.UUID, fecha time.Time) ([]model.Cita, error) {
	var out []model.Cita
	for _, c := range r.citas {
		if c.EmpresaID == empresaID && c.Fecha.Equal(fecha) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hora < out[j].Hora })
	return out, nil
}

func (r *stubCitaRepo) ListarActivas(_ context.Context, empresaID uuid.UUID, desde time.Time) ([]model.Cita, error) {
	var out []model.Cita
	for _, c := range r.citas {
		if c.EmpresaID == empresaID && !c.Fecha.Before(desde) &&
			(c.Estado == model.CitaPendiente || c.Estado == model.CitaConfirmado) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.Before(out[j].Fecha)
		}
		return out[i].Hora < out[j].Hora
	})
	return out, nil
}

func (r *stubCitaRepo) ListarPorCliente(_ context.Context, empresaID, clienteID uuid.UUID) ([]model.Cita, error) {
	var out []model.Cita
	for _, c := range r.citas {
		if c.EmpresaID == empresaID && c.ClienteID == clienteID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.After(out[j].Fecha)
		}
		return out[i].Hora > out[j].Hora
	})
	return out, nil
}

func (r *stubCitaRepo) ListarRealizadas(_ context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) ([]model.Cita, error) {
	var out []model.Cita
	for _, c := range r.citas {
		if c.EmpresaID != empresaID || c.Estado != model.CitaRealizado {
			continue
		}
		if c.Fecha.Before(desde) || c.Fecha.After(hasta) {
			continue
		}
		if profesionalID != nil && c.ProfesionalID != *profesionalID {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.Before(out[j].Fecha)
		}
		return out[i].Hora < out[j].Hora
	})
	return out, nil
}

func (r *stubCitaRepo) SumMontoPorMetodo(_ context.Context, empresaID uuid.UUID, desde, hasta time.Time, profesionalID *uuid.UUID) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, c := range r.citas {
		if c.EmpresaID != empresaID || c.Estado != model.CitaRealizado || c.MontoCobrado == nil {
			continue
		}
		if c.Fecha.Before(desde) || c.Fecha.After(hasta) {
			continue
		}
		if profesionalID != nil && c.ProfesionalID != *profesionalID {
			continue
		}
		sums[c.MetodoPago] = sums[c.MetodoPago].Add(*c.MontoCobrado)
	}
	return sums, nil
}

func (r *stubCitaRepo) ListarParaRecordatorio(_ context.Context, fecha time.Time, limit int) ([]model.Cita, error) {
	var out []model.Cita
	for _, c := range r.citas {
		if c.Fecha.Equal(fecha) && c.Estado == model.CitaConfirmado && !c.RecordatorioEnviado {
			out = append(out, *c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubCitaRepo) MarcarRecordatorioEnviado(_ context.Context, id uuid.UUID) error {
	if c, ok := r.citas[id]; ok {
		c.RecordatorioEnviado = true
	}
	return nil
}

var _ repository.CitaRepository = (*stubCitaRepo)(nil)

// ── Horarios ──────────────────────────────────────────────────────────────────

type stubHorarioRepo struct {
	horarios map[int]*model.HorarioAtencion // keyed by dia_semana, single tenant
}

func newStubHorarioRepo() *stubHorarioRepo {
	return &stubHorarioRepo{horarios: make(map[int]*model.HorarioAtencion)}
}

func (r *stubHorarioRepo) Upsert(_ context.Context, h *model.HorarioAtencion) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.horarios[h.DiaSemana] = h
	return nil
}

func (r *stubHorarioRepo) Listar(_ context.Context, _ uuid.UUID) ([]model.HorarioAtencion, error) {
	var out []model.HorarioAtencion
	for dia := 0; dia < 7; dia++ {
		if h, ok := r.horarios[dia]; ok {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHorarioRepo) ObtenerPorDia(_ context.Context, _ uuid.UUID, diaSemana int) (*model.HorarioAtencion, error) {
	h, ok := r.horarios[diaSemana]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h, nil
}

var _ repository.HorarioRepository = (*stubHorarioRepo)(nil)

// ── Clientes ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes  map[uuid.UUID]*model.Cliente
	citaCount map[uuid.UUID]int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{
		clientes:  make(map[uuid.UUID]*model.Cliente),
		citaCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context, empresaID uuid.UUID) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, empresaID, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) ObtenerPorCIRUC(_ context.Context, empresaID uuid.UUID, ciruc string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID && strings.EqualFold(c.CIRUC, ciruc) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Eliminar(_ context.Context, _, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountCitas(_ context.Context, _, id uuid.UUID) (int64, error) {
	return r.citaCount[id], nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Profesionales ─────────────────────────────────────────────────────────────

type stubProfesionalRepo struct {
	profesionales map[uuid.UUID]*model.Profesional
	citaCount     map[uuid.UUID]int64
}

func newStubProfesionalRepo() *stubProfesionalRepo {
	return &stubProfesionalRepo{
		profesionales: make(map[uuid.UUID]*model.Profesional),
		citaCount:     make(map[uuid.UUID]int64),
	}
}

func (r *stubProfesionalRepo) Crear(_ context.Context, p *model.Profesional) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.profesionales[p.ID] = p
	return nil
}

func (r *stubProfesionalRepo) Listar(_ context.Context, empresaID uuid.UUID, incluirInactivos bool) ([]model.Profesional, error) {
	var out []model.Profesional
	for _, p := range r.profesionales {
		if p.EmpresaID != empresaID {
			continue
		}
		if !incluirInactivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProfesionalRepo) ObtenerPorID(_ context.Context, empresaID, id uuid.UUID) (*model.Profesional, error) {
	p, ok := r.profesionales[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProfesionalRepo) Actualizar(_ context.Context, p *model.Profesional) error {
	r.profesionales[p.ID] = p
	return nil
}

func (r *stubProfesionalRepo) Eliminar(_ context.Context, _, id uuid.UUID) error {
	delete(r.profesionales, id)
	return nil
}

func (r *stubProfesionalRepo) CountCitas(_ context.Context, _, id uuid.UUID) (int64, error) {
	return r.citaCount[id], nil
}

var _ repository.ProfesionalRepository = (*stubProfesionalRepo)(nil)

// ── Servicios ─────────────────────────────────────────────────────────────────

type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
	citaCount map[uuid.UUID]int64
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{
		servicios: make(map[uuid.UUID]*model.Servicio),
		citaCount: make(map[uuid.UUID]int64),
	}
}

func (r *stubServicioRepo) Crear(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Listar(_ context.Context, empresaID uuid.UUID) ([]model.Servicio, error) {
	var out []model.Servicio
	for _, s := range r.servicios {
		if s.EmpresaID == empresaID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubServicioRepo) ObtenerPorID(_ context.Context, empresaID, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok || s.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubServicioRepo) Actualizar(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Eliminar(_ context.Context, _, id uuid.UUID) error {
	delete(r.servicios, id)
	return nil
}

func (r *stubServicioRepo) CountCitas(_ context.Context, _, id uuid.UUID) (int64, error) {
	return r.citaCount[id], nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// ── Gastos ────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	categorias map[uuid.UUID]*model.CategoriaGasto
	gastos     map[uuid.UUID]*model.Gasto
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{
		categorias: make(map[uuid.UUID]*model.CategoriaGasto),
		gastos:     make(map[uuid.UUID]*model.Gasto),
	}
}

func (r *stubGastoRepo) CrearCategoria(_ context.Context, c *model.CategoriaGasto) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubGastoRepo) ListarCategorias(_ context.Context, empresaID uuid.UUID) ([]model.CategoriaGasto, error) {
	var out []model.CategoriaGasto
	for _, c := range r.categorias {
		if c.EmpresaID == empresaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) ObtenerCategoriaPorID(_ context.Context, empresaID, id uuid.UUID) (*model.CategoriaGasto, error) {
	c, ok := r.categorias[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubGastoRepo) ObtenerCategoriaPorNombre(_ context.Context, empresaID uuid.UUID, nombre string) (*model.CategoriaGasto, error) {
	for _, c := range r.categorias {
		if c.EmpresaID == empresaID && strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubGastoRepo) EliminarCategoria(_ context.Context, _, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubGastoRepo) CountGastosPorCategoria(_ context.Context, _, categoriaID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.gastos {
		if g.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (r *stubGastoRepo) Crear(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) Listar(_ context.Context, empresaID uuid.UUID, desde, hasta time.Time) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.EmpresaID == empresaID && !g.Fecha.Before(desde) && !g.Fecha.After(hasta) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) ObtenerPorID(_ context.Context, empresaID, id uuid.UUID) (*model.Gasto, error) {
	g, ok := r.gastos[id]
	if !ok || g.EmpresaID != empresaID {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubGastoRepo) Actualizar(_ context.Context, g *model.Gasto) error {
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) Eliminar(_ context.Context, _, id uuid.UUID) error {
	delete(r.gastos, id)
	return nil
}

func (r *stubGastoRepo) SumGastos(_ context.Context, empresaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.gastos {
		if g.EmpresaID == empresaID && !g.Fecha.Before(desde) && !g.Fecha.After(hasta) {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Empresas ──────────────────────────────────────────────────────────────────

type stubEmpresaRepo struct {
	empresas map[uuid.UUID]*model.Empresa
}

func newStubEmpresaRepo() *stubEmpresaRepo {
	return &stubEmpresaRepo{empresas: make(map[uuid.UUID]*model.Empresa)}
}

func (r *stubEmpresaRepo) Crear(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empresas[e.ID] = e
	return nil
}

func (r *stubEmpresaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpresaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpresaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.empresas, id)
	return nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Activo && (strings.EqualFold(u.Username, username) || (u.Email != nil && strings.EqualFold(*u.Email, username))) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context, empresaID uuid.UUID) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.EmpresaID == empresaID && u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context, empresaID uuid.UUID) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.EmpresaID == empresaID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, empresaID, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok && u.EmpresaID == empresaID {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, empresaID, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok && u.EmpresaID == empresaID {
		u.Activo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
