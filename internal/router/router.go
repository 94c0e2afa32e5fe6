package router

import (
	"time"

	"github.com/luisesse/beauty-manager/internal/config"
	"github.com/luisesse/beauty-manager/internal/handler"
	"github.com/luisesse/beauty-manager/internal/middleware"
	"github.com/luisesse/beauty-manager/internal/repository"
	"github.com/luisesse/beauty-manager/internal/service"
	"github.com/luisesse/beauty-manager/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	profesionalRepo := repository.NewProfesionalRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	citaRepo := repository.NewCitaRepository(db)
	horarioRepo := repository.NewHorarioRepository(db)
	gastoRepo := repository.NewGastoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	citaSvc := service.NewCitaService(citaRepo, horarioRepo, clienteRepo, profesionalRepo, servicioRepo, rdb, dispatcher)
	clienteSvc := service.NewClienteService(clienteRepo, citaRepo)
	profesionalSvc := service.NewProfesionalService(profesionalRepo)
	servicioSvc := service.NewServicioService(servicioRepo)
	horarioSvc := service.NewHorarioService(horarioRepo)
	gastoSvc := service.NewGastoService(gastoRepo)
	reporteSvc := service.NewReporteService(citaRepo, gastoRepo, profesionalRepo, empresaRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	citasH := handler.NewCitasHandler(citaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	profesionalesH := handler.NewProfesionalesHandler(profesionalSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	horariosH := handler.NewHorariosHandler(horarioSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequireRole(middleware.RolRecepcion, middleware.RolProfesional, middleware.RolAdministrador)
	recepcionYAdmin := middleware.RequireRole(middleware.RolRecepcion, middleware.RolAdministrador)
	soloAdmin := middleware.RequireRole(middleware.RolAdministrador)

	v1 := r.Group("/v1", jwtMW)
	{
		citas := v1.Group("/citas")
		{
			citas.GET("/agenda", todos, citasH.Agenda)
			citas.GET("/activas", todos, citasH.Activas)
			citas.POST("", recepcionYAdmin, citasH.Agendar)
			citas.PUT("/:id", recepcionYAdmin, citasH.Actualizar)
			citas.POST("/:id/finalizar", recepcionYAdmin, citasH.Finalizar)
			citas.POST("/:id/confirmar", recepcionYAdmin, citasH.Confirmar)
			citas.POST("/:id/cancelar", recepcionYAdmin, citasH.Cancelar)
		}

		v1.GET("/clientes", todos, clientesH.Listar)
		v1.GET("/clientes/:id", todos, clientesH.Obtener)
		v1.GET("/clientes/:id/historial", todos, clientesH.Historial)
		clientes := v1.Group("/clientes", recepcionYAdmin)
		{
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		v1.GET("/profesionales", todos, profesionalesH.Listar)
		v1.GET("/profesionales/:id", todos, profesionalesH.Obtener)
		profesionales := v1.Group("/profesionales", soloAdmin)
		{
			profesionales.POST("", profesionalesH.Crear)
			profesionales.PUT("/:id", profesionalesH.Actualizar)
			profesionales.DELETE("/:id", profesionalesH.Eliminar)
		}

		v1.GET("/servicios", todos, serviciosH.Listar)
		v1.GET("/servicios/:id", todos, serviciosH.Obtener)
		servicios := v1.Group("/servicios", soloAdmin)
		{
			servicios.POST("", serviciosH.Crear)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Eliminar)
		}

		v1.GET("/horarios", todos, horariosH.Listar)
		v1.PUT("/horarios/:dia", soloAdmin, horariosH.Configurar)

		v1.GET("/gastos/categorias", todos, gastosH.ListarCategorias)
		v1.POST("/gastos/categorias", recepcionYAdmin, gastosH.CrearCategoria)
		v1.DELETE("/gastos/categorias/:id", soloAdmin, gastosH.EliminarCategoria)
		v1.GET("/gastos", todos, gastosH.Listar)
		gastos := v1.Group("/gastos", recepcionYAdmin)
		{
			gastos.POST("", gastosH.Crear)
			gastos.PUT("/:id", gastosH.Actualizar)
			gastos.DELETE("/:id", gastosH.Eliminar)
		}

		reportes := v1.Group("/reportes", soloAdmin)
		{
			reportes.GET("/caja", reportesH.Caja)
			reportes.GET("/caja/pdf", reportesH.CajaPDF)
			reportes.GET("/comisiones/:profesional_id", reportesH.Comision)
		}

		usuarios := v1.Group("/usuarios", soloAdmin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
			usuarios.POST("/:id/reactivar", authH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
