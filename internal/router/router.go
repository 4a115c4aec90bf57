package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sijj2003/app-tienda/internal/config"
	"github.com/Sijj2003/app-tienda/internal/handler"
	"github.com/Sijj2003/app-tienda/internal/middleware"
	"github.com/Sijj2003/app-tienda/internal/repository"
	"github.com/Sijj2003/app-tienda/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, fetcher service.TasaFetcher) (*gin.Engine, service.TasaService) {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	avanceRepo := repository.NewAvanceRepository(db)
	recargaRepo := repository.NewRecargaRepository(db)
	tasaRepo := repository.NewTasaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	tasaSvc := service.NewTasaService(tasaRepo, fetcher)
	inventarioSvc := service.NewInventarioService(productoRepo, tasaSvc)
	carritoSvc := service.NewCarritoService(productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, inventarioSvc, carritoSvc, tasaSvc)
	avanceSvc := service.NewAvanceService(avanceRepo)
	recargaSvc := service.NewRecargaService(recargaRepo)
	reporteSvc := service.NewReporteService(ventaRepo, avanceRepo, recargaRepo, tasaSvc, cfg.NombreNegocio, cfg.DataDir)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(inventarioSvc)
	consultaH := handler.NewConsultaPreciosHandler(inventarioSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	avancesH := handler.NewAvancesHandler(avanceSvc)
	recargasH := handler.NewRecargasHandler(recargaSvc)
	tasasH := handler.NewTasasHandler(tasaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/desbloquear", middleware.UnlockRateLimiter(), authH.DesbloquearAdmin)
	}

	// Price check — no auth required, the store scanner hits this directly
	r.GET("/v1/precio/:barcode", consultaH.GetPrecioPorBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Productos — any cashier can read, writes are administrador only
		v1.GET("/productos", productosH.Listar)
		v1.GET("/productos/barcode/:barcode", productosH.ObtenerPorBarcode)
		prods := v1.Group("/productos", middleware.RequireAdmin())
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.POST("/:id/bultos", productosH.AgregarBultos)
			prods.POST("/sincronizar-conteos", productosH.SincronizarConteos)
		}

		// Carritos — :tipo is "venta" or "devolucion"
		v1.GET("/carrito/:tipo", carritoH.Ver)
		v1.POST("/carrito/:tipo/lineas", carritoH.Agregar)
		v1.DELETE("/carrito/:tipo", carritoH.Vaciar)
		// Removing a staged line requires the admin gate (fresh unlock token)
		v1.DELETE("/carrito/:tipo/lineas/:producto_id", middleware.RequireAdmin(), carritoH.Quitar)

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Commit)
			ventas.POST("/devolucion", middleware.RequireAdmin(), ventasH.Devolucion)
			ventas.POST("/cancelar", ventasH.Cancelar)
			ventas.POST("/cierre-forzado", ventasH.CierreForzado)
			ventas.GET("", ventasH.Listar)
		}

		v1.POST("/avances", avancesH.Registrar)
		v1.POST("/recargas", recargasH.Registrar)

		tasas := v1.Group("/tasas")
		{
			tasas.GET("/latest", tasasH.Latest)
			tasas.GET("/asof", tasasH.AsOf)
			tasas.POST("/manual", middleware.RequireAdmin(), tasasH.RegistrarManual)
			tasas.POST("/actualizar", middleware.RequireAdmin(), tasasH.ActualizarDesdeWeb)
		}

		reportes := v1.Group("/reportes", middleware.RequireAdmin())
		{
			reportes.GET("/resumen", reportesH.Resumen)
			reportes.POST("/exportar", reportesH.ExportarPDF)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireAdmin())
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
		}
	}

	return r, tasaSvc
}
