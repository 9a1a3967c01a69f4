package server

import (
	"connectvault/internal/handler"
	customMiddleware "connectvault/internal/middleware"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	echo              *echo.Echo
	jwtSecret         string
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	contactHandler    *handler.ContactHandler
	taskHandler       *handler.TaskHandler
	promoLinkHandler  *handler.PromoLinkHandler
	commissionHandler *handler.CommissionHandler
	dashboardHandler  *handler.DashboardHandler
}

func NewServer(
	db *gorm.DB,
	jwtSecret string,
	authService service.AuthService,
	contactService service.ContactService,
	taskService service.TaskService,
	promoLinkService service.PromoLinkService,
	commissionService service.CommissionService,
	dashboardService service.DashboardService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = httpErrorHandler

	s := &Server{
		echo:              e,
		jwtSecret:         jwtSecret,
		healthHandler:     handler.NewHealthHandler(db),
		authHandler:       handler.NewAuthHandler(authService),
		contactHandler:    handler.NewContactHandler(contactService),
		taskHandler:       handler.NewTaskHandler(taskService),
		promoLinkHandler:  handler.NewPromoLinkHandler(promoLinkService),
		commissionHandler: handler.NewCommissionHandler(commissionService),
		dashboardHandler:  handler.NewDashboardHandler(dashboardService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.healthHandler.Health)

	// -------- auth (public) --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.POST("/forgot-password", s.authHandler.ForgotPassword)
	auth.POST("/reset-password", s.authHandler.ResetPassword)

	// -------- everything below requires a valid token --------
	secured := api.Group("", customMiddleware.JWTAuth(s.jwtSecret))

	secured.GET("/auth/me", s.authHandler.Me)

	secured.GET("/dashboard/summary", s.dashboardHandler.Summary)

	contacts := secured.Group("/contacts")
	contacts.GET("", s.contactHandler.List)
	contacts.POST("", s.contactHandler.Create)
	contacts.GET("/export", s.contactHandler.ExportCSV)
	contacts.GET("/:id", s.contactHandler.Get)
	contacts.PUT("/:id", s.contactHandler.Update)
	contacts.DELETE("/:id", s.contactHandler.Delete)

	tasks := secured.Group("/tasks")
	tasks.GET("", s.taskHandler.List)
	tasks.POST("", s.taskHandler.Create)
	tasks.GET("/:id", s.taskHandler.Get)
	tasks.PUT("/:id", s.taskHandler.Update)
	tasks.DELETE("/:id", s.taskHandler.Delete)

	promoLinks := secured.Group("/promolinks")
	promoLinks.GET("", s.promoLinkHandler.List)
	promoLinks.POST("", s.promoLinkHandler.Create)
	promoLinks.GET("/:id", s.promoLinkHandler.Get)
	promoLinks.PUT("/:id", s.promoLinkHandler.Update)
	promoLinks.DELETE("/:id", s.promoLinkHandler.Delete)

	commissions := secured.Group("/commissions")
	commissions.GET("", s.commissionHandler.List)
	commissions.POST("", s.commissionHandler.Create)
	commissions.GET("/summary", s.commissionHandler.Summary)
	commissions.GET("/export", s.commissionHandler.ExportCSV)
	commissions.GET("/export/xlsx", s.commissionHandler.ExportXLSX)
	commissions.GET("/:id", s.commissionHandler.Get)
	commissions.PUT("/:id", s.commissionHandler.Update)
	commissions.DELETE("/:id", s.commissionHandler.Delete)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
