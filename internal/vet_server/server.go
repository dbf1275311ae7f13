// описание HTTP сервера клиники
package vetserver

import (
	"context"
	"log"
	"net/http"
	"vet_service/internal/config"
	"vet_service/internal/middleware"
	"vet_service/internal/vet_server/dto"
	"vet_service/internal/vet_server/handlers"

	"github.com/gin-gonic/gin"
)

// структура сервера клиники
type VetServer struct {
	httpServer    *http.Server
	router        *gin.Engine
	config        *config.ServerConfig
	AuthHandler   handlers.AuthHandlerInterface
	ClinicHandler handlers.ClinicHandlerInterface
	authGuard     gin.HandlerFunc
}

// Конструктор для сервера
func NewVetServer(ctx context.Context, config *config.ServerConfig, authHandler handlers.AuthHandlerInterface, clinicHandler handlers.ClinicHandlerInterface, authGuard gin.HandlerFunc) (*VetServer, error) {
	// создаём экземпляр роутера
	router := gin.Default()
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil, err
	}

	// Добавляем middleware для проброса контекста
	router.Use(func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), "request_id", c.GetHeader("X-Request-ID"))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.Use(middleware.CORSMiddleware(config.AllowedOrigins)) // используем для всех маршрутов работу с CORS

	return &VetServer{
		router:        router,
		config:        config,
		AuthHandler:   authHandler,
		ClinicHandler: clinicHandler,
		authGuard:     authGuard,
	}, nil
}

// Метод для маршрутизации сервера
func (s *VetServer) SetUpRoutes() {
	// маршруты аутентификации
	s.router.GET("/api/auth/check", s.authGuard, s.AuthHandler.CheckHandler)
	s.router.POST("/api/auth/logout", s.AuthHandler.LogoutHandler)
	s.router.POST("/api/auth/register", middleware.ValidateAuthMiddleware(&dto.RegisterRequest{}), s.AuthHandler.RegisterHandler)
	s.router.POST("/api/auth/login", middleware.ValidateAuthMiddleware(&dto.LoginRequest{}), s.AuthHandler.LoginHandler)

	// защищённые маршруты клиники
	protected := s.router.Group("/api", s.authGuard)
	protected.POST("/consultas/create", s.ClinicHandler.CreateConsultationHandler)
	protected.POST("/consultas/delete", s.ClinicHandler.DeleteConsultationHandler)
	protected.GET("/consultas/get", s.ClinicHandler.ListConsultationsHandler)
	protected.GET("/animales/get", s.ClinicHandler.ListAnimalsHandler)
	protected.GET("/tipoconsultas/get", s.ClinicHandler.ListConsultationTypesHandler)
}

// Метод для запуска сервера
func (s *VetServer) Run() error {
	s.SetUpRoutes()

	s.httpServer = &http.Server{
		Handler:        s.router,
		Addr:           s.config.Addr(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}
	log.Printf("Starting HTTP server on %s", s.config.Addr())
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *VetServer) Shutdown(ctx context.Context) error {
	// Останавливаем HTTP сервер
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server shutdown completed")
	return nil
}
