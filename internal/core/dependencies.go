package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"vet_service/configs"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/config"
	"vet_service/internal/cookie"
	"vet_service/internal/jwt_service"
	"vet_service/internal/middleware"
	postgresdb "vet_service/internal/postgres_db"
	"vet_service/internal/redis"
	"vet_service/internal/vet_server/handlers"
	"vet_service/internal/vet_server/repository"
	"vet_service/internal/vet_server/service"

	"github.com/gin-gonic/gin"
)

// VetServiceDependencies содержит все общие зависимости
type VetServiceDependencies struct {
	Config        *configs.VetServiceConfig
	AuthHandler   handlers.AuthHandlerInterface
	ClinicHandler handlers.ClinicHandlerInterface
	AuthGuard     gin.HandlerFunc

	pgRepo    postgresdb.PgRepoInterface
	redisRepo redis.RedisRepositoryInterface
}

// InitDependencies инициализирует общие зависимости для vet_service
func InitDependencies(ctx context.Context) (*VetServiceDependencies, error) {
	// Получаем количество CPU
	currentMaxProcs := runtime.GOMAXPROCS(-1)
	fmt.Printf("Текущее значение GOMAXPROCS: %d\n", currentMaxProcs)

	// Получаем конфигурацию
	conf, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// создаём экземпляр пула соединений для postgresQL
	pgRepo, err := postgresdb.NewPgRepo(ctx, conf.PostgresDBConf)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres pool: %w", err)
	}

	// черный список отозванных токенов живёт в redis. Redis опционален:
	// без него логаут ограничивается удалением куки, как в исходной системе
	var redisRepo redis.RedisRepositoryInterface
	var blackList authinterfaces.BlackListRepository
	if os.Getenv("REDIS_HOST") != "" {
		redisConf, err := config.NewRedisConfigFromEnv()
		if err != nil {
			pgRepo.Close()
			return nil, fmt.Errorf("failed to load redis config: %w", err)
		}

		redisRepo, err = redis.NewRedisRepository(redisConf)
		if err != nil {
			pgRepo.Close()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}

		blackList, err = repository.NewBlackListRepo(redisRepo, "vet_service")
		if err != nil {
			pgRepo.Close()
			redisRepo.Close()
			return nil, fmt.Errorf("failed to init blacklist repo: %w", err)
		}
	} else {
		log.Println("REDIS_HOST is not set, token revocation is disabled")
	}

	// создаём слой репозиториев
	userRepo := repository.NewUserRepository(pgRepo.GetPool())
	clinicRepo := repository.NewClinicRepository(pgRepo.GetPool())

	// создаём сервис токенов и менеджер куки
	jwtService := jwt_service.NewJWTService(conf.JWTConfig)
	cookieManager := cookie.NewManager(*conf.CookieConf)

	// создаём сервисный слой
	authService := service.NewAuthService(userRepo, jwtService, blackList, conf.JWTConfig)
	clinicService := service.NewClinicService(clinicRepo, userRepo)

	// создаём слой хэндлеров
	authHandler := handlers.NewAuthHandler(authService, cookieManager, jwtService.TokenTTL())
	clinicHandler := handlers.NewClinicHandler(clinicService)

	// охранник защищённых маршрутов
	authGuard := middleware.AuthMiddleware(jwtService, cookieManager, blackList)

	return &VetServiceDependencies{
		Config:        conf,
		AuthHandler:   authHandler,
		ClinicHandler: clinicHandler,
		AuthGuard:     authGuard,
		pgRepo:        pgRepo,
		redisRepo:     redisRepo,
	}, nil
}

// Close закрывает внешние ресурсы при остановке сервиса
func (d *VetServiceDependencies) Close() error {
	if d.pgRepo != nil {
		d.pgRepo.Close()
	}
	if d.redisRepo != nil {
		if err := d.redisRepo.Close(); err != nil {
			return fmt.Errorf("failed to close redis: %w", err)
		}
	}
	return nil
}
