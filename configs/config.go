// описание общего конфига для сервиса клиники
package configs

import (
	"fmt"
	"os"
	"vet_service/internal/config"
	"vet_service/internal/jwt_service"

	"github.com/joho/godotenv"
)

type VetServiceConfig struct {
	ServerConf     *config.ServerConfig
	PostgresDBConf *config.PostgresDBConfig
	CookieConf     *config.CookieManagerConfig
	JWTConfig      *jwt_service.JWTConfig // секретный ключ для подписи и время жизни
}

// загружаем конфиг-данные из .env и .yml файлов
func LoadConfig() (*VetServiceConfig, error) {
	// .env опционален: в контейнере переменные приходят из окружения напрямую
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	// загружаем данные из .yml файла для serverConfig
	serverConfig, err := config.LoadYAMLConfig[config.ServerConfig](os.Getenv("SERVER_CONFIG_ADDRESS_STRING"), config.UseDefaultServerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	// загружаем конфиг подключения к postgres из переменных окружения
	postgresDBConfig, err := config.NewPostgresDBConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load postgres config: %w", err)
	}

	// загружаем данные из .yml файла для конфига куки
	cookieConfig, err := config.LoadYAMLConfig[config.CookieManagerConfig](os.Getenv("COOKIE_CONFIG_ADDRESS_STRING"), config.DefaultCookieConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookie config: %w", err)
	}

	// связка SameSite/Secure проверяется на старте, а не в момент установки куки
	if err := cookieConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cookie config: %w", err)
	}

	// загружаем конфиг JWT: время жизни из .yml, секрет строго из JWT_SECRET
	jwtConfig, err := jwt_service.LoadJWTConfig(os.Getenv("JWT_CONFIG_ADDRESS_STRING"))
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT config: %w", err)
	}

	return &VetServiceConfig{
		ServerConf:     serverConfig,
		PostgresDBConf: postgresDBConfig,
		CookieConf:     cookieConfig,
		JWTConfig:      jwtConfig,
	}, nil
}
