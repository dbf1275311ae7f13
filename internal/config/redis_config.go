package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// структура конфига для Redis (используется для черного списка токенов)
type RedisConfig struct {
	Host         string        // Хост, где расположен redis
	Port         string        // Порт для подключения
	Password     string        // Пароль
	DB           int32         // 16 пронумерованных баз данных (0-15 по умолчанию), загружаем номер
	PoolSize     int32         // Максимальное количество одновременных TCP-соединений к Redis
	MinIdleConns int32         // Минимальное количество соединений, которое нужно держать открытыми
	MaxRetries   int32         // Количество повторных запросов при временных сетевых сбоях
	DialTimeout  time.Duration // Максимальное время ожидания при установке нового TCP-соединения
	ReadTimeout  time.Duration // Таймаут чтения ответа от Redis
	WriteTimeout time.Duration // Таймаут отправки команды в Redis
	PoolTimeout  time.Duration // Таймаут ожидания свободного соединения
}

// NewRedisConfigFromEnv создает конфиг Redis из переменных окружения
// Возвращает ошибку, если обязательные поля не заполнены или значения некорректны
func NewRedisConfigFromEnv() (*RedisConfig, error) {
	var errors []string

	// Получаем значение хоста
	host, err := getRequiredEnv("REDIS_HOST")
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Получаем значение порта
	port, err := getRequiredEnv("REDIS_PORT")
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Если есть ошибки в обязательных полях - возвращаем сразу
	if len(errors) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(errors, ", "))
	}

	// пароль может быть пустым для локального redis
	password := getEnvWithDefault("REDIS_PASSWORD", "")

	// Валидируем DB (Redis поддерживает 0-15 обычно, используем дэфолт)
	db, err := getEnvAsInt32WithValidation("REDIS_DB", 0, 0, 15)
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Валидируем PoolSize (разумные границы 1-1000)
	poolSize, err := getEnvAsInt32WithValidation("REDIS_POOL_SIZE", 50, 1, 1000)
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Валидируем MinIdleConns (не может быть больше PoolSize)
	minIdleConns, err := getEnvAsInt32WithValidation("REDIS_MIN_IDLE_CONNS", 5, 1, 1000)
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Дополнительная проверка: MinIdleConns <= PoolSize
	if minIdleConns > poolSize {
		errors = append(errors, fmt.Sprintf("REDIS_MIN_IDLE_CONNS (%d) cannot be greater than REDIS_POOL_SIZE (%d)", minIdleConns, poolSize))
	}

	maxRetries, err := getEnvAsInt32WithValidation("REDIS_MAX_RETRIES", 3, 0, 10)
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Загружаем таймауты с валидацией
	dialTimeout, err := getEnvAsDurationWithValidation("REDIS_DIAL_TIMEOUT", 5*time.Second, 1*time.Second, 30*time.Second)
	if err != nil {
		errors = append(errors, err.Error())
	}

	readTimeout, err := getEnvAsDurationWithValidation("REDIS_READ_TIMEOUT", 3*time.Second, 100*time.Millisecond, 30*time.Second)
	if err != nil {
		errors = append(errors, err.Error())
	}

	writeTimeout, err := getEnvAsDurationWithValidation("REDIS_WRITE_TIMEOUT", 3*time.Second, 100*time.Millisecond, 30*time.Second)
	if err != nil {
		errors = append(errors, err.Error())
	}

	poolTimeout, err := getEnvAsDurationWithValidation("REDIS_POOL_TIMEOUT", 4*time.Second, 1*time.Second, 7*time.Minute)
	if err != nil {
		errors = append(errors, err.Error())
	}

	// Если есть ошибки валидации - возвращаем их
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n%s", strings.Join(errors, "\n"))
	}

	return &RedisConfig{
		Host:         host,
		Port:         port,
		Password:     password,
		DB:           db,
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
		MaxRetries:   maxRetries,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		PoolTimeout:  poolTimeout,
	}, nil
}

// ToRedisOptions переводит наш конфиг в опции клиента go-redis
func (c *RedisConfig) ToRedisOptions() *redis.Options {
	return &redis.Options{
		Addr:         c.Host + ":" + c.Port,
		Password:     c.Password,
		DB:           int(c.DB),
		PoolSize:     int(c.PoolSize),
		MinIdleConns: int(c.MinIdleConns),
		MaxRetries:   int(c.MaxRetries),
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		PoolTimeout:  c.PoolTimeout,
	}
}
