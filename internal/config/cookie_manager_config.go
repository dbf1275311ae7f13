package config

import "fmt"

// структура конфига для менеджера куки
type CookieManagerConfig struct {
	Domain      string `yaml:"domain"`       // Domain для production (пустая строка для localhost)
	ProjectMode string `yaml:"project_mode"` // Режим работы: production, staging, development
	Secure      bool   `yaml:"secure"`       // Secure flag (true в production)
	SameSite    string `yaml:"same_site"`    // SameSite режим: lax, strict, none
	DefaultPath string `yaml:"default_path"` // Путь по умолчанию для кук
	Prefix      string `yaml:"prefix"`       // Префикс для имен кук (опционально)
}

// DefaultCookieConfig возвращает конфиг по умолчанию:
// строгий same-site без secure — вариант для same-origin разворачивания по HTTP
func DefaultCookieConfig() *CookieManagerConfig {
	return &CookieManagerConfig{
		SameSite:    "strict",
		DefaultPath: "/",
		Secure:      false,
		// Domain и ProjectMode пустые - должны быть явно заданы
	}
}

// Validate проверяет совместимость атрибутов куки.
// Допустимы только две связки: strict + non-secure (same-origin по HTTP)
// либо none + secure (кросс-доменный клиент по TLS). Браузеры молча
// отбрасывают куку SameSite=None без Secure, поэтому ловим это на старте.
func (c *CookieManagerConfig) Validate() error {
	switch c.SameSite {
	case "strict", "lax":
		if c.Secure {
			return fmt.Errorf("same_site=%q with secure=true mixes the two supported attribute sets", c.SameSite)
		}
	case "none":
		if !c.Secure {
			return fmt.Errorf("same_site=none requires secure=true, browsers reject the cookie otherwise")
		}
	default:
		return fmt.Errorf("unknown same_site value %q", c.SameSite)
	}

	if c.DefaultPath == "" {
		return fmt.Errorf("default_path must not be empty")
	}
	return nil
}
