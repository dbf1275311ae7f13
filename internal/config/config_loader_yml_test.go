package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadYAMLConfig(t *testing.T) {
	t.Run("пустой путь - дефолты без ошибки", func(t *testing.T) {
		cfg, err := LoadYAMLConfig("", DefaultCookieConfig)
		assert.NoError(t, err)
		assert.Equal(t, "strict", cfg.SameSite)
		assert.Equal(t, "/", cfg.DefaultPath)
	})

	t.Run("файла нет - дефолты без ошибки", func(t *testing.T) {
		cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "missing.yml"), DefaultCookieConfig)
		assert.NoError(t, err)
		assert.Equal(t, "strict", cfg.SameSite)
	})

	t.Run("значения из файла перекрывают дефолты", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cookie.yml")
		body := "same_site: none\nsecure: true\nprefix: vet\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadYAMLConfig(path, DefaultCookieConfig)
		assert.NoError(t, err)
		assert.Equal(t, "none", cfg.SameSite)
		assert.True(t, cfg.Secure)
		assert.Equal(t, "vet", cfg.Prefix)
		// незатронутые поля остаются дефолтными
		assert.Equal(t, "/", cfg.DefaultPath)
	})

	t.Run("битый yaml - ошибка", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yml")
		if err := os.WriteFile(path, []byte("same_site: [unclosed"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadYAMLConfig(path, DefaultCookieConfig)
		assert.Error(t, err)
	})
}

// допустимы ровно две связки атрибутов куки, смешение ловим на старте
func TestCookieConfigValidate(t *testing.T) {
	cases := []struct {
		name     string
		sameSite string
		secure   bool
		wantErr  bool
	}{
		{"strict без secure", "strict", false, false},
		{"lax без secure", "lax", false, false},
		{"none с secure", "none", true, false},
		{"strict с secure - смешение", "strict", true, true},
		{"none без secure - браузер отбросит", "none", false, true},
		{"неизвестное значение", "weird", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &CookieManagerConfig{
				SameSite:    tc.sameSite,
				Secure:      tc.secure,
				DefaultPath: "/",
			}
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("пустой default_path", func(t *testing.T) {
		cfg := &CookieManagerConfig{SameSite: "strict"}
		assert.Error(t, cfg.Validate())
	})
}
