package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be within [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within [1, 65535] (got %d)", c.Server.Port)
	}
	if err := c.Server.normalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Notes.validate(); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	return nil
}

// normalize makes BasePath either empty or "/segment" without a trailing slash.
func (s *ServerConfig) normalize() error {
	p := strings.TrimSpace(s.BasePath)
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		return fmt.Errorf("base_path must start with '/' (got %q)", s.BasePath)
	}
	s.BasePath = p
	return nil
}

func (l *LogConfig) validate() error {
	if strings.TrimSpace(l.File) == "" {
		return nil
	}
	if l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 (got %d)", l.MaxSizeMB)
	}
	if l.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be >= 0 (got %d)", l.MaxBackups)
	}
	return nil
}

func (n *NotesConfig) validate() error {
	if n.TitleMaxLength <= 0 || n.TitleMaxLength > domain.NoteTitleMaxLength {
		return fmt.Errorf("title_max_length must be within [1, %d] (got %d)", domain.NoteTitleMaxLength, n.TitleMaxLength)
	}
	return nil
}
