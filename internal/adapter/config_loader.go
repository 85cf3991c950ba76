package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	m "github.com/mouse-blink/scopes/internal/model"
)

// ConfigLoader reads the optional project-level config file.
type ConfigLoader interface {
	// Load reads filename from dir. An absent file reports (nil, false,
	// nil); a present but unparsable file reports an error.
	Load(dir, filename string) (*m.FileConfig, bool, error)
}

// ViperConfigLoader loads the project config file as JSON through viper.
type ViperConfigLoader struct{}

// NewViperConfigLoader creates a ConfigLoader backed by viper.
func NewViperConfigLoader() *ViperConfigLoader {
	return &ViperConfigLoader{}
}

// Load reads and decodes the project config file.
func (l *ViperConfigLoader) Load(dir, filename string) (*m.FileConfig, bool, error) {
	path := filepath.Join(dir, filename)

	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, false, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg m.FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, false, fmt.Errorf("decode config %s: %w", path, err)
	}

	return &cfg, true, nil
}
