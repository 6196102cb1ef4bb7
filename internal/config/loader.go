package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the configuration of a shooter variant.
// Search order: customPath -> ~/.shooter/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files found on the search path that fail to parse are skipped; a bad
// customPath is an error.
func LoadShooter(variantID, customPath string) (ShooterConfig, error) {
	// Every source starts from the hard-coded defaults so partial files work.
	cfg := DefaultShooterConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := variantID + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", filename)); ok {
		return loaded, nil
	}

	if data := GetDefaultYAML(variantID); data != nil {
		embedded := DefaultShooterConfig()
		if err := yaml.Unmarshal(data, &embedded); err == nil {
			return embedded, embedded.Validate()
		}
	}
	return cfg, nil
}

// tryLoad reads and validates a config file on the search path.
func tryLoad(path string) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, false
	}
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, false
	}
	if cfg.Validate() != nil {
		return ShooterConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}
