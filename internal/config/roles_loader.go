package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"jobsprint/internal/ats"
)

var (
	loadedRoles     map[string]ats.RoleProfile
	loadedRolesOnce sync.Once
)

// GetLoadedRoles returns the custom role profiles loaded from the role
// library file, keyed by library key. Empty when no file is configured.
func GetLoadedRoles() map[string]ats.RoleProfile {
	loadedRolesOnce.Do(func() {
		loadedRoles = map[string]ats.RoleProfile{}
	})
	return loadedRoles
}

// loadRoleLibrary loads extra role keyword profiles from the configured
// library file. The file may be YAML or JSON, mapping role keys to
// required/nice keyword lists. Keys are normalized to lowercase.
func (c *Config) loadRoleLibrary() error {
	loadedRolesOnce.Do(func() {
		loadedRoles = map[string]ats.RoleProfile{}
	})

	if c.Analysis.RoleLibraryFile == "" {
		return nil
	}

	absPath, err := filepath.Abs(c.Analysis.RoleLibraryFile)
	if err != nil {
		return fmt.Errorf("failed to resolve role library path '%s': %w", c.Analysis.RoleLibraryFile, err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("role library file not found: %s", absPath)
	}

	v := viper.New()
	v.SetConfigFile(absPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read role library file '%s': %w", absPath, err)
	}

	var profiles map[string]ats.RoleProfile
	if err := v.Unmarshal(&profiles); err != nil {
		return fmt.Errorf("failed to unmarshal role library file '%s': %w", absPath, err)
	}

	normalized := make(map[string]ats.RoleProfile, len(profiles))
	for key, profile := range profiles {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return fmt.Errorf("role library file '%s' contains an empty role key", absPath)
		}
		if len(profile.Required) == 0 && len(profile.Nice) == 0 {
			return fmt.Errorf("role '%s' in library file '%s' has no keywords", key, absPath)
		}
		normalized[key] = profile
	}
	loadedRoles = normalized

	c.logRoleLibrarySummary(absPath)
	return nil
}

// logRoleLibrarySummary logs which custom roles were loaded
func (c *Config) logRoleLibrarySummary(path string) {
	log.Println("[CONFIG] === Role Library Loading Summary ===")
	if len(loadedRoles) == 0 {
		log.Println("[CONFIG] No custom roles loaded - using built-in library")
	} else {
		keys := make([]string, 0, len(loadedRoles))
		for k := range loadedRoles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		log.Printf("[CONFIG] Loaded %d custom role(s) from %s: %s", len(loadedRoles), path, strings.Join(keys, ", "))
	}
	log.Println("[CONFIG] ==========================================")
}
