package app

import (
	"fmt"
	"strings"

	"github.com/adhocore/gronx"

	"github.com/eladmint/whatsapp-analyzer/pkg/config"
)

// validateConfig fails fast on missing required keys so misconfiguration
// surfaces at startup, not on first use.
func validateConfig(cfg *config.Config, dbPath string) error {
	if strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("storage.db_path is required (flag -db or CHATALYZER_DB_PATH)")
	}
	if len(cfg.Security.SigningKeys) == 0 {
		return fmt.Errorf("security.signing_keys is required (or CHATALYZER_SIGNING_KEYS); storage endpoints cannot verify identities without it")
	}
	if cfg.AI.Enabled && strings.TrimSpace(cfg.AI.APIKey) == "" {
		return fmt.Errorf("ai.enabled is set but ai.api_key is empty (set OPENROUTER_API_KEY)")
	}
	if cfg.Retention.Enabled {
		if cfg.Retention.Period == "" {
			return fmt.Errorf("retention.enabled is set but retention.period is empty")
		}
		if cron := cfg.Retention.Cron; cron != "" && !gronx.IsValid(cron) {
			return fmt.Errorf("invalid retention cron expression: %s", cron)
		}
	}
	return nil
}
