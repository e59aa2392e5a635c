package commands

import (
	"github.com/spf13/cobra"

	"github.com/austencloud/tka-engine/config"
	"github.com/austencloud/tka-engine/errors"
)

// loadConfig honors an explicit --config path, falling back to the standard
// search order (user config, then tka.toml found upward from cwd, then env).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
