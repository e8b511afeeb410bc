package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "CREATE_VITE"
	userAgentKey   = "user-agent"
	userAgentEnv   = "npm_config_user_agent"
	configBaseName = ".create-vite"
)

type config struct {
	Templates string
	UserAgent string
	Verbose   bool
}

// loadConfig layers flags over CREATE_VITE_* environment variables over the
// config file over defaults.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(userAgentKey, userAgentEnv); err != nil {
		return config{}, err
	}
	v.SetDefault(templatesFlag, defaultTemplatesDir())

	for _, name := range []string{templatesFlag, verboseFlag} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return config{}, err
		}
	}

	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configBaseName)
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("cannot read config: %w", err)
		}
	}

	return config{
		Templates: v.GetString(templatesFlag),
		UserAgent: v.GetString(userAgentKey),
		Verbose:   v.GetBool(verboseFlag),
	}, nil
}

// defaultTemplatesDir is the templates directory shipped next to the binary.
func defaultTemplatesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}
	return filepath.Join(filepath.Dir(exe), "templates")
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
}
