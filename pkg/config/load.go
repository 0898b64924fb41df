package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/preform/errors"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/schema"
	"github.com/cloudposse/preform/pkg/xdg"
)

var configExtensions = []string{".yaml", ".yml"}

// LoadConfig builds the configuration from the following sources (from lower to higher priority):
// defaults, XDG config dir (~/.config/preform), current directory, PREFORM_* ENV vars,
// the file named by --config, and command-line flags.
func LoadConfig(configPath string, flags *pflag.FlagSet) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration

	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	for _, dir := range []string{xdg.ConfigDir(), "."} {
		if err := mergeConfigFromDir(v, dir); err != nil {
			return cfg, err
		}
	}

	if configPath != "" {
		if err := mergeConfigFile(v, configPath); err != nil {
			return cfg, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Join(errUtils.ErrParseConfig, err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		abs, err := filepath.Abs(used)
		if err != nil {
			return cfg, err
		}
		cfg.ConfigFileUsed = abs
	}

	if err := validate(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// setDefaultConfiguration sets the defaults on the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("env_file", DefaultEnvFile)
	v.SetDefault("state.dir", DefaultStateDir)
	v.SetDefault("state.file", DefaultStateFile)
	v.SetDefault("templates", []string{DefaultTemplate})
	v.SetDefault("command", DefaultCommand)
	v.SetDefault("substitution.order", DefaultSubstitutionOrder)
	v.SetDefault("validate_hcl", true)
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.level", string(log.LogLevelInfo))
}

// mergeConfigFromDir merges `preform.yaml` (or `.yml`) from dir when it exists.
func mergeConfigFromDir(v *viper.Viper, dir string) error {
	for _, ext := range configExtensions {
		path := filepath.Join(dir, CliConfigFileName+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		log.Debug("Found config", "file", path)
		return mergeConfigFile(v, path)
	}
	log.Trace("Config not found", "dir", dir)
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(errors.Join(errUtils.ErrParseConfig, err)).
			WithContext("file", path).
			Err()
	}
	return nil
}

// bindFlags binds the logging flags so that explicitly passed flags win over every other source.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	bindings := map[string]string{
		"logs.level": LogsLevelFlag,
		"logs.file":  LogsFileFlag,
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg *schema.Configuration) error {
	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return err
	}

	switch cfg.Substitution.Order {
	case SubstitutionOrderInsertion, SubstitutionOrderLongestFirst:
	default:
		return errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrInvalidSubstitution, cfg.Substitution.Order)).
			WithSentinel(errUtils.ErrInvalidSubstitution).
			WithHintf("Set `substitution.order` to %q or %q", SubstitutionOrderInsertion, SubstitutionOrderLongestFirst).
			Err()
	}

	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	return nil
}
