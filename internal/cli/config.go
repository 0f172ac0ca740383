package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/activitylog/internal/paths"
	"github.com/mesh-intelligence/activitylog/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ACTIVITYLOG"

	cfgKeyDBPath      = "db_path"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFile     = "log_file"
	cfgKeyLogJSON     = "log_json"
	cfgKeyClearScreen = "clear_screen"

	defaultLogLevel = "warn"
)

// configMode selects whether loading may create config.yaml.
type configMode int

const (
	// readConfig reads config.yaml if present and never writes it.
	readConfig configMode = iota
	// ensureConfig writes a default config.yaml when it is missing. Used by
	// init and the interactive menu.
	ensureConfig
)

// defaultConfig is written to config.yaml on first run. An empty db_path
// means the database lives in the working directory.
func defaultConfig() types.Config {
	return types.Config{
		LogLevel:    defaultLogLevel,
		ClearScreen: true,
	}
}

// loadConfig resolves the config directory, reads config.yaml with Viper,
// and resolves the database path. Precedence for the database path is
// --db flag > config.yaml db_path > ACTIVITYLOG_DB > ./ActividadFisica.db.
// Logging keys can be overridden with ACTIVITYLOG_LOG_LEVEL,
// ACTIVITYLOG_LOG_FILE and ACTIVITYLOG_LOG_JSON. With ensureConfig a missing
// config.yaml is created with defaults; with readConfig the directory is left
// untouched and defaults apply.
func loadConfig(flags *rootFlags, mode configMode) (types.Config, string, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, "", fmt.Errorf("resolve config dir: %w", err)
	}
	if mode == ensureConfig {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return types.Config{}, "", fmt.Errorf("create config dir: %w", err)
		}
		if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultConfig()); err != nil {
			return types.Config{}, "", fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	def := defaultConfig()
	v.SetDefault(cfgKeyDBPath, def.DBPath)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFile, def.LogFile)
	v.SetDefault(cfgKeyLogJSON, def.LogJSON)
	v.SetDefault(cfgKeyClearScreen, def.ClearScreen)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyLogLevel, cfgKeyLogFile, cfgKeyLogJSON} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, "", fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, "", fmt.Errorf("decode config: %w", err)
	}

	cfg.DBPath, err = paths.ResolveDBPath(flags.dbPath, cfg.DBPath)
	if err != nil {
		return types.Config{}, "", fmt.Errorf("resolve db path: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, configDir, nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string, cfg types.Config) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte("# activitylog configuration\n"), data...), 0o644)
}
