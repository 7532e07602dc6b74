package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Alijeyrad/psyassist_backend/pkg/constants"
	"github.com/spf13/viper"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// Allow env vars to override config values.
	// e.g. PSYASSIST_DATABASE_HOST overrides database.host
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the config file (optional in Docker environments)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
		if os.Getenv(constants.EnvPrefix+"_DATABASE_DRIVER") == "" && os.Getenv(constants.EnvPrefix+"_DATABASE_HOST") == "" {
			return nil, fmt.Errorf("config file not found in %q and no database env overrides set", configPath)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.rate_limit.requests_per_window", 60)
	v.SetDefault("server.rate_limit.window_seconds", 30)
	v.SetDefault("authentication.paseto.mode", "local")
	v.SetDefault("authentication.paseto.issuer", "psyassist")
	v.SetDefault("authentication.paseto.audience", "psyassist-api")
	v.SetDefault("authentication.paseto.access_ttl_minutes", 15)
	v.SetDefault("authorization.policy_store", "memory")
	v.SetDefault("authorization.enable_audit", true)
	v.SetDefault("observability.service_name", "psyassist_backend")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("nats.subject_prefix", "psyassist")
	v.SetDefault("assessment.session_ttl_minutes", 720)
	v.SetDefault("report.file_prefix", "דוח_אבחון")
	v.SetDefault("report.title", `דו"ח אבחון פסיכולוגי חינוכי`)
	v.SetDefault("report.header_lines", []string{"מחלקת פסיכולוגיה חינוכית", "השירות הפסיכולוגי החינוכי"})
	v.SetDefault("report.signature_salt", "psyassist report signature")
	v.SetDefault("report.timezone", "Asia/Jerusalem")
}
