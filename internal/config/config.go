package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/jazeyttv/jazey-dev/internal/pkg/mail"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 3000
	defaultEnv      = "development"
	defaultDataFile = "data/jazey.json"
	defaultSiteName = "JAZEY Development"
)

// AdminConfig is the single configured admin credential pair. Password may
// be a bcrypt hash (a "$2" prefix) or a plain value.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence so `.env` deployments keep working.
type AppConfig struct {
	Port              int         `yaml:"port"`
	Env               string      `yaml:"env"` // "development" | "production"
	DataFile          string      `yaml:"data_file"`
	SiteName          string      `yaml:"site_name"`
	AllowedOrigins    []string    `yaml:"allowed_origins"`
	JWTSecret         string      `yaml:"jwt_secret"`
	Admin             AdminConfig `yaml:"admin"`
	DiscordWebhookURL string      `yaml:"discord_webhook_url"`
	WidgetURL         string      `yaml:"widget_url"`
	Mail              mail.Config `yaml:"mail"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML config at path, falling back to defaults when the
// file is absent. A missing config file is not an error; a malformed one is.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		DataFile: defaultDataFile,
		SiteName: defaultSiteName,
	}

	if path == "" {
		path = DefaultConfigPath
	}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.DiscordWebhookURL = v
	}
	if v := os.Getenv("WIDGET_URL"); v != "" {
		cfg.WidgetURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
}

func normalize(cfg *AppConfig) {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaultPort
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.DataFile) == "" {
		cfg.DataFile = defaultDataFile
	}
	if strings.TrimSpace(cfg.SiteName) == "" {
		cfg.SiteName = defaultSiteName
	}
	origins := cfg.AllowedOrigins[:0]
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins
}
