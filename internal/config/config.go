package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Facebook        Facebook        `mapstructure:",squash"`
	CampaignSync    CampaignSync    `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Guard           Guard           `mapstructure:",squash"`
	IntegrationSync IntegrationSync `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`

	MaxOpenConns           int `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int `mapstructure:"database_conn_max_lifetime_minutes"`
}

type Facebook struct {
	BaseURL        string        `mapstructure:"facebook_base_url"`
	URL            string        `mapstructure:"-"`
	DialogURL      string        `mapstructure:"facebook_dialog_url"`
	Version        string        `mapstructure:"facebook_version"`
	AppID          string        `mapstructure:"facebook_app_id"`
	AppSecret      string        `mapstructure:"facebook_app_secret"`
	RedirectURI    string        `mapstructure:"facebook_redirect_uri"`
	RequestTimeout time.Duration `mapstructure:"-"`
	TimeoutSeconds int           `mapstructure:"facebook_request_timeout_seconds"`
	MaxPages       int           `mapstructure:"facebook_max_pages"`
}

type CampaignSync struct {
	ErrorPolicy  string `mapstructure:"campaign_sync_error_policy"`
	StatusPolicy string `mapstructure:"campaign_status_policy"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo usado pelo Supabase para assinar os JWTs dos usuários
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Guard struct {
	RedisURL   string        `mapstructure:"redis_url"`
	TTLSeconds int           `mapstructure:"guard_ttl_seconds"`
	TTL        time.Duration `mapstructure:"-"`
}

type IntegrationSync struct {
	CronSchedule        string `mapstructure:"integration_sync_cron"`
	RefreshWindowHours  int    `mapstructure:"integration_token_refresh_window_hours"`
	RequestDelaySeconds int    `mapstructure:"integration_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"integration_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/postgres?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_DIALOG_URL", "https://www.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v22.0")
	viper.SetDefault("FACEBOOK_APP_ID", "")
	viper.SetDefault("FACEBOOK_APP_SECRET", "")
	viper.SetDefault("FACEBOOK_REDIRECT_URI", "http://localhost:3000/integrations/facebook/callback")
	viper.SetDefault("FACEBOOK_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("FACEBOOK_MAX_PAGES", 50)

	// fail_fast | continue_on_error
	viper.SetDefault("CAMPAIGN_SYNC_ERROR_POLICY", "fail_fast")
	// provider | force_active
	viper.SetDefault("CAMPAIGN_STATUS_POLICY", "provider")

	viper.SetDefault("AUTH_SECRET", "your_supabase_jwt_secret")
	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("GUARD_TTL_SECONDS", 300)

	viper.SetDefault("INTEGRATION_SYNC_CRON", "0 4 * * *")           // Todos os dias às 4h da manhã
	viper.SetDefault("INTEGRATION_TOKEN_REFRESH_WINDOW_HOURS", 24*7) // Renova tokens que expiram em até 7 dias
	viper.SetDefault("INTEGRATION_SYNC_REQUEST_DELAY_SECONDS", 2)    // 2 segundos entre integrações
	viper.SetDefault("INTEGRATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Normalize()

	return config, nil
}

// Normalize preenche os campos derivados a partir dos valores lidos do ambiente
func (c *Config) Normalize() {
	c.Facebook.BaseURL = strings.TrimRight(c.Facebook.BaseURL, "/")
	c.Facebook.URL = fmt.Sprintf("%s/%s", c.Facebook.BaseURL, c.Facebook.Version)

	if c.Facebook.TimeoutSeconds <= 0 {
		c.Facebook.TimeoutSeconds = 30
	}
	c.Facebook.RequestTimeout = time.Duration(c.Facebook.TimeoutSeconds) * time.Second

	if c.Facebook.MaxPages <= 0 {
		c.Facebook.MaxPages = 50
	}

	if c.Guard.TTLSeconds <= 0 {
		c.Guard.TTLSeconds = 300
	}
	c.Guard.TTL = time.Duration(c.Guard.TTLSeconds) * time.Second

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
