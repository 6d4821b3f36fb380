package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	ReviewsAPI  ReviewsAPI  `mapstructure:",squash"`
	Reviews     Reviews     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	ReviewsSync ReviewsSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// ReviewsAPI aponta para o serviço REST que expõe GET /api/reviews
type ReviewsAPI struct {
	BaseURL     string        `mapstructure:"reviews_api_base_url"`
	AccessToken string        `mapstructure:"reviews_api_access_token"`
	Timeout     time.Duration `mapstructure:"reviews_api_timeout"`
}

type Reviews struct {
	// Source define a origem principal: remote ou database
	Source           string         `mapstructure:"reviews_source"`
	DefaultMonths    int            `mapstructure:"reviews_default_months"`
	MonthLabelLocale string         `mapstructure:"reviews_month_label_locale"`
	TimeZone         string         `mapstructure:"reviews_timezone"`
	Location         *time.Location `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

type ReviewsSync struct {
	CronSchedule string `mapstructure:"reviews_sync_cron"`
	Enabled      bool   `mapstructure:"reviews_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/maxreviewer?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REVIEWS_API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("REVIEWS_API_ACCESS_TOKEN", "")
	viper.SetDefault("REVIEWS_API_TIMEOUT", "10s")

	viper.SetDefault("REVIEWS_SOURCE", "remote")
	viper.SetDefault("REVIEWS_DEFAULT_MONTHS", 3)
	viper.SetDefault("REVIEWS_MONTH_LABEL_LOCALE", "es")
	viper.SetDefault("REVIEWS_TIMEZONE", "UTC")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("REVIEWS_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("REVIEWS_SYNC_ENABLED", false)

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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize preenche campos derivados e valida os valores lidos
func (c *Config) normalize() error {
	loc, err := time.LoadLocation(c.Reviews.TimeZone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.Reviews.TimeZone, err)
	}
	c.Reviews.Location = loc

	c.Reviews.Source = strings.ToLower(strings.TrimSpace(c.Reviews.Source))
	switch c.Reviews.Source {
	case "remote":
	case "database":
		if !c.Database.Enabled {
			return fmt.Errorf("reviews_source=database exige database_enabled=true")
		}
	default:
		return fmt.Errorf("reviews_source inválido: %q", c.Reviews.Source)
	}

	if c.Reviews.DefaultMonths < 1 {
		c.Reviews.DefaultMonths = 3
	}

	if c.ReviewsSync.Enabled && !c.Database.Enabled {
		return fmt.Errorf("reviews_sync_enabled=true exige database_enabled=true")
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
