package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	DataForSEO   DataForSEO   `mapstructure:",squash"`
	Ahrefs       Ahrefs       `mapstructure:",squash"`
	BRON         BRON         `mapstructure:",squash"`
	AuditRefresh AuditRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	JWTSecret string `mapstructure:"auth_jwt_secret"`
}

type DataForSEO struct {
	URL      string `mapstructure:"dataforseo_url"`
	Login    string `mapstructure:"dataforseo_login"`
	Password string `mapstructure:"dataforseo_password"`
	// Código de localização do Google usado no domain_rank_overview (2840 = Estados Unidos)
	LocationCode int    `mapstructure:"dataforseo_location_code"`
	LanguageCode string `mapstructure:"dataforseo_language_code"`
}

type Ahrefs struct {
	URL   string `mapstructure:"ahrefs_url"`
	Token string `mapstructure:"ahrefs_token"`
}

type BRON struct {
	URL                    string `mapstructure:"bron_url"`
	APIKey                 string `mapstructure:"bron_api_key"`
	KeywordsTimeoutSeconds int    `mapstructure:"bron_keywords_timeout_seconds"`
	SummaryTimeoutSeconds  int    `mapstructure:"bron_summary_timeout_seconds"`
}

type AuditRefresh struct {
	CronSchedule             string `mapstructure:"audit_refresh_cron"`
	StaleAfterDays           int    `mapstructure:"audit_refresh_stale_after_days"`
	BatchLimit               int    `mapstructure:"audit_refresh_batch_limit"`
	RequestDelayMS           int    `mapstructure:"audit_refresh_request_delay_ms"`
	InvocationTimeoutSeconds int    `mapstructure:"audit_refresh_invocation_timeout_seconds"`
	Enabled                  bool   `mapstructure:"audit_refresh_enabled"`
}

// RequestDelay retorna o intervalo fixo entre domínios no modo batch
func (a AuditRefresh) RequestDelay() time.Duration {
	return time.Duration(a.RequestDelayMS) * time.Millisecond
}

// StaleAfter retorna a idade a partir da qual uma auditoria é considerada desatualizada
func (a AuditRefresh) StaleAfter() time.Duration {
	return time.Duration(a.StaleAfterDays) * 24 * time.Hour
}

func (a AuditRefresh) InvocationTimeout() time.Duration {
	return time.Duration(a.InvocationTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seo_audit?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_JWT_SECRET", "your_jwt_secret") // ONLY LOCAL

	viper.SetDefault("DATAFORSEO_URL", "https://api.dataforseo.com/v3")
	viper.SetDefault("DATAFORSEO_LOGIN", "")
	viper.SetDefault("DATAFORSEO_PASSWORD", "")
	viper.SetDefault("DATAFORSEO_LOCATION_CODE", 2840)
	viper.SetDefault("DATAFORSEO_LANGUAGE_CODE", "en")

	viper.SetDefault("AHREFS_URL", "https://api.ahrefs.com/v3")
	viper.SetDefault("AHREFS_TOKEN", "")

	viper.SetDefault("BRON_URL", "https://api.bron.dev/v1")
	viper.SetDefault("BRON_API_KEY", "")
	viper.SetDefault("BRON_KEYWORDS_TIMEOUT_SECONDS", 25)
	viper.SetDefault("BRON_SUMMARY_TIMEOUT_SECONDS", 30)

	// Defaults para a atualização automática das auditorias
	viper.SetDefault("AUDIT_REFRESH_CRON", "0 */6 * * *")             // A cada 6 horas
	viper.SetDefault("AUDIT_REFRESH_STALE_AFTER_DAYS", 7)             // Auditorias com mais de 7 dias
	viper.SetDefault("AUDIT_REFRESH_BATCH_LIMIT", 10)                 // 10 domínios por execução
	viper.SetDefault("AUDIT_REFRESH_REQUEST_DELAY_MS", 500)           // 500ms entre domínios
	viper.SetDefault("AUDIT_REFRESH_INVOCATION_TIMEOUT_SECONDS", 150) // Tempo máximo de uma execução
	viper.SetDefault("AUDIT_REFRESH_ENABLED", false)                  // Habilitar atualização automática

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.AuditRefresh.StaleAfterDays <= 0 {
		logrus.Warnf("AUDIT_REFRESH_STALE_AFTER_DAYS inválido (%d), usando 7", config.AuditRefresh.StaleAfterDays)
		config.AuditRefresh.StaleAfterDays = 7
	}

	if config.AuditRefresh.BatchLimit <= 0 {
		logrus.Warnf("AUDIT_REFRESH_BATCH_LIMIT inválido (%d), usando 10", config.AuditRefresh.BatchLimit)
		config.AuditRefresh.BatchLimit = 10
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
