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

// Nomes dos secret files lidos do Render
const (
	SecretMetrikaToken      = "metrika_token"
	SecretSheetsCredentials = "sheets_credentials.json"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Metrika      Metrika      `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ArchiveMerge ArchiveMerge `mapstructure:",squash"`
	LeadSync     LeadSync     `mapstructure:",squash"`
	Insights     Insights     `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"sheets_spreadsheet_id"`
	CredentialsFile string `mapstructure:"sheets_credentials_file"`
	CredentialsJSON string `mapstructure:"-"`
	LeadsTable      string `mapstructure:"sheets_leads_table"`
	CacheTTLSeconds int    `mapstructure:"row_cache_ttl_seconds"`
}

// CacheTTL retorna o TTL do cache de linhas
func (s Sheets) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

type Metrika struct {
	URL              string `mapstructure:"metrika_url"`
	Token            string `mapstructure:"metrika_token"`
	CounterID        string `mapstructure:"metrika_counter_id"`
	LogPollSeconds   int    `mapstructure:"metrika_log_poll_seconds"`
	LogMaxPolls      int    `mapstructure:"metrika_log_max_polls"`
	RequestTimeoutMs int    `mapstructure:"metrika_request_timeout_ms"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type ArchiveMerge struct {
	BatchSize          int `mapstructure:"archive_merge_batch_size"`
	MaxAttempts        int `mapstructure:"archive_merge_max_attempts"`
	BackoffBaseSeconds int `mapstructure:"archive_merge_backoff_base_seconds"`
	BatchPauseMs       int `mapstructure:"archive_merge_batch_pause_ms"`
}

type LeadSync struct {
	CronSchedule   string   `mapstructure:"lead_sync_cron"`
	LookbackDays   int      `mapstructure:"lead_sync_lookback_days"`
	Enabled        bool     `mapstructure:"lead_sync_enabled"`
	GoalIDs        []string `mapstructure:"lead_sync_goal_ids"`
	Source         string   `mapstructure:"lead_sync_source"`
	MarkDuplicates bool     `mapstructure:"lead_sync_mark_duplicates"`
}

type Insights struct {
	MaxConcurrentFetches int `mapstructure:"insights_max_concurrent_fetches"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "") // vazio usa cache em memória

	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SHEETS_LEADS_TABLE", "Лиды")
	viper.SetDefault("ROW_CACHE_TTL_SECONDS", 30)

	viper.SetDefault("METRIKA_URL", "https://api-metrika.yandex.net")
	viper.SetDefault("METRIKA_TOKEN", "your_oauth_token") // ONLY LOCAL
	viper.SetDefault("METRIKA_COUNTER_ID", "")
	viper.SetDefault("METRIKA_LOG_POLL_SECONDS", 5)
	viper.SetDefault("METRIKA_LOG_MAX_POLLS", 60)
	viper.SetDefault("METRIKA_REQUEST_TIMEOUT_MS", 30000)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123") // ONLY LOCAL

	viper.SetDefault("ARCHIVE_MERGE_BATCH_SIZE", 50)
	viper.SetDefault("ARCHIVE_MERGE_MAX_ATTEMPTS", 3)
	viper.SetDefault("ARCHIVE_MERGE_BACKOFF_BASE_SECONDS", 1) // espera 2^tentativa segundos
	viper.SetDefault("ARCHIVE_MERGE_BATCH_PAUSE_MS", 1100)    // limite de escrita da planilha

	viper.SetDefault("LEAD_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("LEAD_SYNC_LOOKBACK_DAYS", 2)
	viper.SetDefault("LEAD_SYNC_ENABLED", false)
	viper.SetDefault("LEAD_SYNC_GOAL_IDS", "")
	viper.SetDefault("LEAD_SYNC_SOURCE", "")
	viper.SetDefault("LEAD_SYNC_MARK_DUPLICATES", true)

	viper.SetDefault("INSIGHTS_MAX_CONCURRENT_FETCHES", 3)

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

	if config.Render.ServiceID != "" {
		secrets, err := NewRenderClient(config).ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.applySecrets(secrets)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// applySecrets preenche tokens e credenciais que vieram de secret files
func (c *Config) applySecrets(secrets map[string]string) {
	if token, ok := secrets[SecretMetrikaToken]; ok && token != "" {
		c.Metrika.Token = token
	}
	if credentials, ok := secrets[SecretSheetsCredentials]; ok && credentials != "" {
		c.Sheets.CredentialsJSON = credentials
	}
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
