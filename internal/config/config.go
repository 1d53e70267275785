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
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Sheets   Sheets   `mapstructure:",squash"`
	Funnel   Funnel   `mapstructure:",squash"`
	AutoSync AutoSync `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
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
	LogLevel   string `mapstructure:"log_level"`
	MaxRecords int    `mapstructure:"max_records"`
}

// Sheets contém as URLs públicas de exportação CSV da planilha
type Sheets struct {
	DealsURL           string        `mapstructure:"deals_sheet_url"`
	FunnelURL          string        `mapstructure:"funnel_sheet_url"`
	DealsFetchTimeout  time.Duration `mapstructure:"deals_fetch_timeout"`
	FunnelFetchTimeout time.Duration `mapstructure:"funnel_fetch_timeout"`
}

// Funnel descreve onde ficam os marcadores, rótulos e datas na aba de MQL/SQL.
// Os índices de coluna começam em zero.
type Funnel struct {
	MarkerColumn     int `mapstructure:"funnel_marker_column"`
	LabelColumn      int `mapstructure:"funnel_label_column"`
	FirstValueColumn int `mapstructure:"funnel_first_value_column"`
	LastValueColumn  int `mapstructure:"funnel_last_value_column"`
}

type AutoSync struct {
	CronSchedule string `mapstructure:"auto_sync_cron"`
	Enabled      bool   `mapstructure:"auto_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_origins"`
}

const (
	spreadsheetID = "1sCF9c4A0rartzBdJMo8bYQbKkAyHqcJsIZOlANDcbn4"
	sheetExport   = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8001)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pipeline?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DEALS_SHEET_URL", fmt.Sprintf(sheetExport, spreadsheetID, "608527908"))
	viper.SetDefault("FUNNEL_SHEET_URL", "")
	viper.SetDefault("DEALS_FETCH_TIMEOUT", "30s")
	viper.SetDefault("FUNNEL_FETCH_TIMEOUT", "60s")
	viper.SetDefault("MAX_RECORDS", 10000)

	// Layout da aba de MQL/SQL (colunas B..H)
	viper.SetDefault("FUNNEL_MARKER_COLUMN", 1)
	viper.SetDefault("FUNNEL_LABEL_COLUMN", 1)
	viper.SetDefault("FUNNEL_FIRST_VALUE_COLUMN", 2)
	viper.SetDefault("FUNNEL_LAST_VALUE_COLUMN", 7)

	viper.SetDefault("AUTO_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("AUTO_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	if err := config.validate(); err != nil {
		return nil, err
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

func (c *Config) validate() error {
	if c.Sheets.DealsURL == "" {
		return fmt.Errorf("config: DEALS_SHEET_URL é obrigatório")
	}

	if c.Funnel.FirstValueColumn > c.Funnel.LastValueColumn {
		return fmt.Errorf(
			"config: intervalo de colunas do funil inválido (%d > %d)",
			c.Funnel.FirstValueColumn,
			c.Funnel.LastValueColumn,
		)
	}

	if c.App.MaxRecords <= 0 {
		return fmt.Errorf("config: MAX_RECORDS deve ser positivo")
	}

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
