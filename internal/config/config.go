package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Forecast         Forecast         `mapstructure:",squash"`
	SLAMonitor       SLAMonitor       `mapstructure:",squash"`
	ForecastSnapshot ForecastSnapshot `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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
	Secret string `mapstructure:"auth_secret"`
}

// Forecast concentra os parâmetros financeiros do motor de previsão.
// Os defaults (6% de comissão, R$3,00/W) são o contrato de paridade com o
// painel; mudar exige alinhamento com o time de produto.
type Forecast struct {
	CommissionRate float64 `mapstructure:"forecast_commission_rate"`
	PricePerWatt   float64 `mapstructure:"forecast_price_per_watt"`
}

type SLAMonitor struct {
	CronSchedule string `mapstructure:"sla_monitor_cron"`
	Enabled      bool   `mapstructure:"sla_monitor_enabled"`
}

type ForecastSnapshot struct {
	CronSchedule  string `mapstructure:"forecast_snapshot_cron"`
	Enabled       bool   `mapstructure:"forecast_snapshot_enabled"`
	RetentionDays int    `mapstructure:"forecast_snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/solarpipeline")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("FORECAST_COMMISSION_RATE", 0.06)
	viper.SetDefault("FORECAST_PRICE_PER_WATT", 3.0)

	// Defaults do monitor de SLA
	viper.SetDefault("SLA_MONITOR_CRON", "0 * * * *") // Toda hora cheia
	viper.SetDefault("SLA_MONITOR_ENABLED", false)

	// Defaults da fotografia diária do forecast
	viper.SetDefault("FORECAST_SNAPSHOT_CRON", "30 5 * * *") // Todos os dias às 5h30 da manhã
	viper.SetDefault("FORECAST_SNAPSHOT_ENABLED", false)
	viper.SetDefault("FORECAST_SNAPSHOT_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
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
