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
	App            App        `mapstructure:",squash"`
	Server         Server     `mapstructure:",squash"`
	Database       Database   `mapstructure:",squash"`
	GoogleAds      GoogleAds  `mapstructure:",squash"`
	Monitor        Monitor    `mapstructure:",squash"`
	AdMonitor      MonitorJob `mapstructure:"-"`
	AdGroupMonitor MonitorJob `mapstructure:"-"`
	KeywordMonitor MonitorJob `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	AccessToken     string `mapstructure:"google_ads_access_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

// Monitor agrupa as configurações comuns às três rotinas de monitoramento.
type Monitor struct {
	RequestDelaySeconds int    `mapstructure:"monitor_request_delay_seconds"`
	LogViewURL          string `mapstructure:"monitor_log_view_url"`
}

// MonitorJob é a configuração de agendamento de uma rotina (anúncios, grupos
// ou palavras-chave).
type MonitorJob struct {
	CronSchedule string
	Enabled      bool
}

type adMonitorEnv struct {
	Cron    string `mapstructure:"ad_monitor_cron"`
	Enabled bool   `mapstructure:"ad_monitor_enabled"`
}

type adGroupMonitorEnv struct {
	Cron    string `mapstructure:"ad_group_monitor_cron"`
	Enabled bool   `mapstructure:"ad_group_monitor_enabled"`
}

type keywordMonitorEnv struct {
	Cron    string `mapstructure:"keyword_monitor_cron"`
	Enabled bool   `mapstructure:"keyword_monitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_monitor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	// Defaults das rotinas de monitoramento
	viper.SetDefault("AD_MONITOR_CRON", "0 * * * *")       // A cada hora
	viper.SetDefault("AD_MONITOR_ENABLED", false)
	viper.SetDefault("AD_GROUP_MONITOR_CRON", "10 * * * *")
	viper.SetDefault("AD_GROUP_MONITOR_ENABLED", false)
	viper.SetDefault("KEYWORD_MONITOR_CRON", "20 * * * *")
	viper.SetDefault("KEYWORD_MONITOR_ENABLED", false)

	viper.SetDefault("MONITOR_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("MONITOR_LOG_VIEW_URL", "")

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

	// As três rotinas compartilham o mesmo formato de variável, mas com
	// prefixos distintos; decodifica cada bloco separadamente.
	var adEnv adMonitorEnv
	var adGroupEnv adGroupMonitorEnv
	var keywordEnv keywordMonitorEnv
	if err := viper.Unmarshal(&adEnv); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(&adGroupEnv); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(&keywordEnv); err != nil {
		return nil, err
	}
	config.AdMonitor = MonitorJob{CronSchedule: adEnv.Cron, Enabled: adEnv.Enabled}
	config.AdGroupMonitor = MonitorJob{CronSchedule: adGroupEnv.Cron, Enabled: adGroupEnv.Enabled}
	config.KeywordMonitor = MonitorJob{CronSchedule: keywordEnv.Cron, Enabled: keywordEnv.Enabled}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// MonitorJobFor retorna a configuração da rotina do tipo de entidade
// informado ("AD", "AD_GROUP", "KEYWORD").
func (c *Config) MonitorJobFor(entityType string) MonitorJob {
	switch entityType {
	case "AD":
		return c.AdMonitor
	case "AD_GROUP":
		return c.AdGroupMonitor
	case "KEYWORD":
		return c.KeywordMonitor
	}
	return MonitorJob{}
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
