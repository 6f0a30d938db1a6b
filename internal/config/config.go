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
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Mail                  Mail                  `mapstructure:",squash"`
	Report                Report                `mapstructure:",squash"`
	MonthlyReportDispatch MonthlyReportDispatch `mapstructure:",squash"`
	SecretKey             string                `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Mail struct {
	Host       string `mapstructure:"email_host"`
	Port       int    `mapstructure:"email_port"`
	User       string `mapstructure:"email_user"`
	Password   string `mapstructure:"email_pass"`
	SenderName string `mapstructure:"email_sender_name"`
	// Exige STARTTLS quando verdadeiro; caso contrário usa TLS oportunista
	RequireTLS bool `mapstructure:"email_require_tls"`
}

// Report contém os limites de tempo das chamadas de I/O dos relatórios
type Report struct {
	FetchTimeout  time.Duration `mapstructure:"report_fetch_timeout"`
	MailTimeout   time.Duration `mapstructure:"report_mail_timeout"`
	RenderTimeout time.Duration `mapstructure:"report_render_timeout"`
}

type MonthlyReportDispatch struct {
	CronSchedule        string `mapstructure:"monthly_report_dispatch_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_report_dispatch_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_report_dispatch_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_report_dispatch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fisimaster?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("EMAIL_HOST", "localhost")
	viper.SetDefault("EMAIL_PORT", 587)
	viper.SetDefault("EMAIL_USER", "")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("EMAIL_SENDER_NAME", "FisiMaster")
	viper.SetDefault("EMAIL_REQUIRE_TLS", false)

	viper.SetDefault("REPORT_FETCH_TIMEOUT", "10s")
	viper.SetDefault("REPORT_MAIL_TIMEOUT", "30s")
	viper.SetDefault("REPORT_RENDER_TIMEOUT", "20s")

	// Envio mensal do relatório completo do mês anterior
	viper.SetDefault("MONTHLY_REPORT_DISPATCH_CRON", "0 7 1 * *")        // No primeiro dia de cada mês às 7h
	viper.SetDefault("MONTHLY_REPORT_DISPATCH_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre envios
	viper.SetDefault("MONTHLY_REPORT_DISPATCH_MAX_CONCURRENT_JOBS", 3)   // 3 envios concorrentes
	viper.SetDefault("MONTHLY_REPORT_DISPATCH_ENABLED", false)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.App.Location = loadLocation(config.App.Timezone)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadLocation usa o horário local quando o fuso configurado não existe
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando horário local", name)
		return time.Local
	}

	return loc
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
