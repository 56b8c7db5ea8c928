package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	// Upstream - платформенный REST API, которым шлюз пользуется.
	// Шлюз НЕ владеет данными: все сущности живут за этим URL.
	Upstream struct {
		BaseURL string `yaml:"base_url"`
		Timeout int    `yaml:"timeout_seconds"`
		// ServiceToken используется фоновыми задачами (response worker),
		// у которых нет токена админа из запроса
		ServiceToken string `yaml:"service_token"`
	} `yaml:"upstream"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"`
	} `yaml:"jwt"`

	UI struct {
		// SnackbarTTL - время жизни транзиентного уведомления в секундах.
		// Единое значение для всех страниц.
		SnackbarTTL int `yaml:"snackbar_ttl_seconds"`
		PageSize    int `yaml:"page_size"`
		MaxPageSize int `yaml:"max_page_size"`
	} `yaml:"ui"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Workers struct {
		// Период фонового опроса входящих ответов Gmail (минуты). 0 = выключен.
		ResponsePollMinutes int `yaml:"response_poll_minutes"`
	} `yaml:"workers"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	upstreamURL := os.Getenv("UPSTREAM_BASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if upstreamURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.ServiceToken = os.Getenv("UPSTREAM_SERVICE_TOKEN")
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 15
	}
	if cfg.UI.SnackbarTTL == 0 {
		cfg.UI.SnackbarTTL = 5
	}
	if cfg.UI.PageSize == 0 {
		cfg.UI.PageSize = 20
	}
	if cfg.UI.MaxPageSize == 0 {
		cfg.UI.MaxPageSize = 100
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

// UpstreamTimeout возвращает таймаут запросов к платформенному API
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.Timeout) * time.Second
}

// SnackbarTTL возвращает время жизни snackbar-уведомления
func (c *Config) SnackbarTTL() time.Duration {
	return time.Duration(c.UI.SnackbarTTL) * time.Second
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
