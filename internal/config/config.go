package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	OwnerEmail   string `yaml:"owner_email"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database  DatabaseConfig `yaml:"database"`
	JWTSecret string         `yaml:"jwt_secret"`
	Recaptcha struct {
		SecretKey string `yaml:"secret_key"`
	} `yaml:"recaptcha"`
	Email EmailConfig `yaml:"email"`
}

// LoadConfig читает опциональный config/config.yaml как базу и поверх
// накатывает переменные окружения (включая .env через godotenv).
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if f, err := os.Open("config/config.yaml"); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			panic("Failed to parse config.yaml: " + err.Error())
		}
	}

	applyEnv(cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	setIfEnv(&cfg.Database.Host, "DB_HOST")
	setIfEnv(&cfg.Database.Port, "DB_PORT")
	setIfEnv(&cfg.Database.User, "DB_USER")
	setIfEnv(&cfg.Database.Password, "DB_PASSWORD")
	setIfEnv(&cfg.Database.Name, "DB_NAME")
	setIfEnv(&cfg.JWTSecret, "JWT_SECRET")
	setIfEnv(&cfg.Recaptcha.SecretKey, "RECAPTCHA_SECRET_KEY")
	setIfEnv(&cfg.Email.SMTPHost, "SMTP_HOST")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = n
		}
	}
	setIfEnv(&cfg.Email.SMTPUser, "SMTP_USER")
	setIfEnv(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setIfEnv(&cfg.Email.FromEmail, "SMTP_FROM")
	setIfEnv(&cfg.Email.OwnerEmail, "LEAD_NOTIFY_EMAIL")
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DSN собирает строку подключения lib/pq из частей.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name,
	)
}
