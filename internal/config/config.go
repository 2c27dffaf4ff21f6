package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, локальное удобство.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.SMTPHost, "smtp-host", "", "SMTP server host")
	flag.StringVar(&flagConfig.SMTPUser, "smtp-user", "", "SMTP username")
	flag.StringVar(&flagConfig.SMTPPassword, "smtp-password", "", "SMTP password")
	flag.StringVar(&flagConfig.SMTPFrom, "smtp-from", "", "From address for outgoing mail")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	smtpPort := envConfig.SMTPPort
	if smtpPort == 0 {
		smtpPort = 587
	}
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret: defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		SMTPHost:      defaultIfBlank(envConfig.SMTPHost, flagsConfig.SMTPHost),
		SMTPPort:      smtpPort,
		SMTPUser:      defaultIfBlank(envConfig.SMTPUser, flagsConfig.SMTPUser),
		SMTPPassword:  defaultIfBlank(envConfig.SMTPPassword, flagsConfig.SMTPPassword),
		SMTPFrom:      defaultIfBlank(envConfig.SMTPFrom, flagsConfig.SMTPFrom),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
