package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             int    `env:"PORT" envDefault:"8080"`
	Dsn              string `env:"DSN" envDefault:"memory"`
	JwtSecret        string `env:"JWT_SECRET"`
	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         int    `env:"SMTP_PORT"`
	SMTPUser         string `env:"SMTP_USER"`
	SMTPPassword     string `env:"SMTP_PASSWORD"`
	SMTPFrom         string `env:"SMTP_FROM"`
	ModeratorEmail   string `env:"MODERATOR_EMAIL"`
	CaptchaSecret    string `env:"CAPTCHA_SECRET"`
	CaptchaVerifyURL string `env:"CAPTCHA_VERIFY_URL"`
	NotifySubjectTag string `env:"NOTIFY_SUBJECT_TAG" envDefault:"commentbox"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
