package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	HFAPIToken      string `env:"HF_API_TOKEN"`
	HFSentimentURL  string `env:"HF_SENTIMENT_URL" envDefault:"https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment-latest"`
	HFEmotionURL    string `env:"HF_EMOTION_URL" envDefault:"https://api-inference.huggingface.co/models/SamLowe/roberta-base-go_emotions"`
	HFRetryWaitSecs int    `env:"HF_RETRY_WAIT_SECONDS" envDefault:"2"`
	HFTimeoutSecs   int    `env:"HF_TIMEOUT_SECONDS" envDefault:"15"`

	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser         string `env:"SMTP_USER"`
	SMTPPass         string `env:"SMTP_PASS"`
	SMTPFrom         string `env:"SMTP_FROM"`
	SMTPFromName     string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS       bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	CrisisAlertEmail string `env:"CRISIS_ALERT_EMAIL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	AnalyzeRateWindowMins int `env:"ANALYZE_RATE_WINDOW_MINUTES" envDefault:"1"`
	AnalyzeRateMax        int `env:"ANALYZE_RATE_MAX" envDefault:"20"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
