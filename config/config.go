package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pageturner/pageturner-service/pkg/kafka"
	"github.com/pageturner/pageturner-service/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type Session struct {
	IdentityFile string        `envconfig:"SESSION_IDENTITY_FILE" default:"pageturner_session.json"`
	DemoLogin    bool          `envconfig:"SESSION_DEMO_LOGIN" default:"false"`
	TokenTTL     time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"24h"`
}

type Store struct {
	LatencyMin time.Duration `envconfig:"STORE_LATENCY_MIN"`
	LatencyMax time.Duration `envconfig:"STORE_LATENCY_MAX"`
}

type Config struct {
	Server  HTTPServer   `yaml:"server"`
	Session Session      `yaml:"session"`
	Store   Store        `yaml:"store"`
	Kafka   kafka.Config `yaml:"kafka"`
	Log     logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
