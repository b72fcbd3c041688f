package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pageturner/pageturner-service/app"
	"github.com/pageturner/pageturner-service/config"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
