package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/pageturner/pageturner-service/config"
	"github.com/pageturner/pageturner-service/internal/handler"
	"github.com/pageturner/pageturner-service/internal/notify"
	"github.com/pageturner/pageturner-service/internal/repository"
	"github.com/pageturner/pageturner-service/internal/server"
	"github.com/pageturner/pageturner-service/internal/service"
	"github.com/pageturner/pageturner-service/internal/session"
	"github.com/pageturner/pageturner-service/pkg/kafka"
	"github.com/pageturner/pageturner-service/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "pageturner")

	repo := repository.New(cfg.Store, repository.Fixtures(), log)
	svc := service.NewService(repo, log)

	mgr := session.NewManager(repo, session.NewFileStore(cfg.Session.IdentityFile), cfg.Session.DemoLogin, log)
	if err := mgr.Restore(context.Background()); err != nil {
		log.Warn("session restore", zap.Error(err))
	}

	var producer sarama.SyncProducer
	if len(cfg.Kafka.Addrs) > 0 {
		var err error
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
	} else {
		log.Info("no kafka addrs configured, notifications disabled")
	}
	notifier := notify.New(producer, log)

	h := handler.New(svc, mgr, notifier, cfg.Session.TokenTTL, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case termSig := <-sig:
			log.Debug("Graceful shutdown", zap.Any("signal", termSig))
		case <-ctx.Done():
			return ctx.Err()
		}

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("run", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	log.Info("Graceful shutdown finished")
}
