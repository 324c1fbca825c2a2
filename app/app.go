package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shelfmate/shelfmate/config"
	"github.com/shelfmate/shelfmate/internal/cache"
	"github.com/shelfmate/shelfmate/internal/handler"
	"github.com/shelfmate/shelfmate/internal/server"
	"github.com/shelfmate/shelfmate/internal/service/library"
	"github.com/shelfmate/shelfmate/internal/service/notification"
	"github.com/shelfmate/shelfmate/internal/service/reservation"
	"github.com/shelfmate/shelfmate/internal/service/shelf"
	"github.com/shelfmate/shelfmate/pkg/logger"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "shelfmate")

	store := cache.New()
	svc := shelf.NewService(log,
		reservation.NewService(log, cfg),
		library.NewService(log, cfg),
		notification.NewService(log, cfg),
		store,
	)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
