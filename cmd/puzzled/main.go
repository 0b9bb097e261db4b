// Command puzzled serves generated puzzles over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-ricrob/hyperrobot/internal/api"
	"github.com/go-ricrob/hyperrobot/internal/batch"
	"github.com/go-ricrob/hyperrobot/internal/board"
	"github.com/go-ricrob/hyperrobot/internal/config"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.New()

	envFile string
)

func init() {
	const usage = "env file path"
	flag.StringVar(&envFile, "env", ".env", usage)
	flag.StringVar(&envFile, "e", ".env", usage+" (shorthand)")
}

func setupLogging(cfg *config.Config) {
	logLevel := logrus.InfoLevel
	if cfg.Development {
		logLevel = logrus.DebugLevel
	}
	formatter := &logrus.TextFormatter{ForceColors: true}
	for _, l := range []*logrus.Logger{log, board.Log, solver.Log, batch.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(formatter)
	}
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	setupLogging(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:         cfg.Addr,
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      api.NewServer(cfg, log).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to listen and serve: %w", err)
		}
		close(errCh)
	}()

	log.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"preset": cfg.Preset,
		"tries":  cfg.Tries,
	}).Info("puzzle server listening")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.WithError(err).Error("failed to start")
		os.Exit(1)
	}

	sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	if err := server.Shutdown(sCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
