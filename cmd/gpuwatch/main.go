package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/steelcutops/gpuwatch/gpuwatch"
	"github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/logger"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	monitor := &gpuwatch.Monitor{
		CommandManager: &commandmanager.UnixCommandManager{},
		Logger:         logger.New(log),
		Out:            os.Stdout,
	}

	if err := monitor.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Shutting down")
			return
		}
		log.Fatal(err)
	}
}
