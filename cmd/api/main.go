package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "equine_billing/docs"
	"equine_billing/internal/adapter/http/routes"
	"equine_billing/pkg/config"
	"equine_billing/pkg/logger"

	"github.com/sirupsen/logrus"
)

// @title           Equine Billing API
// @version         1.0
// @description     Invoicing, split payments and notifications for the horse services marketplace.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	envPath := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	cfg, err := config.New(*envPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	if _, err := logger.New(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		logrus.WithError(err).Fatal("failed to configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
