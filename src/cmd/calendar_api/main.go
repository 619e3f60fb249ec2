package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lokesh8898/nautilus/src/marketapi"
	"github.com/lokesh8898/nautilus/src/nsecalendar"
	"github.com/lokesh8898/nautilus/src/telemetry"
)

const serviceName = "calendar-api"

// ServerConfig is read from CALENDAR_API_* environment variables.
type ServerConfig struct {
	Port         int           `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	OtelEnabled  bool          `envconfig:"OTEL_ENABLED" default:"false"`
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/calendar_api/main.go",
	Short: "Serve the NSE calendar and contract metadata over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func run() (err error) {
	var cfg ServerConfig
	if err := envconfig.Process("CALENDAR_API", &cfg); err != nil {
		return fmt.Errorf("error processing server config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.OtelEnabled {
		telemetry.InstrumentLogrus()

		otelShutdown, setupErr := telemetry.SetupOTelSDK(ctx, serviceName)
		if setupErr != nil {
			return setupErr
		}

		defer func() {
			err = errors.Join(err, otelShutdown(context.Background()))
		}()
	}

	router := mux.NewRouter()
	marketapi.SetupHandler(router, nsecalendar.NewHolidayCalendar())

	var handler http.Handler = router
	if cfg.OtelEnabled {
		handler = otelhttp.NewHandler(router, "/")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      handler,
	}

	log.Infof("calendar api listening on %s", srv.Addr)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-srvErr:
		return
	case <-ctx.Done():
		stop()
	}

	log.Info("calendar api shutting down")

	err = srv.Shutdown(context.Background())
	return
}

func main() {
	cobra.CheckErr(runCmd.Execute())
}
