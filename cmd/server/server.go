package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"agrimate/app/agrimate/api"
	"agrimate/app/agrimate/service"
	"agrimate/common/log"
	"agrimate/common/middleware"
	"agrimate/config"
)

const ServiceName = "agrimate_server"

var StartCmd = &cobra.Command{
	Use:          "server",
	Short:        "Start API server",
	Example:      "agrimate server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	cfg := config.Load()

	var client *mongo.Client
	_ = log.WithTracer(context.Background(), ServiceName, "connect mongodb", func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		opts := options.Client().ApplyURI(cfg.MongoURL)
		if log.UptraceOk() {
			opts.SetMonitor(otelmongo.NewMonitor())
		}
		var err error
		client, err = mongo.Connect(ctx, opts)
		if err != nil {
			log.Logger().Fatalf("mongodb connect: %s", err.Error())
		}
		return nil
	})

	svc := service.NewAgriMateService(client, cfg.DBName)

	// A dead database is survivable: handlers answer 500 envelopes and the
	// health route reports disconnected.
	_ = log.WithTracer(context.Background(), ServiceName, "prepare collections", func(ctx context.Context) error {
		if err := svc.Ping(ctx); err != nil {
			log.Logger().Warnf("mongodb unreachable, starting anyway: %s", err.Error())
			return nil
		}
		if err := svc.EnsureIndexes(ctx); err != nil {
			log.Logger().Warnf("ensure indexes: %s", err.Error())
		}
		if err := svc.Seed(ctx); err != nil {
			log.Logger().Warnf("seed sample data: %s", err.Error())
		}
		return nil
	})

	agriAPI := api.NewAgriMateAPI(svc)

	r := gin.New()
	if log.UptraceOk() {
		r.Use(otelgin.Middleware(ServiceName))
	}
	r.
		Use(middleware.RequestID()).
		Use(middleware.RequestLogger()).
		Use(middleware.Recovery()).
		Use(middleware.CORS()).
		Use(middleware.Metrics())
	r.GET("/metrics", middleware.MetricsHandler())
	api.InitRouter(r, agriAPI)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: r,
	}

	go func() {
		log.Logger().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Logger().Fatal("listen: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Logger().Info("shutdown server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Logger().Fatal("server shutdown: ", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Logger().Warnf("mongodb disconnect: %s", err.Error())
	}
	log.Logger().Println("server exiting")

	return nil
}
