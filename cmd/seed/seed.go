package seed

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrimate/app/agrimate/service"
	"agrimate/common/log"
	"agrimate/config"
)

// StartCmd prepares indexes and inserts sample data, then exits. Running it
// against a populated database is a no-op.
var StartCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Create indexes and insert sample data",
	Example:      "agrimate seed",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Logger().Warnf("mongodb disconnect: %s", err.Error())
		}
	}()

	svc := service.NewAgriMateService(client, cfg.DBName)
	if err := svc.Ping(ctx); err != nil {
		return err
	}
	if err := svc.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := svc.Seed(ctx); err != nil {
		return err
	}
	log.Logger().Info("seed complete")
	return nil
}
