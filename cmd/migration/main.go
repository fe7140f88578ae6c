package main

import (
	"context"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/drivers/database"
	"mamacare-service/internal/app/drivers/logger"
	"mamacare-service/internal/app/services/core/articles"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migration",
		Short: "Mongo index and seed maintenance for mamacare-service",
	}
	rootCmd.AddCommand(indexesCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the indexes every collection relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
				return database.EnsureIndexes(ctx, db, log)
			})
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "articles",
		Short: "Insert the bundled articles when the collection is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
				repo := articles.NewArticleMongoRepository(db.Client(), db.Name())
				inserted, err := articles.SeedArticles(ctx, repo, log)
				if err != nil {
					return err
				}
				cmd.Printf("Inserted %d articles\n", inserted)
				return nil
			})
		},
	})
	return cmd
}

func withDatabase(cmd *cobra.Command, run func(ctx context.Context, db *mongo.Database, log *zap.Logger) error) error {
	driverConfig := config.NewDriverConfig()
	log := logger.NewZapLogger(driverConfig, &config.InternalConfig{})
	defer log.Sync()

	client := database.NewMongoDB(driverConfig, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	defer client.Disconnect(context.Background())

	return run(ctx, client.Database(driverConfig.MongoDB.DbName), log)
}
