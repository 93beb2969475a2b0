// Command courseadmin manages course records from the shell using the same
// services and validation as the admin console.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/ischool/courseinfo-backend/internal/database"
	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/logger"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/ischool/courseinfo-backend/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once the database is attached.
type app struct {
	services *service.Services
	reg      *registry.Registry
	close    func()
}

var (
	cur      *app
	jsonOut  bool
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "courseinfo-admin",
	Short: "Manage course records from the command line",
	Long: `courseinfo-admin reads and writes the course records database configured
through the usual environment (DATABASE_DRIVER, DATABASE_URL, SQLITE_PATH,
REDIS_URL). Writes are announced on the change feed like admin console writes.`,
	SilenceUsage:      true,
	PersistentPreRunE: attach,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cur != nil {
			cur.close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print records as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(entitiesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
}

// attach migrates and opens the configured database and builds the registry.
func attach(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(os.Stderr, logLevel, "auto")
	validator.Setup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DatabaseDriver, database.DSN(cfg), log); err != nil {
			return err
		}
	}

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	closers := []func(){db.Close}

	var broker events.Broker
	if cfg.RedisURL != "" {
		var rdb *redis.Client
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			db.Close()
			return err
		}
		closers = append(closers, func() { rdb.Close() })
		broker = events.NewRedisBroker(rdb, log)
	}

	services := service.NewServices(db.SQL, broker, log)
	reg, err := service.NewRegistry(services)
	if err != nil {
		db.Close()
		return err
	}

	cur = &app{
		services: services,
		reg:      reg,
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		},
	}
	return nil
}
