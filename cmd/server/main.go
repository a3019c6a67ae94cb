package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/notify"
	"github.com/Verdant-Labs-LLC/tendril/internal/redis"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Plant-care reminder backend",
	Long: `Backend for the Tendril gardening platform: care alarms, the derived
reminder calendar, activity history and the yearly dashboard.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := LoadEnvironment()
		if err := db.Init(env.DatabaseURL); err != nil {
			return fmt.Errorf("db init: %w", err)
		}
		return db.RunMigrations(env.MigrationsPath)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runServe() error {
	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		return fmt.Errorf("db init: %w", err)
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		return fmt.Errorf("db migrate: %w", err)
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	store := db.NewStore(db.DB)

	publisher := notify.NewLogPublisher()
	if env.MQTTBrokerURL != "" {
		mqttPublisher, err := notify.NewMQTTPublisher(env.MQTTBrokerURL)
		if err != nil {
			return fmt.Errorf("mqtt connect: %w", err)
		}
		publisher = mqttPublisher
	}

	notifier := notify.NewNotifier(store, publisher, env.PollInterval)
	notifier.Start()
	defer notifier.Stop()

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		errCh <- r.Run(env.ServerAddress)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
