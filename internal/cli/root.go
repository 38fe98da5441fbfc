package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pizza-store/internal/accounts"
	"pizza-store/internal/config"
	"pizza-store/internal/database"
	"pizza-store/internal/logger"
	"pizza-store/internal/menu"
	"pizza-store/internal/mq"
	"pizza-store/internal/orders"
	"pizza-store/internal/shell"
	"pizza-store/internal/stores"
)

var rootCmd = &cobra.Command{
	Use:   "pizza-store <dbname> <port> <login>",
	Short: "Interactive pizza store client",
	Long: `pizza-store is a terminal client for the pizza ordering database.
It authenticates an account and offers menu browsing, order placement
and role-gated administration over a numbered menu.`,
	Args: cobra.ExactArgs(3),
	RunE: run,
	// Errors are logged in run; cobra should not repeat them.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	dbName := args[0]
	dbPort, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("port must be a number: %w", err)
	}
	loginHint := args[2]

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info().Str("database", dbName).Int("port", dbPort).Msg("connecting to database")
	db, err := database.Connect(ctx, cfg.Database.Host, dbPort, cfg.Database.User, cfg.Database.Pass, dbName)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer db.Close()

	var pub mq.Publisher = mq.Noop{}
	if cfg.Rabbit.Enabled() {
		client, err := mq.Dial(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Pass)
		if err != nil {
			// The broker is optional; an interactive session still works.
			log.Error().Err(err).Msg("rabbitmq unavailable, events disabled")
		} else {
			pub = client
		}
	}
	defer pub.Close()

	menuRepo := menu.NewRepository(db)
	menuSvc := menu.NewService(log, menuRepo)
	accountSvc := accounts.NewService(log, accounts.NewRepository(db), menuSvc)
	storeRepo := stores.NewRepository(db)
	orderSvc := orders.NewService(log, orders.NewRepository(db), menuRepo, storeRepo, pub)

	sh := shell.New(log, os.Stdin, os.Stdout, accountSvc, menuSvc, orderSvc, storeRepo, loginHint)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("session terminated: %w", err)
	}
	log.Info().Msg("disconnected")
	return nil
}
