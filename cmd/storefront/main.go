package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storefront/internal/cli"
	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/seed"
	"storefront/internal/service"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Console retail storefront",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config (or set "+config.EnvConfigPath+")")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository(cfg.CatalogPath())
	customerRepo := repository.NewCustomerRepository(cfg.CustomerPath())
	userRepo := repository.NewUserRepository(cfg.UserPath())

	if err := seed.Ensure(ctx, userRepo, customerRepo, catalogRepo, cfg.UserPath(), cfg.CustomerPath(), cfg.CatalogPath()); err != nil {
		return fmt.Errorf("seeding data files: %w", err)
	}

	console := cli.NewConsole(os.Stdout)
	auth := service.NewAuthService(userRepo, customerRepo)
	catalog := service.NewCatalogService(catalogRepo)
	checkout := service.NewCheckoutWorkflow(catalogRepo, customerRepo, console, cfg.SettleDelay)

	app := cli.NewApp(console, auth, catalog, checkout)
	return app.Run(ctx)
}
