package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/loader"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	sourcesPath string
	profile     string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	defaultSources := ".salesatlas.ini"
	if home, err := os.UserHomeDir(); err == nil {
		defaultSources = filepath.Join(home, defaultSources)
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the application config file")
	rootCmd.Flags().StringVar(&sourcesPath, "sources", defaultSources,
		"Path to the ini file with named dataset sources (default is $HOME/.salesatlas.ini)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "",
		"Dataset source profile from the sources file (default is the configured source)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	src, err := config.ResolveSource(ctx, cfg, sourcesPath, profile)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset source: %w", err)
	}
	logger.Info().Str("kind", src.Kind).Str("profile", profile).Msg("loading sales dataset")

	l, err := loader.NewDefaultRegistry().Create(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to create dataset loader: %w", err)
	}
	ds, err := loader.Load(ctx, l)
	if err != nil {
		return err
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Resolver: report.NewResolver(ds),
		},
	})

	return webAPI.Start()
}
