package terminal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/loader"
	"github.com/spf13/cobra"
)

// DefaultSourcesFile is the ini file, relative to the home directory, holding named sources.
const DefaultSourcesFile = ".salesatlas.ini"

// CLI represents the command-line interface
type CLI struct {
	registry    loader.Registry
	reporter    *export.Reporter
	logOutput   io.Writer
	configPath  string
	sourcesPath string
	profile     string
	rootCmd     *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  loader.Registry
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = loader.NewDefaultRegistry()
	}

	cli := &CLI{
		registry:  opts.Registry,
		reporter:  export.NewReporter(opts.Output),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sales-atlas",
		Short:         "Automobile sales report tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to the application config file")
	cmd.PersistentFlags().StringVar(&cli.sourcesPath, "sources", defaultSourcesPath(),
		"Path to the ini file with named dataset sources")
	cmd.PersistentFlags().StringVarP(&cli.profile, "profile", "p", "",
		"Dataset source profile from the sources file (default is the configured source)")

	cmd.AddCommand(commands.NewReportCmd(cli, cli.reporter))
	cmd.AddCommand(commands.NewYearsCmd(cli))
	cmd.AddCommand(commands.NewSourcesCmd(cli))

	return cmd
}

// LoadDataset reads the config, resolves the selected source and loads it.
func (cli *CLI) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return nil, err
	}

	logger := cfg.Log.NewLogger(cli.logOutput)
	ctx = logger.WithContext(ctx)

	src, err := config.ResolveSource(ctx, cfg, cli.sourcesPath, cli.profile)
	if err != nil {
		return nil, err
	}

	l, err := cli.registry.Create(ctx, src)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, l)
}

func (cli *CLI) ListProfiles(ctx context.Context) ([]string, error) {
	registry, err := config.NewSourceRegistry(cli.sourcesPath)
	if err != nil {
		return nil, err
	}
	return registry.GetProfiles(ctx)
}

func defaultSourcesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSourcesFile
	}
	return filepath.Join(home, DefaultSourcesFile)
}
