package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/adenflorian/corgi.fm/internal/cliconfig"
)

const longHelp = `Equal-temperament pitch and 32-bit integer helpers from the corgi.fm
native library.

Frequencies are computed as 440 * (2^(1/12))^n for n half steps from A4.
Integer addition wraps on overflow unless --overflow selects checked or
saturate.

Configuration is read from $HOME/.corgi/config.toml (or --config), then
CORGI_* environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  corgi freq 9
  corgi freq --midi 60
  corgi add --overflow checked -- 2147483647 1
  corgi note --format json 61
  corgi wasm --module corgi.wasm freq -- -12
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by every subcommand.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	stderr  io.Writer
	log     zerolog.Logger
}

func newApp(stderr io.Writer) (*app, *cobra.Command) {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		stderr: stderr,
	}
	a.log = cliconfig.NewLogger(stderr, a.cfg)

	root := &cobra.Command{
		Use:           "corgi",
		Short:         "Compute note frequencies and 32-bit sums",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.corgi/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format: text or json")
	pf.IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimal places for frequencies (-1 = shortest exact)")

	root.AddCommand(
		newAddCmd(a),
		newFreqCmd(a),
		newNoteCmd(a),
		newWasmCmd(a),
	)
	return a, root
}

// loadConfig layers file, environment and flag values into a.cfg.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && (explicit || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.NewLogger(a.stderr, a.cfg)
	a.log.Debug().Interface("config", a.cfg).Str("file", cfgFile).Msg("configuration")
	return nil
}

func main() {
	a, root := newApp(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("corgi")
		stop()
		os.Exit(1)
	}
}
