package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adenflorian/corgi.fm/internal/cliconfig"
	"github.com/adenflorian/corgi.fm/internal/wasmhost"
	"github.com/adenflorian/corgi.fm/pkg/log"
)

func newWasmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wasm",
		Short: "Call the exported functions of a corgi-wasm module",
		Long: `Call the exported functions of a corgi-wasm module through an embedded
WebAssembly runtime.

Build the module with:

  GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o corgi.wasm ./cmd/corgi-wasm`,
	}
	cmd.PersistentFlags().StringVar(&a.cfg.WASMModule, "module", a.cfg.WASMModule, "path to the corgi-wasm module")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add A B",
			Short: `Call the module's "add" export`,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseInt32("operand", args[0])
				if err != nil {
					return err
				}
				y, err := parseInt32("operand", args[1])
				if err != nil {
					return err
				}

				return a.withModule(cmd.Context(), func(ctx context.Context, m *wasmhost.Module) error {
					sum, err := m.Add(ctx, x, y)
					if err != nil {
						return err
					}
					return a.emit(cmd, addResult{A: x, B: y, Sum: sum, Overflow: "wrap"},
						strconv.FormatInt(int64(sum), 10))
				})
			},
		},
		&cobra.Command{
			Use:   "freq HALFSTEPS",
			Short: `Call the module's "getFrequencyUsingHalfStepsFromA4" export`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseHalfSteps(args[0])
				if err != nil {
					return err
				}

				return a.withModule(cmd.Context(), func(ctx context.Context, m *wasmhost.Module) error {
					f, err := m.FrequencyFromHalfSteps(ctx, n)
					if err != nil {
						return err
					}
					return a.emit(cmd, freqResult{HalfSteps: jsonFloat(n), Hz: jsonFloat(f)}, a.formatHz(f))
				})
			},
		},
	)
	return cmd
}

// withModule loads the configured module, runs fn and closes the module.
func (a *app) withModule(ctx context.Context, fn func(context.Context, *wasmhost.Module) error) error {
	if a.cfg.WASMModule == "" {
		return fmt.Errorf("%w: --module (or CORGI_WASM_MODULE) is required", cliconfig.ErrInvalidConfig)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := wasmhost.LoadFile(ctx, a.cfg.WASMModule,
		wasmhost.WithLogger(log.NewZerologAdapterWithLogger(a.log)))
	if err != nil {
		return fmt.Errorf("load %s: %w", a.cfg.WASMModule, err)
	}
	// Close failures are logged by the module.
	defer func() { _ = m.Close(ctx) }()

	return fn(ctx, m)
}
