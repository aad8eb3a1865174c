package wasmhost

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/adenflorian/corgi.fm/pkg/log"
)

// Names of the functions exported by cmd/corgi-wasm.
const (
	ExportAdd       = "add"
	ExportFrequency = "getFrequencyUsingHalfStepsFromA4"

	// initializeFunc is the reactor entry point emitted by -buildmode=c-shared.
	initializeFunc = "_initialize"
	instanceName   = "corgi"
)

// Module is an instantiated corgi-wasm module.
type Module struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	add     api.Function
	freq    api.Function
	logger  log.Logger
	closed  bool
}

// LoadFile reads a wasm binary from path and instantiates it.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Module, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module: %w", err)
	}
	return Load(ctx, wasm, opts...)
}

// Load compiles and instantiates a wasm binary and resolves its exports.
func Load(ctx context.Context, wasm []byte, opts ...Option) (*Module, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := wazero.NewRuntime(ctx)
	m, err := instantiate(ctx, r, wasm, o)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	o.logger.Debug("wasm module loaded", log.String("name", instanceName), log.Int("bytes", len(wasm)))
	return m, nil
}

func instantiate(ctx context.Context, r wazero.Runtime, wasm []byte, o options) (*Module, error) {
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("compile module: %w", err)
	}

	cfg := wazero.NewModuleConfig().
		WithName(instanceName).
		WithStartFunctions(initializeFunc)
	mod, err := r.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		return nil, fmt.Errorf("instantiate module: %w", err)
	}

	add, err := lookup(mod, ExportAdd,
		[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
		[]api.ValueType{api.ValueTypeI32})
	if err != nil {
		return nil, err
	}
	freq, err := lookup(mod, ExportFrequency,
		[]api.ValueType{api.ValueTypeF64},
		[]api.ValueType{api.ValueTypeF64})
	if err != nil {
		return nil, err
	}

	return &Module{
		runtime: r,
		add:     add,
		freq:    freq,
		logger:  o.logger,
	}, nil
}

func lookup(mod api.Module, name string, params, results []api.ValueType) (api.Function, error) {
	fn := mod.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingExport, name)
	}
	def := fn.Definition()
	if !slices.Equal(def.ParamTypes(), params) || !slices.Equal(def.ResultTypes(), results) {
		return nil, fmt.Errorf("%w: %s(%v) %v", ErrSignatureMismatch, name, def.ParamTypes(), def.ResultTypes())
	}
	return fn, nil
}

// Add calls the module's "add" export.
func (m *Module) Add(ctx context.Context, a, b int32) (int32, error) {
	res, err := m.call(ctx, ExportAdd, m.add, api.EncodeI32(a), api.EncodeI32(b))
	if err != nil {
		return 0, err
	}
	return api.DecodeI32(res), nil
}

// FrequencyFromHalfSteps calls the module's "getFrequencyUsingHalfStepsFromA4" export.
func (m *Module) FrequencyFromHalfSteps(ctx context.Context, halfSteps float64) (float64, error) {
	res, err := m.call(ctx, ExportFrequency, m.freq, api.EncodeF64(halfSteps))
	if err != nil {
		return 0, err
	}
	return api.DecodeF64(res), nil
}

func (m *Module) call(ctx context.Context, name string, fn api.Function, params ...uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrClosed
	}
	res, err := fn.Call(ctx, params...)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", name, err)
	}
	return res[0], nil
}

// Close releases the runtime and all compiled code. Close is idempotent.
func (m *Module) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.logger.Debug("closing wasm module")
	if err := m.runtime.Close(ctx); err != nil {
		m.logger.Error("close wasm module failed", log.Err(err))
		return fmt.Errorf("close runtime: %w", err)
	}
	return nil
}
