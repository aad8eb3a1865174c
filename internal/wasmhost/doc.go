// Package wasmhost loads the corgi-wasm reactor module with wazero and calls
// its exported math functions from Go.
//
// A Module owns its own wazero runtime. Calls are serialised because a wasm
// instance has a single linear memory and stack.
package wasmhost
