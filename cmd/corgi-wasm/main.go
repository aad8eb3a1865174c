// Command corgi-wasm builds corgi.fm's math functions as a WebAssembly
// reactor module.
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o corgi.wasm ./cmd/corgi-wasm
//
// The module exports "add" (i32, i32) -> i32 and
// "getFrequencyUsingHalfStepsFromA4" (f64) -> f64. Hosts must call
// "_initialize" once before either export.
package main

func main() {}
