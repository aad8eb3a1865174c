// Command libcorgi builds corgi.fm's math functions as a C shared library
// or archive.
//
//	go build -buildmode=c-shared -o libcorgi.so ./cmd/libcorgi
//
// The generated libcorgi.h declares:
//
//	GoInt32 add(GoInt32 a, GoInt32 b);
//	GoFloat64 getFrequencyUsingHalfStepsFromA4(GoFloat64 halfSteps);
//
// add wraps on overflow. Neither function can fail.
package main

func main() {}
