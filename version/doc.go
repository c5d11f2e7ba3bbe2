// Package version reports build information for the credseal binary.
//
// Values are injected at link time and fall back to the module build info
// recorded by the Go toolchain:
//
//	go build -ldflags "-X github.com/kbukum/credseal/version.Version=1.2.0" ./cmd/credseal
package version
