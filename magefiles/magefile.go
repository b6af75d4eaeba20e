//go:build mage

// Package main contains Mage build targets for kwx.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "kwx"
	cmdPkg  = "./cmd/kwx"
	wasmPkg = "./cmd/wasm"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X kwx/internal/cli.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Wasm compiles the browser build into bin/kwx.wasm.
func Wasm() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName+".wasm")
	env := map[string]string{"GOOS": "js", "GOARCH": "wasm"}
	if err := sh.RunWith(env, "go", "build", "-o", out, wasmPkg); err != nil {
		return fmt.Errorf("go build (wasm): %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Bench runs the extractor benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "./internal/usecase/")
}

// All runs the tests, then builds both targets.
func All() {
	mg.SerialDeps(Test, Build, Wasm)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
