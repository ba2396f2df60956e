// Package toolchain resolves the forgekit binary for the CLI, offering to
// install it via cargo when it cannot be found.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	forgekit "github.com/ledokoz/forgekit-go"
	"github.com/ledokoz/forgekit-go/internal/config"
	"github.com/ledokoz/forgekit-go/internal/exec"
	"github.com/ledokoz/forgekit-go/internal/prompt"
)

const (
	// forgekitBin is the name of the toolchain binary.
	forgekitBin = "forgekit"

	// cargoBin is the name of the cargo binary.
	cargoBin = "cargo"

	// forgekitCrate is the crate that provides the toolchain binary.
	forgekitCrate = "forgekit-cli"
)

// Resolver resolves the path to the forgekit binary, offering to install
// it via cargo if not found in the environment, PATH, or config.
type Resolver struct {
	loader   *config.Loader
	prompter prompt.Prompter
	executor exec.Executor
	homeDir  string
}

// NewResolver creates a new Resolver.
func NewResolver(loader *config.Loader, prompter prompt.Prompter, executor exec.Executor) *Resolver {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to empty string; the cargo bin dir guess degrades to
		// a PATH lookup after install.
		homeDir = ""
	}
	return &Resolver{
		loader:   loader,
		prompter: prompter,
		executor: executor,
		homeDir:  homeDir,
	}
}

// Resolve returns the path to the forgekit binary. It checks in order:
//  1. the FORGEKIT_PATH environment variable
//  2. forgekit in PATH
//  3. toolchain.path from config (if set and the binary exists)
//  4. offers to install via cargo when a terminal is attached
//
// Returns a forgekit.ErrToolchainNotFound error when the binary cannot be
// found or installed.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	// 1. Explicit environment override
	if path := os.Getenv(forgekit.EnvPath); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		// Override points nowhere - fall through to the other sources
	}

	// 2. Check if forgekit is in PATH
	if path, err := r.executor.LookPath(forgekitBin); err == nil {
		return path, nil
	}

	// 3. Check if toolchain.path is set in config
	cfg, err := r.loader.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}

	if cfg.Toolchain.Path != "" {
		if _, statErr := os.Stat(cfg.Toolchain.Path); statErr == nil {
			return cfg.Toolchain.Path, nil
		}
		// Path is set but binary doesn't exist - fall through to install
	}

	// 4. Check if cargo is available; without a terminal there is nobody
	// to ask, so report not-found straight away.
	if _, lookErr := r.executor.LookPath(cargoBin); lookErr != nil {
		return "", notFoundError()
	}
	if !prompt.Interactive() {
		return "", notFoundError()
	}

	confirmed, err := r.prompter.Confirm(
		"Install the ForgeKit toolchain?",
		"forgectl drives the forgekit binary, which was not found.\nWould you like to install it now via cargo?",
	)
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	if !confirmed {
		return "", notFoundError()
	}

	path, err := r.install(ctx)
	if err != nil {
		return "", err
	}

	// Save path to config
	if err := r.loader.Set("toolchain.path", path); err != nil {
		// Non-fatal: the toolchain is installed but config wasn't saved
		r.prompter.Print(fmt.Sprintf("Warning: could not save config: %v", err))
	}

	return path, nil
}

// install installs the toolchain via cargo and returns the binary path.
func (r *Resolver) install(ctx context.Context) (string, error) {
	r.prompter.Print("Installing the ForgeKit toolchain...")

	result, err := r.executor.Run(ctx, &exec.RunOptions{
		Name: cargoBin,
		Args: []string{"install", forgekitCrate},
	})
	if err != nil {
		stderr := ""
		if result != nil {
			stderr = strings.TrimSpace(string(result.Stderr))
		}
		if stderr != "" {
			return "", fmt.Errorf("cargo install failed: %s", stderr)
		}
		return "", fmt.Errorf("cargo install failed: %w", err)
	}

	binPath := r.installedPath()

	if err := r.validate(ctx, binPath); err != nil {
		return "", fmt.Errorf("validate installation: %w", err)
	}

	r.prompter.Print("ForgeKit toolchain installed successfully.")

	return binPath, nil
}

// validate verifies that the toolchain works by running --version.
func (r *Resolver) validate(ctx context.Context, binPath string) error {
	result, err := r.executor.Run(ctx, &exec.RunOptions{
		Name: binPath,
		Args: []string{"--version"},
	})
	if err != nil {
		stderr := ""
		if result != nil {
			stderr = strings.TrimSpace(string(result.Stderr))
		}
		if stderr != "" {
			return fmt.Errorf("forgekit --version failed: %s", stderr)
		}
		return fmt.Errorf("forgekit --version failed: %w", err)
	}
	return nil
}

// installedPath returns where cargo places the binary.
func (r *Resolver) installedPath() string {
	if home := os.Getenv("CARGO_HOME"); home != "" {
		return filepath.Join(home, "bin", forgekitBin)
	}
	return filepath.Join(r.homeDir, ".cargo", "bin", forgekitBin)
}

// notFoundError returns the classified not-found error with its fixed
// remediation message.
func notFoundError() error {
	return &forgekit.Error{
		Kind:    forgekit.ErrToolchainNotFound,
		Message: forgekit.NotFoundRemedy,
	}
}
