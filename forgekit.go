// Package forgekit is a Go bridge to the ForgeKit toolchain, the external
// executable that scaffolds, builds, and packages .mox application bundles.
// It translates high-level operations into argument vectors, supervises the
// forgekit process, classifies failures, and parses the tool's text output
// into structured results. The toolchain itself is a black box: argv in,
// text and an exit code out.
package forgekit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"

	"github.com/ledokoz/forgekit-go/internal/exec"
	"github.com/ledokoz/forgekit-go/internal/slogger"
)

const (
	// DefaultBin is the binary name resolved from PATH when no explicit
	// location is configured.
	DefaultBin = "forgekit"

	// EnvPath overrides the toolchain binary location.
	EnvPath = "FORGEKIT_PATH"

	// EnvVerbose enables diagnostic echoing of argument vectors and
	// captured streams.
	EnvVerbose = "FORGEKIT_VERBOSE"
)

// Config configures a Toolchain. The zero value is usable: the binary is
// resolved from FORGEKIT_PATH or PATH, invocations run in the current
// directory, and diagnostics are disabled.
type Config struct {
	// Bin is the toolchain binary name or path. Empty falls back to
	// FORGEKIT_PATH, then to DefaultBin.
	Bin string

	// Dir is the working directory for invocations. Empty means the
	// current directory.
	Dir string

	// Verbose echoes argument vectors and captured streams through the
	// logger. FORGEKIT_VERBOSE=1 enables it as well.
	Verbose bool

	// Logger receives diagnostics. Defaults to a charm-styled stderr
	// logger whose level follows Verbose.
	Logger *slog.Logger
}

// Toolchain invokes the forgekit binary. Its configuration is fixed at
// construction and never mutated, so a single instance is safe for
// concurrent use; each call spawns its own process.
type Toolchain struct {
	bin     string
	dir     string
	verbose bool
	logger  *slog.Logger
	exec    exec.Executor
}

// New creates a Toolchain. Environment overrides (FORGEKIT_PATH,
// FORGEKIT_VERBOSE) are read once, here.
func New(cfg Config) *Toolchain {
	bin := cfg.Bin
	if bin == "" {
		bin = os.Getenv(EnvPath)
	}
	if bin == "" {
		bin = DefaultBin
	}

	verbose := cfg.Verbose
	if !verbose {
		if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil {
			verbose = v
		}
	}

	logger := cfg.Logger
	if logger == nil {
		verbosity := 0
		if verbose {
			verbosity = 2
		}
		logger = slogger.New(slogger.Config{Verbosity: verbosity})
	}

	return &Toolchain{
		bin:     bin,
		dir:     cfg.Dir,
		verbose: verbose,
		logger:  logger,
		exec:    exec.New(),
	}
}

// Result holds the captured output of a completed invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// New scaffolds a new project.
func (t *Toolchain) New(ctx context.Context, name string, opts NewOptions) (*Result, error) {
	return t.run(ctx, NewArgs(name, opts))
}

// Build compiles the project.
func (t *Toolchain) Build(ctx context.Context, opts ProjectOptions) (*Result, error) {
	return t.run(ctx, BuildArgs(opts))
}

// Package bundles the project and returns the created package path.
func (t *Toolchain) Package(ctx context.Context, opts ProjectOptions) (string, error) {
	result, err := t.run(ctx, PackageArgs(opts))
	if err != nil {
		return "", err
	}
	return t.packagePath(result)
}

// BuildPackage compiles and bundles the project and returns the created
// package path.
func (t *Toolchain) BuildPackage(ctx context.Context, opts ProjectOptions) (string, error) {
	result, err := t.run(ctx, BuildPackageArgs(opts))
	if err != nil {
		return "", err
	}
	return t.packagePath(result)
}

// Run builds and executes the project locally.
func (t *Toolchain) Run(ctx context.Context, opts ProjectOptions) (*Result, error) {
	return t.run(ctx, RunArgs(opts))
}

// Add adds a dependency to the project.
func (t *Toolchain) Add(ctx context.Context, name string, opts AddOptions) (*Result, error) {
	return t.run(ctx, AddArgs(name, opts))
}

// Remove removes a dependency from the project.
func (t *Toolchain) Remove(ctx context.Context, name string, opts ProjectOptions) (*Result, error) {
	return t.run(ctx, RemoveArgs(name, opts))
}

// Update updates the project's dependencies.
func (t *Toolchain) Update(ctx context.Context, opts ProjectOptions) (*Result, error) {
	return t.run(ctx, UpdateArgs(opts))
}

// Search queries the package registry and returns the matching entries in
// the order the tool reported them. The list may be empty.
func (t *Toolchain) Search(ctx context.Context, query string, opts ProjectOptions) ([]string, error) {
	result, err := t.run(ctx, SearchArgs(query, opts))
	if err != nil {
		return nil, err
	}
	return parseSearchResults(result.Stdout), nil
}

// Templates lists the scaffolding templates known to the toolchain.
func (t *Toolchain) Templates(ctx context.Context, opts ProjectOptions) ([]Template, error) {
	result, err := t.run(ctx, TemplatesArgs(opts))
	if err != nil {
		return nil, err
	}
	return parseTemplates(result.Stdout), nil
}

// Passthrough invokes the toolchain in streamed mode: the tool's output
// goes straight to the given writers and its exit code is returned. A
// non-zero exit is not an error here; only launch failures are.
func (t *Toolchain) Passthrough(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	t.logger.Debug("invoking toolchain", "bin", t.bin, "args", strings.Join(args, " "), "dir", t.dir)

	result, err := t.exec.Run(ctx, &exec.RunOptions{
		Name:   t.bin,
		Args:   args,
		Dir:    t.dir,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, classifyLaunch(err)
	}
	return result.ExitCode, nil
}

// run invokes the toolchain in captured mode and classifies any failure.
func (t *Toolchain) run(ctx context.Context, args []string) (*Result, error) {
	t.logger.Debug("invoking toolchain", "bin", t.bin, "args", strings.Join(args, " "), "dir", t.dir)

	res, err := t.exec.Run(ctx, &exec.RunOptions{
		Name: t.bin,
		Args: args,
		Dir:  t.dir,
	})
	if err != nil {
		return nil, classify(res, err)
	}

	result := &Result{
		Stdout:   string(res.Stdout),
		Stderr:   string(res.Stderr),
		ExitCode: res.ExitCode,
	}
	if t.verbose {
		t.logger.Debug("toolchain completed",
			"exit", result.ExitCode,
			"stdout", result.Stdout,
			"stderr", result.Stderr,
		)
	}
	return result, nil
}

// packagePath extracts the package path from a successful result, failing
// with ErrParse when the marker is missing.
func (t *Toolchain) packagePath(result *Result) (string, error) {
	path, ok := parsePackagePath(result.Stdout)
	if !ok {
		return "", &Error{
			Kind:    ErrParse,
			Message: "package path not found in forgekit output",
		}
	}
	return path, nil
}
