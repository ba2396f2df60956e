package forgekit

import (
	"bytes"
	"context"
	"errors"
	"io"
	osexec "os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledokoz/forgekit-go/internal/exec"
	"github.com/ledokoz/forgekit-go/internal/exec/mocks"
	"github.com/ledokoz/forgekit-go/internal/slogger"
)

// newToolchain builds a Toolchain wired to the given mock executor.
func newToolchain(mock *mocks.ExecutorMock, cfg Config) *Toolchain {
	if cfg.Logger == nil {
		cfg.Logger = slogger.New(slogger.Config{Output: io.Discard})
	}
	t := New(cfg)
	t.exec = mock
	return t
}

func TestNew_Defaults(t *testing.T) {
	t.Run("falls back to binary name", func(t *testing.T) {
		t.Setenv(EnvPath, "")
		t.Setenv(EnvVerbose, "")

		tc := New(Config{})
		assert.Equal(t, DefaultBin, tc.bin)
		assert.False(t, tc.verbose)
	})

	t.Run("reads environment overrides once at construction", func(t *testing.T) {
		t.Setenv(EnvPath, "/opt/forgekit/bin/forgekit")
		t.Setenv(EnvVerbose, "1")

		tc := New(Config{})
		assert.Equal(t, "/opt/forgekit/bin/forgekit", tc.bin)
		assert.True(t, tc.verbose)
	})

	t.Run("explicit config beats environment", func(t *testing.T) {
		t.Setenv(EnvPath, "/opt/forgekit/bin/forgekit")

		tc := New(Config{Bin: "/usr/local/bin/forgekit"})
		assert.Equal(t, "/usr/local/bin/forgekit", tc.bin)
	})
}

func TestToolchain_New(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			assert.Equal(t, "forgekit", opts.Name)
			assert.Equal(t, []string{"new", "myapp", "--template", "cli"}, opts.Args)
			assert.Equal(t, "/work", opts.Dir)
			return &exec.Result{Stdout: []byte("✅ Created new project 'myapp'\n")}, nil
		},
	}

	tc := newToolchain(mock, Config{Bin: "forgekit", Dir: "/work"})

	result, err := tc.New(context.Background(), "myapp", NewOptions{Template: "cli"})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "Created new project")
	assert.Equal(t, 0, result.ExitCode)
}

func TestToolchain_Package(t *testing.T) {
	t.Run("returns the extracted package path", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				assert.Equal(t, []string{"package"}, opts.Args)
				return &exec.Result{Stdout: []byte(`✅ Package created at "/tmp/x.mox"` + "\n")}, nil
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		path, err := tc.Package(context.Background(), ProjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/x.mox", path)
	})

	t.Run("fails with parse error when the marker is missing", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{Stdout: []byte("done\n")}, nil
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		_, err := tc.Package(context.Background(), ProjectOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestToolchain_BuildPackage(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			assert.Equal(t, []string{"build-package", "--path", "/tmp/app"}, opts.Args)
			return &exec.Result{Stdout: []byte("✅ Build completed\nPackage created at /tmp/app/target/app.mox\n")}, nil
		},
	}

	tc := newToolchain(mock, Config{Bin: "forgekit"})

	path, err := tc.BuildPackage(context.Background(), ProjectOptions{Path: "/tmp/app"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/app/target/app.mox", path)
}

func TestToolchain_Search(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			assert.Equal(t, []string{"search", "http"}, opts.Args)
			return &exec.Result{Stdout: []byte("- http-client - async HTTP client\n- httpd - tiny web server\nFound 2 packages\n")}, nil
		},
	}

	tc := newToolchain(mock, Config{Bin: "forgekit"})

	results, err := tc.Search(context.Background(), "http", ProjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"http-client - async HTTP client",
		"httpd - tiny web server",
	}, results)
}

func TestToolchain_Templates(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			assert.Equal(t, []string{"templates"}, opts.Args)
			return &exec.Result{Stdout: []byte("Available templates:\ncli       - Basic CLI template\ngui       - Windowed application\n")}, nil
		},
	}

	tc := newToolchain(mock, Config{Bin: "forgekit"})

	templates, err := tc.Templates(context.Background(), ProjectOptions{})
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, Template{Name: "cli", Description: "Basic CLI template"}, templates[0])
}

func TestToolchain_ClassifiesFailures(t *testing.T) {
	t.Run("missing binary", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return nil, &osexec.Error{Name: "forgekit", Err: osexec.ErrNotFound}
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		_, err := tc.Build(context.Background(), ProjectOptions{})
		assert.ErrorIs(t, err, ErrToolchainNotFound)
	})

	t.Run("non-zero exit carries stderr", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{
					Stderr:   []byte("error: could not compile `myapp`\n"),
					ExitCode: 101,
				}, realExitError(t, 101)
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		_, err := tc.Build(context.Background(), ProjectOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonZeroExit)
		assert.Equal(t, "error: could not compile `myapp`", err.Error())
	})

	t.Run("spawn failure", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return nil, errors.New("fork/exec forgekit: permission denied")
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		_, err := tc.Update(context.Background(), ProjectOptions{})
		assert.ErrorIs(t, err, ErrSpawn)
	})
}

func TestToolchain_Passthrough(t *testing.T) {
	t.Run("streams output and mirrors a zero exit", func(t *testing.T) {
		var stdout bytes.Buffer

		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
				require.NotNil(t, opts.Stdout)
				require.NotNil(t, opts.Stderr)
				_, _ = opts.Stdout.Write([]byte("✅ Build completed successfully\n"))
				return &exec.Result{ExitCode: 0}, nil
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		code, err := tc.Passthrough(context.Background(), []string{"build"}, &stdout, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "Build completed")
	})

	t.Run("mirrors a non-zero exit without error", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return &exec.Result{ExitCode: 3}, realExitError(t, 3)
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		code, err := tc.Passthrough(context.Background(), []string{"build"}, io.Discard, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("reports launch failure with exit code 1", func(t *testing.T) {
		mock := &mocks.ExecutorMock{
			RunFunc: func(_ context.Context, _ *exec.RunOptions) (*exec.Result, error) {
				return nil, &osexec.Error{Name: "forgekit", Err: osexec.ErrNotFound}
			},
		}

		tc := newToolchain(mock, Config{Bin: "forgekit"})

		code, err := tc.Passthrough(context.Background(), []string{"build"}, io.Discard, io.Discard)
		require.Error(t, err)
		assert.Equal(t, 1, code)
		assert.ErrorIs(t, err, ErrToolchainNotFound)
	})
}

func TestToolchain_ConcurrentCalls(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(_ context.Context, opts *exec.RunOptions) (*exec.Result, error) {
			return &exec.Result{Stdout: []byte("ok\n")}, nil
		},
	}

	tc := newToolchain(mock, Config{Bin: "forgekit"})

	done := make(chan error, 8)
	for range 8 {
		go func() {
			_, err := tc.Build(context.Background(), ProjectOptions{})
			done <- err
		}()
	}
	for range 8 {
		assert.NoError(t, <-done)
	}

	assert.Len(t, mock.RunCalls(), 8)
}
