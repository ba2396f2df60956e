// Package mocks provides test doubles for the exec package.
package mocks

import (
	"context"
	"sync"

	"github.com/ledokoz/forgekit-go/internal/exec"
)

// ExecutorMock implements exec.Executor with function fields. Unset
// functions make the corresponding method panic, which keeps tests honest
// about what they expect to be called.
type ExecutorMock struct {
	// RunFunc mocks the Run method.
	RunFunc func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error)

	// LookPathFunc mocks the LookPath method.
	LookPathFunc func(name string) (string, error)

	mu       sync.Mutex
	runCalls []*exec.RunOptions
}

// Run calls RunFunc and records the invocation.
func (m *ExecutorMock) Run(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
	if m.RunFunc == nil {
		panic("ExecutorMock.RunFunc: method is nil but Run was just called")
	}
	m.mu.Lock()
	m.runCalls = append(m.runCalls, opts)
	m.mu.Unlock()
	return m.RunFunc(ctx, opts)
}

// LookPath calls LookPathFunc.
func (m *ExecutorMock) LookPath(name string) (string, error) {
	if m.LookPathFunc == nil {
		panic("ExecutorMock.LookPathFunc: method is nil but LookPath was just called")
	}
	return m.LookPathFunc(name)
}

// RunCalls returns the RunOptions passed to each Run invocation, in order.
func (m *ExecutorMock) RunCalls() []*exec.RunOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*exec.RunOptions(nil), m.runCalls...)
}
