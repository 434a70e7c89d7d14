// Package testt (for test tools), provides helpers shared by the
// tests in this module.
package testt

import (
	"context"
	"testing"

	"github.com/brendoncarroll/stdctx/logctx"
	"go.uber.org/zap/zaptest"
)

// Context creates a context and attaches its cancellation function to
// the test execution's Cleanup. Given the execution of tests, this
// means that the context is canceled *after* the test functions
// defers have run.
//
// The context carries a logger that writes to the test's log.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return logctx.NewContext(ctx, zaptest.NewLogger(t))
}
