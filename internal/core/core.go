package core

import (
	"context"

	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/status"
	"github.com/craftstat/craftstat/internal/target"
)

// Core ties the probe dispatcher and the reconciler into one lookup
// flow: fan out, wait for both outcomes, merge, enrich.
type Core struct {
	dispatcher probe.Service
	reconciler *status.Reconciler
}

// New returns a new core module
func New(dispatcher probe.Service, reconciler *status.Reconciler) *Core {
	return &Core{
		dispatcher: dispatcher,
		reconciler: reconciler,
	}
}

// Lookup runs both probes against t, waits for both to settle and
// returns the single reconciled record. There are no retries and no
// deadline beyond what the transports enforce.
func (c *Core) Lookup(ctx context.Context, t target.Target) *status.Reconciled {
	ping, query := c.dispatcher.Dispatch(ctx, t)

	return c.reconciler.Reconcile(t, ping, query)
}

// Pending returns the placeholder record shown while a lookup is in
// flight
func (c *Core) Pending(t target.Target) *status.Reconciled {
	return c.reconciler.Reconcile(
		t,
		probe.PingOutcome{State: probe.StatePending},
		probe.QueryOutcome{State: probe.StatePending},
	)
}
