package probe

import (
	"context"
	"sync"

	"github.com/craftstat/craftstat/internal/logger"
	"github.com/craftstat/craftstat/internal/target"
)

// Dispatcher implements probe.Service by fanning both probes out as
// goroutines and waiting for both to settle before returning. Neither
// probe is retried, and neither is cancelled because its sibling failed
// or succeeded. Transport errors are captured per probe and become
// StateFailed; they never reach the caller.
type Dispatcher struct {
	pinger  Pinger
	querier Querier
	log     logger.Logger
}

// NewDispatcher returns a new Dispatcher using the given probe clients
func NewDispatcher(pinger Pinger, querier Querier) *Dispatcher {
	return &Dispatcher{
		pinger:  pinger,
		querier: querier,
		log:     logger.New(),
	}
}

// Dispatch runs both probes against t and returns both outcomes once both
// have settled. No deadline is imposed here beyond what the underlying
// transports enforce.
func (d *Dispatcher) Dispatch(ctx context.Context, t target.Target) (PingOutcome, QueryOutcome) {
	ping := PingOutcome{State: StatePending}
	query := QueryOutcome{State: StatePending}

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()

		payload, err := d.pinger.Ping(ctx, t)

		if err != nil {
			d.log.Warn().Err(err).Str("addr", t.Addr()).Msg("ping probe failed")
			ping = PingOutcome{State: StateFailed}
			return
		}

		ping = PingOutcome{State: StateSuccess, Payload: payload}
	}()

	go func() {
		defer wg.Done()

		payload, err := d.querier.Query(ctx, t)

		if err != nil {
			d.log.Warn().Err(err).Str("addr", t.Addr()).Msg("query probe failed")
			query = QueryOutcome{State: StateFailed}
			return
		}

		query = QueryOutcome{State: StateSuccess, Payload: payload}
	}()

	wg.Wait()

	return ping, query
}
