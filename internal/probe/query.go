package probe

import (
	"context"
	"time"

	"github.com/syfaro/mc/mcquery"

	"github.com/craftstat/craftstat/internal/target"
)

// FullStatQuerier implements Querier over the optionally-enabled udp
// query interface. The exchange reports no latency of its own, so the
// wall time around it stands in.
type FullStatQuerier struct{}

// NewFullStatQuerier returns a new FullStatQuerier
func NewFullStatQuerier() *FullStatQuerier {
	return &FullStatQuerier{}
}

// Query connects to the target's query port and requests a full stat.
// The underlying transport enforces its own timeout; none is added here.
func (q *FullStatQuerier) Query(ctx context.Context, t target.Target) (*QueryPayload, error) {
	start := time.Now()

	conn, err := mcquery.Connect(t.Addr())

	if err != nil {
		return nil, err
	}

	stat, err := conn.FullStat()

	if err != nil {
		return nil, err
	}

	latency := float64(time.Since(start)) / float64(time.Millisecond)

	return &QueryPayload{
		Latency:  latency,
		Software: stat.Version,
		Plugins:  stat.Plugins,
		Online:   stat.NumPlayers,
		Max:      stat.MaxPlayers,
		Players:  stat.Players,
		Hostname: stat.MOTD,
	}, nil
}
