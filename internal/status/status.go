package status

import (
	"fmt"

	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/target"
)

// Kind separates the degenerate record states from a data-carrying one
type Kind string

const (
	// KindPending both probes are still in flight
	KindPending Kind = "pending"
	// KindOffline both probes failed; the record carries no data fields
	KindOffline Kind = "offline"
	// KindStatus at least one probe settled with data
	KindStatus Kind = "status"
)

// Narrative enumerates the incomplete-data explanations. Exactly one
// applies whenever either probe has not succeeded.
type Narrative string

const (
	NarrativeNone         Narrative = ""
	NarrativeQueryFailed  Narrative = "query-failed"
	NarrativeQueryPending Narrative = "query-pending"
	NarrativePingPending  Narrative = "ping-pending"
	NarrativeUnexpected   Narrative = "unexpected"
)

// Player is one display name, annotated with its resolved discord
// identity when a mapping exists
type Player struct {
	Name      string
	DiscordID string
}

// Reconciled is the single merged view of a target's live state, derived
// from the two probe outcomes. It holds no network state and is safe to
// recompute; empty fields are omitted from presentation except
// SlotsOnline, which stays meaningful at zero.
type Reconciled struct {
	Kind    Kind
	Target  target.Target
	Latency float64
	Version string
	Motd    string
	Plugins []string
	// SlotsOnline is pointer-typed so a raw zero survives the merge
	SlotsOnline *int
	SlotsMax    *int
	Players     []Player
	IconKey     string
	Incomplete  Narrative
	// raw probe states kept for diagnostics
	PingState  probe.State
	QueryState probe.State
}

// Describe renders the incompleteness narrative for display
func (r *Reconciled) Describe() string {
	switch r.Incomplete {
	case NarrativeQueryFailed:
		return "Querying the server failed, is the query interface not enabled?"
	case NarrativeQueryPending:
		return "Waiting for result of query..."
	case NarrativePingPending:
		return "Waiting for result of ping..."
	case NarrativeUnexpected:
		return fmt.Sprintf(
			"Pinging the server failed. This should not happen. (ping: %s, query: %s)",
			r.PingState,
			r.QueryState,
		)
	default:
		return ""
	}
}
