package status

import (
	"errors"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/logger"
	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/target"
)

// Reconciler merges the two probe outcomes into one Reconciled record.
// The merge itself is a total, deterministic function of the outcomes;
// the only side effects are the identity lookups and the icon store
// write, both of which degrade the record on failure instead of aborting
// the lookup. Calling Reconcile again with more settled outcomes only
// ever produces a more complete record.
type Reconciler struct {
	icons    IconStore
	resolver IdentityResolver
	log      logger.Logger
}

// NewReconciler returns a Reconciler using the given collaborators
func NewReconciler(icons IconStore, resolver IdentityResolver) *Reconciler {
	return &Reconciler{
		icons:    icons,
		resolver: resolver,
		log:      logger.New(),
	}
}

// Reconcile merges ping and query into a single record for t. The query
// payload wins wherever it is strictly more complete; the ping payload
// fills gaps and is the sole source of the icon.
func (r *Reconciler) Reconcile(t target.Target, ping probe.PingOutcome, query probe.QueryOutcome) *Reconciled {
	rec := &Reconciled{
		Kind:       KindStatus,
		Target:     t,
		PingState:  ping.State,
		QueryState: query.State,
	}

	if ping.State == probe.StatePending && query.State == probe.StatePending {
		rec.Kind = KindPending
		return rec
	}

	if ping.State == probe.StateFailed && query.State == probe.StateFailed {
		rec.Kind = KindOffline
		return rec
	}

	p := probe.PingPayload{}
	q := probe.QueryPayload{}

	if ping.Payload != nil {
		p = *ping.Payload
	}

	if query.Payload != nil {
		q = *query.Payload
	}

	// report the slower observed round trip, absent values count as zero
	rec.Latency = p.Latency
	if q.Latency > rec.Latency {
		rec.Latency = q.Latency
	}

	rec.Version = p.Version
	if rec.Version == "" {
		rec.Version = q.Software
	}

	rec.Motd = stripFormatting(motdText(p.Description))
	if rec.Motd == "" {
		rec.Motd = stripFormatting(q.Hostname)
	}

	// the ping protocol never carries plugins
	if len(q.Plugins) > 0 {
		rec.Plugins = q.Plugins
	}

	// a zero online count is kept; a zero maximum means unreported
	if query.State == probe.StateSuccess {
		online := q.Online
		rec.SlotsOnline = &online

		if q.Max > 0 {
			max := q.Max
			rec.SlotsMax = &max
		}
	} else if ping.State == probe.StateSuccess {
		online := p.Online
		rec.SlotsOnline = &online

		if p.Max > 0 {
			max := p.Max
			rec.SlotsMax = &max
		}
	}

	names := q.Players
	if len(names) == 0 {
		names = p.Sample
	}

	rec.Players = r.annotate(names)

	if p.Favicon != "" {
		key, err := r.icons.Store(p.Favicon)

		if err != nil {
			// a bad or unstorable favicon costs the thumbnail, not the lookup
			r.log.Warn().Err(err).Str("addr", t.Addr()).Msg("favicon not cached")
		} else {
			rec.IconKey = key
		}
	}

	rec.Incomplete = narrative(ping.State, query.State)

	return rec
}

// narrative picks the single applicable incomplete-data explanation. The
// cases are checked in order and cover every outcome combination that is
// not handled as a degenerate record kind.
func narrative(ping, query probe.State) Narrative {
	if ping == probe.StateSuccess && query == probe.StateSuccess {
		return NarrativeNone
	}

	switch {
	case query == probe.StateFailed:
		return NarrativeQueryFailed
	case query == probe.StatePending:
		return NarrativeQueryPending
	case ping == probe.StatePending:
		return NarrativePingPending
	default:
		return NarrativeUnexpected
	}
}

// annotate attaches resolved discord identities to player names. A
// resolver miss leaves the name unannotated and never fails the merge.
func (r *Reconciler) annotate(names []string) []Player {
	if len(names) == 0 {
		return nil
	}

	players := make([]Player, 0, len(names))

	for _, name := range names {
		player := Player{Name: name}

		id, err := r.resolver.Resolve(name)

		if err == nil {
			player.DiscordID = id
		} else if !errors.Is(err, exception.ErrRecordNotFound) {
			r.log.Warn().Err(err).Str("player", name).Msg("identity lookup failed")
		}

		players = append(players, player)
	}

	return players
}
