package probe

import (
	"context"

	"github.com/craftstat/craftstat/internal/target"
)

//go:generate mockgen -destination=../mock/probe/mock_probe.go -package=mock_probe . Pinger,Querier,Service

// State tracks how far a single probe has gotten. A failure is
// distinguished from "no data yet" by the probe having settled.
type State string

const (
	StatePending State = "pending"
	StateSuccess State = "success"
	StateFailed  State = "failed"
)

// PingPayload carries the loosely structured fields of a server list ping
// response. Everything in it is optional on the wire.
type PingPayload struct {
	// Latency is the observed round trip in milliseconds
	Latency float64
	Version string
	// Description is the raw MOTD value: either a plain string or a
	// structured {"text": ...} object
	Description any
	// Favicon is a data:image/<ext>;base64,<body> uri, only ever
	// delivered by this probe
	Favicon string
	Online  int
	Max     int
	// Sample is a partial list of player names, possibly truncated or
	// anonymized by the server
	Sample  []string
	ModInfo map[string]any
}

// QueryPayload carries the fields of a full-stat query response. The
// player list here is authoritative and untruncated.
type QueryPayload struct {
	Latency  float64
	Software string
	Plugins  []string
	Online   int
	Max      int
	Players  []string
	// Hostname is the server declared MOTD substitute
	Hostname string
}

// PingOutcome is the settled-or-not result of the ping probe. A failed
// outcome carries no payload.
type PingOutcome struct {
	State   State
	Payload *PingPayload
}

// QueryOutcome is the settled-or-not result of the query probe
type QueryOutcome struct {
	State   State
	Payload *QueryPayload
}

// Pinger runs the tcp server list ping probe
type Pinger interface {
	Ping(ctx context.Context, t target.Target) (*PingPayload, error)
}

// Querier runs the udp full-stat query probe
type Querier interface {
	Query(ctx context.Context, t target.Target) (*QueryPayload, error)
}

// Service dispatches both probes against a target and reports both
// outcomes independently
type Service interface {
	Dispatch(ctx context.Context, t target.Target) (PingOutcome, QueryOutcome)
}
