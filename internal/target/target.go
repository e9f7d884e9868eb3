package target

import (
	"net"
	"strconv"
)

// DefaultPort is the standard Minecraft server port
const DefaultPort = 25565

// Target identifies the server a single lookup runs against. Immutable
// once the lookup begins.
type Target struct {
	Host string
	Port int
}

// Parse builds a Target from a host string and an optional port. A port
// embedded in the host string ("play.example.com:25570") wins over the
// port argument; with neither supplied the default port applies.
func Parse(host string, port int) Target {
	if h, p, err := net.SplitHostPort(host); err == nil && h != "" {
		if embedded, err := strconv.Atoi(p); err == nil && embedded > 0 {
			return Target{Host: h, Port: embedded}
		}
	}

	if port <= 0 {
		port = DefaultPort
	}

	return Target{Host: host, Port: port}
}

// Addr returns the host:port form both probes dial
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}
