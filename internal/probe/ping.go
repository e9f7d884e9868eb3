package probe

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/craftstat/craftstat/internal/target"
)

// protocol number claimed in the handshake; servers answer status
// requests regardless of the version we announce
const handshakeProtocol = 754

// packet ids used by the status exchange
const (
	packetHandshake     = 0x00
	packetStatusRequest = 0x00
)

// next-state value selecting the status flow after the handshake
const stateStatus = 1

// upper bound on the status response body; the length prefix comes from
// the remote server and must never size an allocation unchecked
const maxStatusLen = 1 << 20

// pingResponse mirrors the status response JSON
type pingResponse struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
		Sample []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
	Favicon     string          `json:"favicon"`
	ModInfo     map[string]any  `json:"modinfo"`
	ForgeData   map[string]any  `json:"forgeData"`
}

// StatusPinger implements Pinger over the tcp server list ping exchange.
// The probe needs no server-side feature to be enabled.
type StatusPinger struct{}

// NewStatusPinger returns a new StatusPinger
func NewStatusPinger() *StatusPinger {
	return &StatusPinger{}
}

// Ping dials the target, performs the handshake and status request, and
// decodes the response. Latency is the wall time of the whole exchange.
func (p *StatusPinger) Ping(ctx context.Context, t target.Target) (*PingPayload, error) {
	dialer := net.Dialer{}

	conn, err := dialer.DialContext(ctx, "tcp", t.Addr())

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	start := time.Now()

	if err := writePacket(conn, handshakePacket(t)); err != nil {
		return nil, err
	}

	if err := writePacket(conn, []byte{packetStatusRequest}); err != nil {
		return nil, err
	}

	raw, err := readStatus(bufio.NewReader(conn))

	if err != nil {
		return nil, err
	}

	latency := float64(time.Since(start)) / float64(time.Millisecond)

	return decodePing(raw, latency)
}

// handshakePacket builds the handshake body: packet id, claimed protocol,
// server address, server port, next state
func handshakePacket(t target.Target) []byte {
	body := bytes.Buffer{}

	body.WriteByte(packetHandshake)
	writeVarInt(&body, handshakeProtocol)
	writeVarInt(&body, len(t.Host))
	body.WriteString(t.Host)
	binary.Write(&body, binary.BigEndian, uint16(t.Port))
	writeVarInt(&body, stateStatus)

	return body.Bytes()
}

// writePacket frames body with its varint length and writes it out
func writePacket(w io.Writer, body []byte) error {
	framed := bytes.Buffer{}

	writeVarInt(&framed, len(body))
	framed.Write(body)

	_, err := w.Write(framed.Bytes())

	return err
}

// readStatus consumes one status response packet and returns its JSON body
func readStatus(r *bufio.Reader) ([]byte, error) {
	if _, err := readVarInt(r); err != nil {
		return nil, err
	}

	id, err := readVarInt(r)

	if err != nil {
		return nil, err
	}

	if id != packetStatusRequest {
		return nil, fmt.Errorf("unexpected packet id %d in status response", id)
	}

	size, err := readVarInt(r)

	if err != nil {
		return nil, err
	}

	if size < 0 || size > maxStatusLen {
		return nil, fmt.Errorf("status response length %d out of range", size)
	}

	raw := make([]byte, size)

	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// decodePing maps the response JSON onto a PingPayload. The description
// stays raw (string or {"text": ...} object); unwrapping it is the
// reconciler's concern.
func decodePing(raw []byte, latency float64) (*PingPayload, error) {
	response := pingResponse{}

	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, err
	}

	payload := &PingPayload{
		Latency: latency,
		Version: response.Version.Name,
		Favicon: response.Favicon,
		Online:  response.Players.Online,
		Max:     response.Players.Max,
		ModInfo: response.ModInfo,
	}

	if payload.ModInfo == nil {
		payload.ModInfo = response.ForgeData
	}

	if len(response.Description) > 0 {
		var description any

		if err := json.Unmarshal(response.Description, &description); err != nil {
			return nil, err
		}

		payload.Description = description
	}

	for _, sample := range response.Players.Sample {
		payload.Sample = append(payload.Sample, sample.Name)
	}

	return payload, nil
}

// writeVarInt appends n to b in the protocol's varint encoding
func writeVarInt(b *bytes.Buffer, n int) {
	v := uint32(n)

	for {
		if v&^0x7f == 0 {
			b.WriteByte(byte(v))
			return
		}

		b.WriteByte(byte(v&0x7f | 0x80))
		v >>= 7
	}
}

// readVarInt decodes a single varint from r
func readVarInt(r io.ByteReader) (int, error) {
	var v uint32

	for shift := 0; shift < 35; shift += 7 {
		b, err := r.ReadByte()

		if err != nil {
			return 0, err
		}

		v |= uint32(b&0x7f) << shift

		if b&0x80 == 0 {
			return int(int32(v)), nil
		}
	}

	return 0, fmt.Errorf("varint longer than five bytes")
}
