package probe_test

import (
	"bufio"
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/target"
)

// test-side varint encoding for framing fake server responses
func encodeVarInt(n int) []byte {
	v := uint32(n)
	out := []byte{}

	for {
		if v&^0x7f == 0 {
			return append(out, byte(v))
		}

		out = append(out, byte(v&0x7f|0x80))
		v >>= 7
	}
}

func readFrame(r *bufio.Reader) error {
	size := 0
	shift := 0

	for {
		b, err := r.ReadByte()

		if err != nil {
			return err
		}

		size |= int(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			break
		}
	}

	_, err := io.CopyN(io.Discard, r, int64(size))

	return err
}

// fakeServer answers one server list ping exchange with the given
// status JSON
func fakeServer(t *testing.T, response string) target.Target {
	t.Helper()

	body := append([]byte{0x00}, encodeVarInt(len(response))...)
	body = append(body, response...)

	return fakeRawServer(t, append(encodeVarInt(len(body)), body...))
}

// fakeRawServer consumes the handshake and status request, then answers
// with the raw bytes as given
func fakeRawServer(t *testing.T, raw []byte) target.Target {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("failed to listen: %s", err.Error())
	}

	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()

		if err != nil {
			return
		}

		defer conn.Close()

		r := bufio.NewReader(conn)

		// handshake then status request
		if err := readFrame(r); err != nil {
			return
		}

		if err := readFrame(r); err != nil {
			return
		}

		conn.Write(raw)
	}()

	addr := ln.Addr().(*net.TCPAddr)

	return target.Target{Host: "127.0.0.1", Port: addr.Port}
}

func TestStatusPinger(t *testing.T) {
	pinger := probe.NewStatusPinger()

	ctx := context.Background()

	t.Run("decodes a full response", func(st *testing.T) {
		response := `{
			"version": {"name": "Paper 1.20.1", "protocol": 763},
			"players": {
				"max": 20,
				"online": 2,
				"sample": [{"name": "Alice", "id": "a"}, {"name": "Bob", "id": "b"}]
			},
			"description": "§aA Minecraft Server",
			"favicon": "data:image/png;base64,aWNvbg=="
		}`

		payload, err := pinger.Ping(ctx, fakeServer(st, response))

		assert.NoError(st, err)
		assert.Equal(st, "Paper 1.20.1", payload.Version)
		assert.Equal(st, "§aA Minecraft Server", payload.Description)
		assert.Equal(st, 2, payload.Online)
		assert.Equal(st, 20, payload.Max)
		assert.Equal(st, []string{"Alice", "Bob"}, payload.Sample)
		assert.Equal(st, "data:image/png;base64,aWNvbg==", payload.Favicon)
		assert.Greater(st, payload.Latency, float64(0))
	})

	t.Run("keeps a structured description raw", func(st *testing.T) {
		response := `{
			"version": {"name": "1.19", "protocol": 759},
			"players": {"max": 10, "online": 0},
			"description": {"text": "Welcome"}
		}`

		payload, err := pinger.Ping(ctx, fakeServer(st, response))

		assert.NoError(st, err)

		description, ok := payload.Description.(map[string]any)

		assert.True(st, ok)
		assert.Equal(st, "Welcome", description["text"])
		assert.Empty(st, payload.Sample)
		assert.Empty(st, payload.Favicon)
	})

	t.Run("errors on malformed response json", func(st *testing.T) {
		_, err := pinger.Ping(ctx, fakeServer(st, `{"version": `))

		assert.Error(st, err)
	})

	t.Run("errors on a negative body length", func(st *testing.T) {
		// frame length 7, packet id 0, then a varint decoding to -1
		raw := []byte{0x07, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}

		_, err := pinger.Ping(ctx, fakeRawServer(st, raw))

		assert.Error(st, err)
	})

	t.Run("errors on an oversized body length", func(st *testing.T) {
		// frame claims a 256 MiB body
		body := append([]byte{0x00}, encodeVarInt(1<<28)...)

		raw := append(encodeVarInt(len(body)), body...)

		_, err := pinger.Ping(ctx, fakeRawServer(st, raw))

		assert.Error(st, err)
	})

	t.Run("errors on connection refused", func(st *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")

		if err != nil {
			st.Fatalf("failed to listen: %s", err.Error())
		}

		unused := ln.Addr().(*net.TCPAddr).Port

		ln.Close()

		_, err = pinger.Ping(ctx, target.Target{Host: "127.0.0.1", Port: unused})

		assert.Error(st, err)
	})
}
