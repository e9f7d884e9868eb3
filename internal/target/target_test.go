package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/target"
)

func TestParse(t *testing.T) {
	t.Run("defaults the port", func(st *testing.T) {
		parsed := target.Parse("play.example.com", 0)

		assert.Equal(st, "play.example.com", parsed.Host)
		assert.Equal(st, target.DefaultPort, parsed.Port)
	})

	t.Run("uses the explicit port argument", func(st *testing.T) {
		parsed := target.Parse("play.example.com", 25570)

		assert.Equal(st, "play.example.com", parsed.Host)
		assert.Equal(st, 25570, parsed.Port)
	})

	t.Run("embedded port wins over the argument", func(st *testing.T) {
		parsed := target.Parse("play.example.com:25599", 25570)

		assert.Equal(st, "play.example.com", parsed.Host)
		assert.Equal(st, 25599, parsed.Port)
	})

	t.Run("ignores an unparseable embedded port", func(st *testing.T) {
		parsed := target.Parse("play.example.com:abc", 0)

		assert.Equal(st, "play.example.com:abc", parsed.Host)
		assert.Equal(st, target.DefaultPort, parsed.Port)
	})
}

func TestAddr(t *testing.T) {
	parsed := target.Parse("10.0.0.5", 25565)

	assert.Equal(t, "10.0.0.5:25565", parsed.Addr())
}
