package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/logger"
	mock_registry "github.com/craftstat/craftstat/internal/mock/registry"
)

// captureLogs redirects the global logger to a file and returns a reader
// for its contents
func captureLogs(t *testing.T) func() string {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), "bot.log")

	f, err := os.Create(logFile)

	if err != nil {
		t.Fatalf("failed to create log file: %s", err.Error())
	}

	t.Cleanup(func() { f.Close() })

	logger.GlobalSetLogFile(f)

	return func() string {
		raw, err := os.ReadFile(logFile)

		if err != nil {
			t.Fatalf("failed to read log file: %s", err.Error())
		}

		return string(raw)
	}
}

func commandInteraction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "guild-1",
			ChannelID: "chan-1",
			Data:      discordgo.ApplicationCommandInteractionData{Name: name},
		},
	}
}

func TestOnInteraction(t *testing.T) {
	t.Run("ignores commands with no registration", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		mockRegistry := mock_registry.NewMockService(ctrl)

		b := &Bot{registry: mockRegistry, log: logger.New()}

		logs := captureLogs(st)

		mockRegistry.EXPECT().
			Get("guild-1", "survival").
			Return(nil, exception.ErrRecordNotFound)

		b.onInteraction(nil, commandInteraction("survival"))

		assert.NotContains(st, logs(), "registration lookup failed")
	})

	t.Run("logs a failed registration lookup", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		mockRegistry := mock_registry.NewMockService(ctrl)

		b := &Bot{registry: mockRegistry, log: logger.New()}

		logs := captureLogs(st)

		mockRegistry.EXPECT().
			Get("guild-1", "survival").
			Return(nil, assert.AnError)

		// the lookup error must not be treated as a registered command,
		// so the whitelist check is never reached
		b.onInteraction(nil, commandInteraction("survival"))

		assert.Contains(st, logs(), "registration lookup failed")
	})
}
