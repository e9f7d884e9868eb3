package registry_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/registry"
	"github.com/craftstat/craftstat/internal/test_util"
)

func TestRegistrySqliteRepo(t *testing.T) {
	testDBFile := "registry.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, registry.RegistrationModel{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := registry.NewSqliteRepo(db)

	newReg := &registry.Registration{
		GuildID:          "guild-1",
		Command:          "survival",
		IP:               "mc.example.com",
		Port:             25565,
		Note:             "the main server",
		Description:      "Check the survival server",
		ChannelWhitelist: []string{"chan-1", "chan-2"},
		AlienMessage:     "not here",
	}

	t.Run("Get returns record not found error", func(st *testing.T) {
		_, err := repo.Get("noop", "noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("creates registration", func(st *testing.T) {
		created, err := repo.Create(newReg)

		assert.NoError(st, err)
		assert.NotZero(st, created.ID)
		assert.Equal(st, newReg.GuildID, created.GuildID)
		assert.Equal(st, newReg.Command, created.Command)
		assert.Equal(st, newReg.ChannelWhitelist, created.ChannelWhitelist)
		assert.Equal(st, newReg.AlienMessage, created.AlienMessage)

		newReg.ID = created.ID
	})

	t.Run("errors if guild or command is empty", func(st *testing.T) {
		_, err := repo.Create(&registry.Registration{Command: "survival"})

		assert.Error(st, err)

		_, err = repo.Create(&registry.Registration{GuildID: "guild-1"})

		assert.Error(st, err)
	})

	t.Run("rejects a duplicate guild and command pair", func(st *testing.T) {
		_, err := repo.Create(&registry.Registration{
			GuildID: newReg.GuildID,
			Command: newReg.Command,
			IP:      "other.example.com",
		})

		assert.Error(st, err)
	})

	t.Run("gets registration", func(st *testing.T) {
		found, err := repo.Get(newReg.GuildID, newReg.Command)

		assert.NoError(st, err)
		assert.Equal(st, newReg.ID, found.ID)
		assert.Equal(st, newReg.IP, found.IP)
		assert.Equal(st, newReg.Port, found.Port)
		assert.Equal(st, newReg.ChannelWhitelist, found.ChannelWhitelist)
	})

	t.Run("updates registration", func(st *testing.T) {
		newReg.IP = "moved.example.com"
		newReg.ChannelWhitelist = []string{}

		updated, err := repo.Update(newReg)

		assert.NoError(st, err)
		assert.Equal(st, "moved.example.com", updated.IP)
		assert.Empty(st, updated.ChannelWhitelist)
	})

	t.Run("errors updating without an id", func(st *testing.T) {
		_, err := repo.Update(&registry.Registration{
			GuildID: "guild-1",
			Command: "survival",
		})

		assert.Error(st, err)
	})

	t.Run("lists registrations per guild", func(st *testing.T) {
		_, err := repo.Create(&registry.Registration{
			GuildID: "guild-2",
			Command: "creative",
			IP:      "creative.example.com",
		})

		assert.NoError(st, err)

		regs, err := repo.GetAllForGuild("guild-1")

		assert.NoError(st, err)
		assert.Len(st, regs, 1)
		assert.Equal(st, "survival", regs[0].Command)

		all, err := repo.GetAll()

		assert.NoError(st, err)
		assert.Len(st, all, 2)
	})

	t.Run("deletes registration", func(st *testing.T) {
		err := repo.Delete(newReg.GuildID, newReg.Command)

		assert.NoError(st, err)

		_, err = repo.Get(newReg.GuildID, newReg.Command)

		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("errors deleting with empty keys", func(st *testing.T) {
		assert.Error(st, repo.Delete("", "survival"))
		assert.Error(st, repo.Delete("guild-1", ""))
	})
}
