package identity_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/identity"
	"github.com/craftstat/craftstat/internal/test_util"
)

func TestIdentitySqliteRepo(t *testing.T) {
	testDBFile := "identity.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, identity.Identity{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := identity.NewSqliteRepo(db)

	t.Run("FindByUsername returns record not found error", func(st *testing.T) {
		_, err := repo.FindByUsername("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("FindByDiscordID returns record not found error", func(st *testing.T) {
		_, err := repo.FindByDiscordID("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("creates identity mapping", func(st *testing.T) {
		created, err := repo.Create(&identity.Identity{
			DiscordID: "1111",
			Username:  "Alice",
		})

		assert.NoError(st, err)
		assert.NotZero(st, created.ID)

		byName, err := repo.FindByUsername("Alice")

		assert.NoError(st, err)
		assert.Equal(st, "1111", byName.DiscordID)

		byID, err := repo.FindByDiscordID("1111")

		assert.NoError(st, err)
		assert.Equal(st, "Alice", byID.Username)
	})

	t.Run("errors on empty fields", func(st *testing.T) {
		_, err := repo.Create(&identity.Identity{Username: "Bob"})

		assert.Error(st, err)

		_, err = repo.Create(&identity.Identity{DiscordID: "2222"})

		assert.Error(st, err)
	})

	t.Run("rejects a duplicate username", func(st *testing.T) {
		_, err := repo.Create(&identity.Identity{
			DiscordID: "3333",
			Username:  "Alice",
		})

		assert.Error(st, err)
	})

	t.Run("lists identities", func(st *testing.T) {
		idents, err := repo.GetAll()

		assert.NoError(st, err)
		assert.Len(st, idents, 1)
	})

	t.Run("deletes identity mapping", func(st *testing.T) {
		err := repo.Delete("Alice")

		assert.NoError(st, err)

		_, err = repo.FindByUsername("Alice")

		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("errors deleting an empty username", func(st *testing.T) {
		assert.Error(st, repo.Delete(""))
	})
}
