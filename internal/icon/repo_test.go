package icon_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/icon"
	"github.com/craftstat/craftstat/internal/test_util"
)

func TestIconSqliteRepo(t *testing.T) {
	testDBFile := "icon.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, icon.Icon{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := icon.NewSqliteRepo(db)

	cached := &icon.Icon{
		Key:  "deadbeef.png",
		Ext:  "png",
		Data: []byte("icon"),
	}

	t.Run("Find returns record not found error", func(st *testing.T) {
		_, err := repo.Find("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("saves icon", func(st *testing.T) {
		err := repo.Save(cached)

		assert.NoError(st, err)

		found, err := repo.Find(cached.Key)

		assert.NoError(st, err)
		assert.Equal(st, cached.Key, found.Key)
		assert.Equal(st, cached.Ext, found.Ext)
		assert.Equal(st, cached.Data, found.Data)
	})

	t.Run("saving an existing key is a no-op", func(st *testing.T) {
		err := repo.Save(&icon.Icon{
			Key:  cached.Key,
			Ext:  "png",
			Data: []byte("icon"),
		})

		assert.NoError(st, err)

		var count int64

		db.Model(&icon.Icon{}).Count(&count)

		assert.Equal(st, int64(1), count)
	})

	t.Run("errors on an empty key", func(st *testing.T) {
		err := repo.Save(&icon.Icon{Data: []byte("icon")})

		assert.Error(st, err)
	})
}
