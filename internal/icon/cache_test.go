package icon_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/icon"
	mock_icon "github.com/craftstat/craftstat/internal/mock/icon"
)

func TestIconCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_icon.NewMockRepo(ctrl)

	cache := icon.NewCache(mockRepo)

	// sha256 of the decoded bytes "icon"
	expectedKey := "c2d4b446a44ce54fab8e01150e24dd24f3d850c7c14dcfe31f6321341dd86874.png"

	t.Run("stores under the content hash of the decoded bytes", func(st *testing.T) {
		mockRepo.EXPECT().Save(&icon.Icon{
			Key:  expectedKey,
			Ext:  "png",
			Data: []byte("icon"),
		}).Return(nil)

		key, err := cache.Store("data:image/png;base64,aWNvbg==")

		assert.NoError(st, err)
		assert.Equal(st, expectedKey, key)
	})

	t.Run("yields the same key for repeated stores", func(st *testing.T) {
		mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

		first, err := cache.Store("data:image/png;base64,aWNvbg==")

		assert.NoError(st, err)

		second, err := cache.Store("data:image/png;base64,aWNvbg==")

		assert.NoError(st, err)
		assert.Equal(st, first, second)
	})

	t.Run("returns malformed icon error without touching the repo", func(st *testing.T) {
		_, err := cache.Store("not-a-data-uri")

		assert.Equal(st, exception.ErrMalformedIcon, err)
	})

	t.Run("propagates repo errors", func(st *testing.T) {
		mockRepo.EXPECT().Save(gomock.Any()).Return(assert.AnError)

		_, err := cache.Store("data:image/png;base64,aWNvbg==")

		assert.Error(st, err)
	})
}
