package status_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/craftstat/craftstat/internal/exception"
	mock_status "github.com/craftstat/craftstat/internal/mock/status"
	"github.com/craftstat/craftstat/internal/probe"
	"github.com/craftstat/craftstat/internal/status"
	"github.com/craftstat/craftstat/internal/target"
)

// motd handling is exercised through the reconciler since the helpers
// are implementation details of the merge
func TestMotdHandling(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockIcons := mock_status.NewMockIconStore(ctrl)
	mockResolver := mock_status.NewMockIdentityResolver(ctrl)

	mockResolver.EXPECT().
		Resolve(gomock.Any()).
		Return("", exception.ErrRecordNotFound).
		AnyTimes()

	reconciler := status.NewReconciler(mockIcons, mockResolver)

	testTarget := target.Parse("play.example.com", 0)

	reconcileMotd := func(description any) string {
		rec := reconciler.Reconcile(
			testTarget,
			probe.PingOutcome{
				State:   probe.StateSuccess,
				Payload: &probe.PingPayload{Description: description},
			},
			probe.QueryOutcome{State: probe.StateFailed},
		)

		return rec.Motd
	}

	t.Run("strips formatting codes", func(st *testing.T) {
		assert.Equal(st, "Hello World", reconcileMotd("§aHello §lWorld"))
	})

	t.Run("stripping is idempotent", func(st *testing.T) {
		once := reconcileMotd("§aHello §lWorld")

		assert.Equal(st, once, reconcileMotd(once))
	})

	t.Run("unwraps a structured description", func(st *testing.T) {
		assert.Equal(st, "Welcome", reconcileMotd(map[string]any{"text": "§bWelcome"}))
	})

	t.Run("drops an absent description", func(st *testing.T) {
		assert.Equal(st, "", reconcileMotd(nil))
	})

	t.Run("falls back to the query hostname", func(st *testing.T) {
		rec := reconciler.Reconcile(
			testTarget,
			probe.PingOutcome{State: probe.StateFailed},
			probe.QueryOutcome{
				State:   probe.StateSuccess,
				Payload: &probe.QueryPayload{Hostname: "§6My Server"},
			},
		)

		assert.Equal(st, "My Server", rec.Motd)
	})
}
