package toast

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_utils "github.com/unicsmcr/hs_dashboard/mocks/utils"
	"github.com/unicsmcr/hs_dashboard/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2019, time.October, 1, 12, 0, 0, 0, time.UTC)

func Test_Notifier__should_return_same_notifier_for_same_key(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockTimeProvider.EXPECT().Now().Return(testNow).AnyTimes()

	hub := NewHub(zap.NewNop(), mockTimeProvider)

	first := hub.Notifier("visitor")
	assert.True(t, first == hub.Notifier("visitor"))
	assert.False(t, first == hub.Notifier("other visitor"))
	assert.Equal(t, 2, hub.Len())
}

func Test_Prune__should_remove_only_idle_notifiers_without_listeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	hub := NewHub(zap.NewNop(), mockTimeProvider)

	gomock.InOrder(
		mockTimeProvider.EXPECT().Now().Return(testNow).Times(2),
		mockTimeProvider.EXPECT().Now().Return(testNow.Add(10*time.Minute)).Times(1),
		mockTimeProvider.EXPECT().Now().Return(testNow.Add(31*time.Minute)).Times(1),
	)

	hub.Notifier("idle")
	listened := hub.Notifier("listened")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listened.Listen(ctx)
	hub.Notifier("recent")

	assert.Equal(t, 1, hub.Prune(30*time.Minute))
	assert.Equal(t, 2, hub.Len())
}

func Test_RunPruner__should_stop_when_context_is_done(t *testing.T) {
	hub := NewHub(zap.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		hub.RunPruner(ctx, time.Hour, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(testWait):
		t.Fatal("pruner did not stop")
	}
}

func Test_RunPruner__should_log_pruned_and_remaining_notifiers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	hub := NewHub(zap.New(core), utils.NewTimeProvider())
	hub.Notifier("idle")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.RunPruner(ctx, 10*time.Millisecond, -time.Nanosecond)

	deadline := time.After(testWait)
	for logs.FilterMessage("pruned idle toast notifiers").Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("pruner did not log")
		case <-time.After(5 * time.Millisecond):
		}
	}

	fields := logs.FilterMessage("pruned idle toast notifiers").All()[0].ContextMap()
	assert.Equal(t, int64(1), fields["count"])
	assert.Equal(t, int64(0), fields["remaining"])
	assert.Equal(t, 0, hub.Len())
}
