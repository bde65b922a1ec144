package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_kafka "github.com/lockerhub/boxhub/internal/kafka/mocks"
)

func TestAuditManager_PublishesFullBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	published := make(chan AuditLogEntry, 4)

	mockProducer := mock_kafka.NewMockProducer(ctrl)
	mockProducer.EXPECT().
		SendMessage(gomock.Any(), "audit-topic", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, value []byte) error {
			var entry AuditLogEntry
			require.NoError(t, json.Unmarshal(value, &entry))
			published <- entry
			return nil
		}).
		Times(2)
	mockProducer.EXPECT().Close().Return(nil)

	manager := NewAuditManager(mockProducer, "audit-topic", zap.NewNop(), 1, 2, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	// Two entries fill one batch; the long timeout never fires.
	manager.LogEntry(AuditLogEntry{Handler: "handleLogEvent", Method: http.MethodPost, Path: "/boxes/BOX-A/events", StatusCode: 201})
	manager.LogEntry(AuditLogEntry{Handler: "handleListBoxes", Method: http.MethodGet, Path: "/boxes", StatusCode: 200})

	handlers := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case entry := <-published:
			handlers[entry.Handler] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for published audit entries")
		}
	}
	assert.True(t, handlers["handleLogEvent"])
	assert.True(t, handlers["handleListBoxes"])

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)
}

func TestAuditManager_TimeoutFlushesPartialBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	published := make(chan struct{}, 1)

	mockProducer := mock_kafka.NewMockProducer(ctrl)
	mockProducer.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte, []byte) error {
			published <- struct{}{}
			return nil
		})
	mockProducer.EXPECT().Close().Return(nil)

	manager := NewAuditManager(mockProducer, "audit-topic", zap.NewNop(), 1, 100, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	manager.LogEntry(AuditLogEntry{Handler: "handleStats", StatusCode: 200})

	select {
	case <-published:
	case <-time.After(5 * time.Second):
		t.Fatal("partial batch was never flushed")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)
}

func TestAuditManager_NeverBlocksWhenSaturated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducer := mock_kafka.NewMockProducer(ctrl)
	mockProducer.EXPECT().Close().Return(nil)

	// Never started: entries pile up in the input channel and overflow
	// must fall through to the logger instead of blocking the caller.
	manager := NewAuditManager(mockProducer, "audit-topic", zap.NewNop(), 1, 1, time.Minute)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			manager.LogEntry(AuditLogEntry{Handler: "handleListBoxes"})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("LogEntry blocked on a saturated pipeline")
	}

	manager.Shutdown(context.Background())
}

func TestAuditManager_ShutdownIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducer := mock_kafka.NewMockProducer(ctrl)
	mockProducer.EXPECT().Close().Return(nil).Times(1)

	manager := NewAuditManager(mockProducer, "audit-topic", zap.NewNop(), 1, 2, time.Minute)
	manager.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.Shutdown(context.Background())
		}()
	}
	wg.Wait()
}
