package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/mediashelf/pkg/config"
	"github.com/ghuser/mediashelf/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func newTestBus(t *testing.T) *EventBus {
	t.Helper()
	bus := NewEventBus(&config.Config{EventBufferSize: 8}, logger.Discard())
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, logger.Discard())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, logger.Discard())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestPublishSubscribe_DeliversPayloadAndTrace verifies a published message reaches
// the subscriber with the publisher's trace restored.
func TestPublishSubscribe_DeliversPayloadAndTrace(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type delivery struct {
		payload string
		traceID trace.TraceID
	}
	got := make(chan delivery, 1)
	errCh, err := bus.Subscribe(ctx, "media.test", func(ctx context.Context, msg *message.Message) error {
		got <- delivery{
			payload: string(msg.Payload),
			traceID: trace.SpanFromContext(ctx).SpanContext().TraceID(),
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	pubCtx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	if err := bus.Publish(pubCtx, "media.test", message.NewMessage("1", []byte("catan"))); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case d := <-got:
		if d.payload != "catan" {
			t.Errorf("payload: got %q", d.payload)
		}
		if d.traceID != span.SpanContext().TraceID() {
			t.Errorf("trace ID mismatch: want %s, got %s", span.SpanContext().TraceID(), d.traceID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

// TestClose_RejectsFurtherUse verifies Publish and Ping fail after Close, and
// that closing twice is harmless.
func TestClose_RejectsFurtherUse(t *testing.T) {
	bus := NewEventBus(&config.Config{}, logger.Discard())

	if err := bus.Ping(context.Background()); err != nil {
		t.Fatalf("ping before close: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := bus.Ping(context.Background()); !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed from Ping, got %v", err)
	}
	err := bus.Publish(context.Background(), "media.test", message.NewMessage("1", nil))
	if !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed from Publish, got %v", err)
	}
}
