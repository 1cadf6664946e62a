package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("openai") {
		t.Error("expected first request to be allowed")
	}
	if !l.Allow("openai") {
		t.Error("expected second request within burst to be allowed")
	}
	if l.Allow("openai") {
		t.Error("expected third request to be limited")
	}
}

func TestLimiter_ProvidersAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("openai") {
		t.Error("expected openai request to be allowed")
	}
	if !l.Allow("ollama") {
		t.Error("expected ollama bucket to be independent")
	}
	if l.Allow("openai") {
		t.Error("expected second openai request to be limited")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.1, 1) // one request every 10s after the burst

	if err := l.Wait(context.Background(), "openai"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "openai"); err == nil {
		t.Error("expected second wait to fail on context timeout")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetProviderRate("ollama", 100, 10)

	for i := 0; i < 10; i++ {
		if !l.Allow("ollama") {
			t.Fatalf("expected request %d within custom burst to be allowed", i)
		}
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(1, 0)
	if l.defaultBurst != 1 {
		t.Errorf("expected default burst 1, got %d", l.defaultBurst)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 10)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "openai", 15*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("expected at least 15ms delay, got %v", elapsed)
	}
}
