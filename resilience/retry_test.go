package resilience

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/credseal/errors"
)

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond, Multiplier: 2}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), DefaultPolicy(), func() (string, error) {
		calls++
		return "sealed", nil
	})
	if err != nil || got != "sealed" {
		t.Fatalf("expected sealed, got %q (err %v)", got, err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryRetryableError(t *testing.T) {
	calls := 0
	var retries []int
	p := fastPolicy(3)
	p.OnRetry = func(attempt int, err error, wait time.Duration) { retries = append(retries, attempt) }

	got, err := Retry(context.Background(), p, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.EncryptionFailed("encrypt", stderrors.New("short read"))
		}
		return "sealed", nil
	})
	if err != nil || got != "sealed" {
		t.Fatalf("expected success on third attempt, got %q (err %v)", got, err)
	}
	if len(retries) != 2 || retries[0] != 1 || retries[1] != 2 {
		t.Errorf("unexpected OnRetry attempts %v", retries)
	}
}

func TestRetryExhausted(t *testing.T) {
	calls := 0
	last := errors.EncryptionFailed("encrypt", stderrors.New("short read"))
	_, err := Retry(context.Background(), fastPolicy(4), func() (int, error) {
		calls++
		return 0, last
	})
	if err != last {
		t.Errorf("expected last error, got %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 calls, got %d", calls)
	}
}

func TestRetryNonRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"plain error", stderrors.New("boom")},
		{"validation", errors.Validation("email: is required")},
		{"decrypt failure", errors.EncryptionFailed("decrypt", stderrors.New("bad tag"))},
		{"canceled", context.Canceled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			_, err := Retry(context.Background(), fastPolicy(3), func() (int, error) {
				calls++
				return 0, tc.err
			})
			if err != tc.err {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
			if calls != 1 {
				t.Errorf("expected 1 call, got %d", calls)
			}
		})
	}
}

func TestRetryCustomRetryIf(t *testing.T) {
	calls := 0
	p := fastPolicy(3)
	p.RetryIf = func(error) bool { return true }
	_, _ = Retry(context.Background(), p, func() (int, error) {
		calls++
		return 0, stderrors.New("boom")
	})
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Retry(ctx, fastPolicy(3), func() (int, error) {
		calls++
		return 0, nil
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no calls, got %d", calls)
	}
}

func TestRetryCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 3, InitialBackoff: time.Hour, MaxBackoff: time.Hour, Multiplier: 1}
	p.OnRetry = func(int, error, time.Duration) { cancel() }

	_, err := Retry(ctx, p, func() (int, error) {
		return 0, errors.EncryptionFailed("encrypt", stderrors.New("short read"))
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPolicyBackoff(t *testing.T) {
	p := Policy{InitialBackoff: 10 * time.Millisecond, MaxBackoff: 50 * time.Millisecond, Multiplier: 2}.normalized()

	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond, 50 * time.Millisecond}
	for i, w := range want {
		if got := p.backoff(i + 1); got != w {
			t.Errorf("attempt %d: expected %v, got %v", i+1, w, got)
		}
	}

	p.Jitter = 0.5
	for i := 0; i < 100; i++ {
		if got := p.backoff(1); got < 5*time.Millisecond || got > 15*time.Millisecond {
			t.Fatalf("jittered backoff %v out of range", got)
		}
	}
}

func TestPolicyNormalized(t *testing.T) {
	p := Policy{}.normalized()
	if p.MaxAttempts != 1 || p.Multiplier != 1 || p.RetryIf == nil || p.MaxBackoff < p.InitialBackoff {
		t.Errorf("unexpected normalized policy %+v", p)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(errors.EncryptionFailed("encrypt", nil)) {
		t.Error("encrypt failure should be retryable")
	}
	if IsRetryable(stderrors.New("plain")) {
		t.Error("plain errors should not be retryable")
	}
}
