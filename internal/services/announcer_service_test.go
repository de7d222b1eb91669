package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LiteBots/VelorieMarket/internal/mocks"
)

func TestAnnouncerService_UpdateOnce(t *testing.T) {
	count := int64(42)
	userRepo := &mocks.MockUserRepository{
		CountFunc: func(context.Context) (int64, error) { return count, nil },
	}
	notifier := &mocks.MockNotifier{}
	svc := NewAnnouncerService(userRepo, notifier, discardLogger(), "stats-123", 10*time.Minute)

	if err := svc.UpdateOnce(context.Background()); err != nil {
		t.Fatalf("UpdateOnce() error = %v", err)
	}
	if len(notifier.Renames) != 1 {
		t.Fatalf("renamed %d times, want 1", len(notifier.Renames))
	}
	if got, want := notifier.Renames[0].Content, "🚀〢Registered: 42"; got != want {
		t.Errorf("channel name = %q, want %q", got, want)
	}
	if notifier.Renames[0].Target != "stats-123" {
		t.Errorf("renamed channel %q, want stats-123", notifier.Renames[0].Target)
	}

	// Same count again: no second rename.
	if err := svc.UpdateOnce(context.Background()); err != nil {
		t.Fatalf("UpdateOnce() error = %v", err)
	}
	if len(notifier.Renames) != 1 {
		t.Errorf("renamed %d times after unchanged count, want 1", len(notifier.Renames))
	}

	// Count moved: rename again.
	count = 43
	if err := svc.UpdateOnce(context.Background()); err != nil {
		t.Fatalf("UpdateOnce() error = %v", err)
	}
	if len(notifier.Renames) != 2 {
		t.Fatalf("renamed %d times after count change, want 2", len(notifier.Renames))
	}
	if got, want := notifier.Renames[1].Content, "🚀〢Registered: 43"; got != want {
		t.Errorf("channel name = %q, want %q", got, want)
	}
}

func TestAnnouncerService_UpdateOnceErrors(t *testing.T) {
	t.Run("count failure", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{
			CountFunc: func(context.Context) (int64, error) { return 0, errors.New("db down") },
		}
		notifier := &mocks.MockNotifier{}
		svc := NewAnnouncerService(userRepo, notifier, discardLogger(), "stats-123", 10*time.Minute)

		if err := svc.UpdateOnce(context.Background()); err == nil {
			t.Error("UpdateOnce() error = nil, want count error")
		}
		if len(notifier.Renames) != 0 {
			t.Errorf("renamed %d times, want 0", len(notifier.Renames))
		}
	})

	t.Run("rename failure does not cache the name", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{
			CountFunc: func(context.Context) (int64, error) { return 7, nil },
		}
		fail := true
		notifier := &mocks.MockNotifier{
			RenameChannelFunc: func(context.Context, string, string) error {
				if fail {
					return errors.New("rate limited")
				}
				return nil
			},
		}
		svc := NewAnnouncerService(userRepo, notifier, discardLogger(), "stats-123", 10*time.Minute)

		if err := svc.UpdateOnce(context.Background()); err == nil {
			t.Fatal("UpdateOnce() error = nil, want rename error")
		}

		// A later attempt with the same count must retry the rename.
		fail = false
		if err := svc.UpdateOnce(context.Background()); err != nil {
			t.Fatalf("UpdateOnce() retry error = %v", err)
		}
		if len(notifier.Renames) != 2 {
			t.Errorf("rename attempts = %d, want 2", len(notifier.Renames))
		}
	})
}

func TestAnnouncerService_StartDisabledWithoutChannel(t *testing.T) {
	userRepo := &mocks.MockUserRepository{
		CountFunc: func(context.Context) (int64, error) { return 1, nil },
	}
	notifier := &mocks.MockNotifier{}
	svc := NewAnnouncerService(userRepo, notifier, discardLogger(), "", time.Millisecond)

	// Returns immediately instead of looping.
	done := make(chan struct{})
	go func() {
		svc.Start(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start() did not return for empty channel ID")
	}
	if len(notifier.Renames) != 0 {
		t.Errorf("renamed %d times, want 0", len(notifier.Renames))
	}
}

func TestAnnouncerService_StartStopsOnCancel(t *testing.T) {
	userRepo := &mocks.MockUserRepository{
		CountFunc: func(context.Context) (int64, error) { return 5, nil },
	}
	notifier := &mocks.MockNotifier{}
	svc := NewAnnouncerService(userRepo, notifier, discardLogger(), "stats-123", time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	// The startup update runs before the first tick.
	deadline := time.After(time.Second)
	for notifier.RenameCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("no startup rename within a second")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start() did not stop after cancel")
	}
}
