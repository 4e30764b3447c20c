package session

import (
	"errors"
	"testing"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	sess := store.Create()
	if sess.ID == "" {
		t.Fatalf("session missing id")
	}
	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Fatalf("Get returned %v, %v", got, ok)
	}
	store.Delete(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Fatalf("deleted session still retrievable")
	}
}

func TestSession_BeginGatesConcurrentRuns(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	sess := store.Create()
	sess.Dispatch(ArtifactStaged{Artifact: stagedJSON(t)})

	staged, err := sess.Begin(Entry{ID: "u1", Role: RoleUser, Text: "go"})
	if err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	if len(staged) != 1 {
		t.Fatalf("Begin must return the artifacts staged at submit time")
	}
	if _, err := sess.Begin(Entry{ID: "u2"}); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin while busy: %v", err)
	}

	sess.Dispatch(SubmissionFailed{Entry: Entry{ID: "a1", Role: RoleAssistant, Text: "Error"}})
	if _, err := sess.Begin(Entry{ID: "u3"}); err != nil {
		t.Fatalf("Begin after completion: %v", err)
	}
}

func TestSession_SubscribeReceivesNotifications(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	sess := store.Create()
	ch, cancel := sess.Subscribe()
	defer cancel()

	sess.Dispatch(ViewModeChanged{Mode: ViewCode})
	n := <-ch
	if n.Seq != 1 || n.State.ViewMode != ViewCode {
		t.Fatalf("unexpected notification: %+v", n)
	}

	sess.Dispatch(SessionCleared{})
	n = <-ch
	if n.Seq != 2 || n.State.ViewMode != ViewPreview {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
