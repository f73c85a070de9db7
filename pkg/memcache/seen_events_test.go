package mem

import (
	"testing"
	"time"
)

func TestMarkOnce(t *testing.T) {
	store := NewSeenEvents()

	if !store.MarkOnce("evt_1", time.Minute) {
		t.Fatal("first occurrence not reported as new")
	}
	if store.MarkOnce("evt_1", time.Minute) {
		t.Fatal("second occurrence reported as new")
	}
	if !store.MarkOnce("evt_2", time.Minute) {
		t.Fatal("distinct key not reported as new")
	}

	if !store.Seen("evt_1") {
		t.Fatal("marked key not seen")
	}
	if store.Seen("evt_missing") {
		t.Fatal("unknown key reported seen")
	}
}

func TestMarkOnceExpiry(t *testing.T) {
	store := NewSeenEvents()

	// A non-positive ttl expires immediately.
	if !store.MarkOnce("evt_ttl", -time.Second) {
		t.Fatal("first occurrence not reported as new")
	}
	if store.Seen("evt_ttl") {
		t.Fatal("expired key reported seen")
	}
	if !store.MarkOnce("evt_ttl", time.Minute) {
		t.Fatal("expired key not accepted again")
	}
}
