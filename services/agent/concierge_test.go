package agent

import (
	"context"
	"strings"
	"testing"
)

func TestConciergePitchesSkiDestinations(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()

	resp := svc.ProcessMessage(context.Background(), "Where should we go skiing?", session)

	if !strings.HasPrefix(resp.Text, "For skiing, I'd recommend Lake Tahoe") {
		t.Fatalf("text = %q, want the ski pitch", resp.Text)
	}
	if !strings.HasSuffix(resp.Text, "Which one sounds good to you?") {
		t.Fatalf("text = %q, want the follow-up question appended", resp.Text)
	}
	want := []string{"Lake Tahoe", "Mammoth", "Big Bear", "Show me more options"}
	if len(resp.QuickReplies) != len(want) {
		t.Fatalf("chips = %v, want %v", resp.QuickReplies, want)
	}
	for i, chip := range want {
		if resp.QuickReplies[i] != chip {
			t.Fatalf("chips = %v, want %v", resp.QuickReplies, want)
		}
	}
	if len(resp.Needed) != 1 || resp.Needed[0] != "destination" {
		t.Errorf("needed = %v, want [destination]", resp.Needed)
	}
	if session.Context.Slots.Activity != "ski" {
		t.Errorf("activity = %q, want the vibe remembered", session.Context.Slots.Activity)
	}

	// Picking a chip drops straight into the normal slot flow.
	resp = svc.ProcessMessage(context.Background(), "Lake Tahoe", session)
	if resp.Text != "When are you thinking for Lake Tahoe?" {
		t.Fatalf("follow-up = %q, want the dates question", resp.Text)
	}
}

func TestConciergeWithoutVibeOffersMenu(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()

	resp := svc.ProcessMessage(context.Background(), "Where should I go?", session)

	if !strings.HasPrefix(resp.Text, "Great question! What vibe are you going for?") {
		t.Fatalf("text = %q, want the vibe menu", resp.Text)
	}
	want := []string{"Skiing", "Beach", "Wine", "Hiking", "City", "Relaxing"}
	if len(resp.QuickReplies) != len(want) {
		t.Fatalf("chips = %v, want %v", resp.QuickReplies, want)
	}
	if len(resp.Needed) != 1 || resp.Needed[0] != "activity" {
		t.Errorf("needed = %v, want [activity]", resp.Needed)
	}

	// Tapping a vibe routes through activity extraction into destination
	// suggestions capped at six chips.
	resp = svc.ProcessMessage(context.Background(), "Beach", session)
	if resp.Text != "Perfect! Where would you like to go?" {
		t.Fatalf("follow-up = %q, want the destination question", resp.Text)
	}
	wantChips := []string{"San Diego", "Santa Cruz", "Malibu", "Monterey", "Santa Barbara", "Somewhere else"}
	if len(resp.QuickReplies) != len(wantChips) {
		t.Fatalf("chips = %v, want %v", resp.QuickReplies, wantChips)
	}
	for i, chip := range wantChips {
		if resp.QuickReplies[i] != chip {
			t.Fatalf("chips = %v, want %v", resp.QuickReplies, wantChips)
		}
	}
}

func TestConciergeChecksSkiBeforeBeach(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()

	resp := svc.ProcessMessage(context.Background(), "Recommend somewhere with snow near the coast", session)

	if !strings.HasPrefix(resp.Text, "For skiing, I'd recommend") {
		t.Fatalf("text = %q, want ski to win over beach", resp.Text)
	}
}

func TestQuestionNamingAPlaceSkipsConcierge(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()

	resp := svc.ProcessMessage(context.Background(), "Where should we stay in Tahoe?", session)

	if session.Context.Slots.Destination != "Lake Tahoe" {
		t.Fatalf("destination = %q, want Lake Tahoe extracted", session.Context.Slots.Destination)
	}
	if resp.Text != "When are you thinking for Lake Tahoe?" {
		t.Fatalf("text = %q, want the dates question", resp.Text)
	}
}
