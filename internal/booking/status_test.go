package booking

import "testing"

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"unconfirmed", "checked-in", "checked-out"} {
		if got, err := ParseStatus(s); err != nil || string(got) != s {
			t.Fatalf("expected %q to parse, got %q, %v", s, got, err)
		}
	}
	if _, err := ParseStatus("checked in"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusUnconfirmed, StatusCheckedIn) {
		t.Fatalf("expected unconfirmed -> checked-in")
	}
	if !CanTransition(StatusCheckedIn, StatusCheckedOut) {
		t.Fatalf("expected checked-in -> checked-out")
	}
	if CanTransition(StatusUnconfirmed, StatusCheckedOut) {
		t.Fatalf("unconfirmed must not skip to checked-out")
	}
	if CanTransition(StatusCheckedOut, StatusCheckedIn) {
		t.Fatalf("checked-out is terminal")
	}
	if CanTransition(Status("bogus"), StatusCheckedIn) {
		t.Fatalf("unknown status must not transition")
	}
}
