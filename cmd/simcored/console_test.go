package main

import "testing"

func TestParseAxial(t *testing.T) {
	a, err := parseAxial("3", "-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Q != 3 || a.R != -2 {
		t.Fatalf("expected (3,-2), got %+v", a)
	}
}

func TestParseAxialRejectsNonNumeric(t *testing.T) {
	if _, err := parseAxial("x", "0"); err == nil {
		t.Fatal("expected error for non-numeric q")
	}
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition([]string{"1", "2", "3", "4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Room.Q != 1 || pos.Room.R != 2 || pos.Pos.Q != 3 || pos.Pos.R != 4 {
		t.Fatalf("unexpected position: %+v", pos)
	}
}

func TestParseUserRejectsInvalidUUID(t *testing.T) {
	if _, err := parseUser("not-a-uuid"); err == nil {
		t.Fatal("expected error for invalid uuid")
	}
}

func TestConsoleExecuteUnknownCommandLogsError(t *testing.T) {
	c := newConsole(nil, nil)
	// Must not panic even though cmds is nil: "help"/unknown names never
	// reach c.cmds.
	c.execute("bogus")
}
