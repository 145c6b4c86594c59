package gamelog

import "testing"

func TestRecentReturnsNewestLast(t *testing.T) {
	l := New("one")
	l.Add("two")
	l.Addf("n=%d", 3)

	got := l.Recent(2)
	if len(got) != 2 || got[0] != "two" || got[1] != "n=3" {
		t.Fatalf("Recent(2) = %v", got)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d; want 3 (older entries are retained)", l.Len())
	}
}

func TestRecentMoreThanAvailable(t *testing.T) {
	l := New("a")
	if got := l.Recent(10); len(got) != 1 {
		t.Fatalf("Recent(10) = %v", got)
	}
	if got := l.Recent(0); got != nil {
		t.Fatalf("Recent(0) = %v; want nil", got)
	}
}

func TestContainsAndLast(t *testing.T) {
	l := New()
	if l.Last() != "" {
		t.Fatal("Last on empty log should be empty")
	}
	l.Add("Player hits Orc, for 4 hp.")
	if !l.Contains("for 4 hp") {
		t.Error("Contains should find a substring")
	}
	if l.Contains("Goblin") {
		t.Error("Contains should not match absent text")
	}
	if l.Last() != "Player hits Orc, for 4 hp." {
		t.Errorf("Last = %q", l.Last())
	}
}

func TestEntriesIsACopy(t *testing.T) {
	l := New("x")
	e := l.Entries()
	e[0] = "mutated"
	if l.Entries()[0] != "x" {
		t.Fatal("Entries must not expose internal storage")
	}
}
