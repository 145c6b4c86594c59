package component

import (
	"testing"

	"belsin/internal/ecs"
)

func TestHealCapsAtMax(t *testing.T) {
	cases := []struct {
		hp, max, amount, want int
	}{
		{10, 30, 8, 18},
		{25, 30, 8, 30},
		{30, 30, 1, 30},
		{-3, 30, 8, 5},
	}
	for _, c := range cases {
		got := CombatStats{MaxHP: c.max, HP: c.hp}.Heal(c.amount).HP
		if got != c.want {
			t.Errorf("Heal(%d) from %d/%d = %d; want %d", c.amount, c.hp, c.max, got, c.want)
		}
	}
}

func TestAddDamageAccumulates(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()

	AddDamage(w, id, 3)
	AddDamage(w, id, 4)

	sd := w.Get(id, CSufferDamage).(SufferDamage)
	if len(sd.Amounts) != 2 || sd.Amounts[0] != 3 || sd.Amounts[1] != 4 {
		t.Fatalf("Amounts = %v; want [3 4]", sd.Amounts)
	}
}

func TestNameOfFallback(t *testing.T) {
	w := ecs.NewWorld()
	named := w.CreateEntity()
	w.Add(named, Name{Name: "Orc"})
	anon := w.CreateEntity()

	if got := NameOf(w, named); got != "Orc" {
		t.Errorf("NameOf(named) = %q", got)
	}
	if got := NameOf(w, anon); got != "something" {
		t.Errorf("NameOf(anon) = %q", got)
	}
}
