package game

import (
	"strings"
	"testing"
)

func TestSnapshot_ContainsWorldState(t *testing.T) {
	w, _ := testWorld(t, `
#########
#p G   g#
#########`, 1)
	w.Step(InputState{}, 1.0/60.0)
	s := Snapshot(w)

	for _, want := range []string{
		"frame=1",
		"player pos=(1.50,1.50)",
		"health=100",
		"enemy 0 guard/",
		"enemies_alive=1/1",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("snapshot missing %q:\n%s", want, s)
		}
	}
}

func TestSnapshot_ReflectsDeath(t *testing.T) {
	w, _ := testWorld(t, `
#########
#p G   g#
#########`, 1)
	w.Enemies[0].Kill()
	s := Snapshot(w)
	if !strings.Contains(s, "guard/dead") {
		t.Errorf("snapshot missing dead state:\n%s", s)
	}
	if !strings.Contains(s, "enemies_alive=0/1") {
		t.Errorf("snapshot miscounts the living:\n%s", s)
	}
}
