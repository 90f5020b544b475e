package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Snapshot renders a one-screen text report of the current world
// state: player pose and timers, then one line per enemy. Meant for
// pasting into a bug report.
func Snapshot(w *World) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- duskhall frame report ---\n")
	fmt.Fprintf(&b, "frame=%d victory=%v defeated=%v enemies_alive=%d/%d\n",
		w.Frame, w.Victory, w.Defeated, w.AliveEnemies(), len(w.Enemies))
	p := w.Player
	fmt.Fprintf(&b, "player pos=(%.2f,%.2f) angle=%.3f health=%d cooldown=%.2f hurt=%.2f\n",
		p.Pos.X, p.Pos.Y, p.Angle, p.Health, p.AttackCooldown, p.HurtTimer)
	fmt.Fprintf(&b, "goal=(%.1f,%.1f) dist=%.2f\n", w.Goal.X, w.Goal.Y, p.Pos.Dist(w.Goal))

	for _, e := range w.Enemies {
		fmt.Fprintf(&b, "enemy %d %s/%s pos=(%.2f,%.2f) hp=%d dist=%.2f\n",
			e.ID, e.Behavior, e.State, e.Pos.X, e.Pos.Y, e.Health, p.Pos.Dist(e.Pos))
	}
	return b.String()
}

// CopySnapshot puts the frame report on the system clipboard.
func CopySnapshot(w *World) error {
	if err := clipboard.WriteAll(Snapshot(w)); err != nil {
		return fmt.Errorf("copy frame report: %w", err)
	}
	return nil
}
