package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/duskhall/duskhall/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	level    string

	framesRun    int
	victoryFrame int
	defeated     bool
	healthLeft   int
	damageTaken  int

	enemiesSlain  int
	stateChanges  int
	chaseEntered  int
	attackEntered int
	enemyTravel   float64
	minApproach   float64

	renderFrames int
	renderTotal  time.Duration
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var levelIdx int
	var renderW, renderH int
	var bench bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs per level")
	flag.IntVar(&frames, "frames", 7200, "frames per run (60 = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&levelIdx, "level", -1, "level index to run (-1 = all)")
	flag.IntVar(&renderW, "render-width", 640, "benchmark render width")
	flag.IntVar(&renderH, "render-height", 400, "benchmark render height")
	flag.BoolVar(&bench, "bench", true, "include software render benchmark")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	levels := game.BuiltinLevels()
	if levelIdx >= len(levels) {
		fmt.Printf("error: -level out of range (have %d levels)\n", len(levels))
		return
	}

	fmt.Printf("=== Headless Exploration Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	var all []runStats
	for li, lvl := range levels {
		if levelIdx >= 0 && li != levelIdx {
			continue
		}
		for i := 0; i < runs; i++ {
			seed := seedBase + int64(i)*seedStep
			stats := runExplorer(i+1, seed, lvl, frames, bench, renderW, renderH)
			all = append(all, stats)
			printRun(stats)
		}
	}
	printAggregate(all)
}

// runExplorer drives the player with a wall-avoiding bot: push
// forward, turn away when the wall ahead gets close. The bot is not
// trying to win; it exists to move the player through enemy territory
// so behavior transitions and combat fire deterministically.
func runExplorer(runIndex int, seed int64, lvl *game.Level, frames int, bench bool, rw, rh int) runStats {
	h, err := game.NewHarness(
		game.WithLevel(lvl),
		game.WithSeed(seed),
	)
	if err != nil {
		panic(err)
	}
	w := h.World

	prevState := make(map[int]game.BehaviorState)
	prevPos := make(map[int]game.Vec)
	for i := range w.Enemies {
		prevState[w.Enemies[i].ID] = w.Enemies[i].State
		prevPos[w.Enemies[i].ID] = w.Enemies[i].Pos
	}

	stats := runStats{
		runIndex:     runIndex,
		seed:         seed,
		level:        lvl.Name,
		victoryFrame: -1,
		minApproach:  math.Inf(1),
	}

	startHealth := w.Player.Health
	turnBias := 1.0
	if seed%2 == 0 {
		turnBias = -1.0
	}

	for f := 0; f < frames; f++ {
		var in game.InputState
		ahead := game.CastRay(w.Grid, w.Player.Pos, w.Player.Angle)
		if ahead.Hit && ahead.Dist < 1.0 {
			in.LookDelta = turnBias * 0.06
		} else {
			in.Move.Y = 1
		}
		in.AttackPressed = true

		w.Step(in, h.DT)
		stats.framesRun++

		for _, e := range w.Enemies {
			if e.State != prevState[e.ID] {
				stats.stateChanges++
				if e.Behavior == game.BehaviorChase && e.State == game.StateWalking {
					stats.chaseEntered++
				}
				if e.State == game.StateAttacking {
					stats.attackEntered++
				}
				prevState[e.ID] = e.State
			}
			stats.enemyTravel += e.Pos.Dist(prevPos[e.ID])
			prevPos[e.ID] = e.Pos
			if e.Alive() {
				if d := e.Pos.Dist(w.Player.Pos); d < stats.minApproach {
					stats.minApproach = d
				}
			}
		}

		if w.Victory {
			stats.victoryFrame = w.Frame
			break
		}
		if w.Defeated {
			stats.defeated = true
			break
		}
	}

	stats.healthLeft = w.Player.Health
	stats.damageTaken = startHealth - w.Player.Health
	for i := range w.Enemies {
		if !w.Enemies[i].Alive() {
			stats.enemiesSlain++
		}
	}

	if bench {
		r := game.NewRenderer(rw, rh, game.NewTextureStore())
		const benchFrames = 120
		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			r.RenderFrame(w)
		}
		stats.renderFrames = benchFrames
		stats.renderTotal = time.Since(start)
	}
	return stats
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d level=%q seed=%d ---\n", rs.runIndex, rs.level, rs.seed)
	outcome := "timeout"
	if rs.victoryFrame >= 0 {
		outcome = fmt.Sprintf("victory@%d", rs.victoryFrame)
	} else if rs.defeated {
		outcome = fmt.Sprintf("defeated@%d", rs.framesRun)
	}
	fmt.Printf("outcome: %s frames=%d health=%d damage_taken=%d\n",
		outcome, rs.framesRun, rs.healthLeft, rs.damageTaken)
	fmt.Printf("enemies: slain=%d state_changes=%d chase_walks=%d attacks=%d travel=%.1f min_approach=%.2f\n",
		rs.enemiesSlain, rs.stateChanges, rs.chaseEntered, rs.attackEntered, rs.enemyTravel, rs.minApproach)
	if rs.renderFrames > 0 {
		perFrame := rs.renderTotal / time.Duration(rs.renderFrames)
		fmt.Printf("render_bench: %d frames in %v (%.1f fps equiv)\n",
			rs.renderFrames, rs.renderTotal.Round(time.Millisecond), float64(time.Second)/float64(perFrame))
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	victories := 0
	defeats := 0
	totalDamage := 0
	totalSlain := 0
	totalChanges := 0
	for _, rs := range all {
		if rs.victoryFrame >= 0 {
			victories++
		}
		if rs.defeated {
			defeats++
		}
		totalDamage += rs.damageTaken
		totalSlain += rs.enemiesSlain
		totalChanges += rs.stateChanges
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("victories=%d defeats=%d timeouts=%d\n", victories, defeats, len(all)-victories-defeats)
	fmt.Printf("avg_damage_taken=%.1f avg_slain=%.1f avg_state_changes=%.1f\n",
		float64(totalDamage)/n, float64(totalSlain)/n, float64(totalChanges)/n)
}
