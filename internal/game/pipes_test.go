package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

func newTestPipes(seed int64) (*Pipes, *fakeClock) {
	cfg := config.Default()
	clock := &fakeClock{t: time.Unix(1000, 0)}
	pm := NewPipes(seed, cfg.Pipes, cfg.Surface)
	pm.Reset(clock.t)
	return pm, clock
}

func TestSpawnInterval(t *testing.T) {
	pm, clock := newTestPipes(1)

	// Nothing spawns before the interval elapses.
	clock.Advance(1400 * time.Millisecond)
	pm.MaybeSpawn(clock.Now())
	if len(pm.All()) != 0 {
		t.Fatalf("pipe spawned %dms in, before the interval", 1400)
	}

	clock.Advance(100 * time.Millisecond)
	pm.MaybeSpawn(clock.Now())
	if len(pm.All()) != 1 {
		t.Fatalf("expected one pipe after the interval, got %d", len(pm.All()))
	}

	// The timestamp was updated: the next pipe needs a full interval again.
	clock.Advance(100 * time.Millisecond)
	pm.MaybeSpawn(clock.Now())
	if len(pm.All()) != 1 {
		t.Error("second pipe spawned before a full interval elapsed")
	}

	clock.Advance(1400 * time.Millisecond)
	pm.MaybeSpawn(clock.Now())
	if len(pm.All()) != 2 {
		t.Errorf("expected two pipes, got %d", len(pm.All()))
	}
}

func TestSpawnAtRightEdgeWithBoundedGap(t *testing.T) {
	pm, clock := newTestPipes(7)
	cfg := config.Default()

	minTop := cfg.Pipes.MinSegment
	maxTop := cfg.Surface.Height - cfg.Pipes.Gap - cfg.Pipes.MinSegment

	for i := 0; i < 200; i++ {
		clock.Advance(1500 * time.Millisecond)
		pm.MaybeSpawn(clock.Now())
	}

	pipes := pm.All()
	if len(pipes) != 200 {
		t.Fatalf("expected 200 pipes, got %d", len(pipes))
	}

	for _, p := range pipes {
		if p.X != cfg.Surface.Width {
			t.Fatalf("pipe spawned at x=%v, expected the right edge %v", p.X, cfg.Surface.Width)
		}
		if p.GapTop < minTop || p.GapTop > maxTop {
			t.Fatalf("gap top %v outside [%v, %v]: both segments must keep their minimum height",
				p.GapTop, minTop, maxTop)
		}
		if p.Passed {
			t.Fatal("fresh pipe must not be marked passed")
		}
	}
}

func TestScrollSpeed(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = append(pm.pipes, Pipe{X: 400, GapTop: 200})

	pm.Advance(50)
	if pm.All()[0].X != 397.5 {
		t.Errorf("pipe x after one tick = %v, expected 397.5", pm.All()[0].X)
	}

	pm.Advance(50)
	if pm.All()[0].X != 395 {
		t.Errorf("pipe x after two ticks = %v, expected 395", pm.All()[0].X)
	}
}

func TestPruneOnceFullyOffscreen(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = append(pm.pipes, Pipe{X: 400, GapTop: 200})

	lastX := 400.0
	for i := 0; i < 1000; i++ {
		if len(pm.All()) == 0 {
			break
		}
		lastX = pm.All()[0].X
		pm.Advance(50)
	}

	if len(pm.All()) != 0 {
		t.Fatal("pipe was never pruned")
	}
	// The pipe survives at x > -60 and is removed once x <= -60.
	if lastX-2.5 > -60 {
		t.Errorf("pipe removed too early: last position before removal was %v", lastX)
	}
	if lastX <= -60 {
		t.Errorf("pipe survived at x=%v, should already have been removed", lastX)
	}
}

func TestPassCreditedExactlyOnce(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = append(pm.pipes, Pipe{X: 0, GapTop: 200})

	total := 0
	for i := 0; i < 100 && len(pm.All()) > 0; i++ {
		total += pm.Advance(50)
	}

	if total != 1 {
		t.Errorf("pipe credited %d times, expected exactly once", total)
	}
}

func TestPassRequiresTrailingEdgeCrossing(t *testing.T) {
	pm, _ := newTestPipes(1)

	pm.pipes = append(pm.pipes, Pipe{X: -7, GapTop: 200})
	if passed := pm.Advance(50); passed != 0 {
		// After the tick x = -9.5, right edge 50.5 > 50: not yet passed.
		t.Errorf("pipe credited before its trailing edge crossed the bird, passed=%d", passed)
	}
	if passed := pm.Advance(50); passed != 1 {
		// Now x = -12, right edge 48 < 50: passed.
		t.Errorf("pipe not credited after its trailing edge crossed, passed=%d", passed)
	}
}

func TestPrunePreservesOrder(t *testing.T) {
	pm, _ := newTestPipes(1)
	pm.pipes = append(pm.pipes,
		Pipe{X: -58, GapTop: 100}, // Pruned after one tick
		Pipe{X: 100, GapTop: 200},
		Pipe{X: 250, GapTop: 300},
	)

	pm.Advance(50)

	pipes := pm.All()
	if len(pipes) != 2 {
		t.Fatalf("expected 2 pipes after prune, got %d", len(pipes))
	}
	if pipes[0].GapTop != 200 || pipes[1].GapTop != 300 {
		t.Error("prune must preserve spawn order")
	}
}

func TestResetClearsPipesAndTimer(t *testing.T) {
	pm, clock := newTestPipes(1)
	pm.pipes = append(pm.pipes, Pipe{X: 100, GapTop: 200})

	clock.Advance(10 * time.Second)
	pm.Reset(clock.Now())

	if len(pm.All()) != 0 {
		t.Error("Reset should clear pipes")
	}

	// The spawn timer restarts at the reset time.
	clock.Advance(100 * time.Millisecond)
	pm.MaybeSpawn(clock.Now())
	if len(pm.All()) != 0 {
		t.Error("pipe spawned immediately after reset")
	}
}
