package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestPipes() (*PipeManager, config.FlappyConfig) {
	cfg := config.DefaultFlappyConfig()
	return NewPipeManager(cfg.Pipes, cfg.Field), cfg
}

func TestPipeSpawnTiming(t *testing.T) {
	pm, cfg := newTestPipes()
	interval := cfg.Pipes.SpawnInterval

	for step := 1; step <= 4*interval; step++ {
		before := len(pm.Pipes())
		pm.Update(constRand(0.5), cfg.Bird.X)
		spawned := len(pm.Pipes()) > before

		if want := step%interval == 0; spawned != want {
			t.Fatalf("step %d: spawned=%v, want %v", step, spawned, want)
		}
		if pm.Timer() != step%interval {
			t.Fatalf("step %d: timer=%d, want %d", step, pm.Timer(), step%interval)
		}
	}
}

func TestPipePositionAfterSpawn(t *testing.T) {
	pm, cfg := newTestPipes()
	k := cfg.Pipes.SpawnInterval

	for step := 1; step <= k+50; step++ {
		pm.Update(constRand(0.5), cfg.Bird.X)
		if step < k {
			continue
		}
		want := cfg.Field.Width - cfg.Pipes.Speed*float64(step-k+1)
		if got := pm.Pipes()[0].X; got != want {
			t.Fatalf("step %d: x=%v, want %v", step, got, want)
		}
	}
}

func TestPipeGapSampling(t *testing.T) {
	pm, cfg := newTestPipes()
	lo, hi := cfg.Pipes.GapTopRange(cfg.Field)

	tests := []struct {
		r    float64
		want float64
	}{
		{0, lo},
		{0.5, lo + 0.5*(hi-lo)},
		{0.999, lo + 0.999*(hi-lo)},
	}

	for _, tt := range tests {
		pm.spawn(constRand(tt.r))
		got := pm.Pipes()[len(pm.Pipes())-1].GapTop
		if got != tt.want {
			t.Errorf("r=%v: gap top=%v, want %v", tt.r, got, tt.want)
		}
		if got < lo || got >= hi {
			t.Errorf("r=%v: gap top %v outside [%v, %v)", tt.r, got, lo, hi)
		}
	}
}

func TestPipeScoredExactlyOnce(t *testing.T) {
	pm, cfg := newTestPipes()

	// First pipe spawns at step 90 and clears the bird when
	// 400 - 3(t-89) + 60 < 80, i.e. t = 216.
	total := 0
	for step := 1; step <= 300; step++ {
		passed := pm.Update(constRand(0.5), cfg.Bird.X)
		total += passed

		switch {
		case step < 216 && total != 0:
			t.Fatalf("step %d: scored early", step)
		case step == 216 && passed != 1:
			t.Fatalf("step 216: passed=%d, want 1", passed)
		}
	}
	// Second pipe (spawned at 180) clears at 306, outside the loop.
	if total != 1 {
		t.Errorf("total passed = %d, want 1", total)
	}
}

func TestPipeEviction(t *testing.T) {
	pm, cfg := newTestPipes()

	// The first pipe's right edge goes negative at step 243.
	for step := 1; step <= 242; step++ {
		pm.Update(constRand(0.5), cfg.Bird.X)
	}
	if got := pm.Pipes()[0].X; got != -59 {
		t.Fatalf("step 242: first pipe x=%v, want -59", got)
	}

	n := len(pm.Pipes())
	pm.Update(constRand(0.5), cfg.Bird.X)
	if len(pm.Pipes()) != n-1 {
		t.Fatalf("step 243: %d pipes, want %d", len(pm.Pipes()), n-1)
	}
	if got := pm.Pipes()[0].X; got != 208 {
		t.Errorf("step 243: head pipe x=%v, want 208", got)
	}
	for i := 1; i < len(pm.Pipes()); i++ {
		if pm.Pipes()[i].X <= pm.Pipes()[i-1].X {
			t.Errorf("pipes out of order at %d", i)
		}
	}
}
