package trex

import (
	"testing"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

func newTestRunner() Runner {
	cfg := config.DefaultTrexConfig()
	return NewRunner(cfg.Player, cfg.World.GroundY)
}

func TestRunnerStartsGrounded(t *testing.T) {
	r := newTestRunner()

	if !r.Grounded {
		t.Error("runner should start on the ground")
	}
	if r.X != 50 || r.Y != 211 {
		t.Errorf("start position = (%v, %v), expected (50, 211)", r.X, r.Y)
	}
	if r.Bounds() != core.NewBox(56, 217, 32, 37) {
		t.Errorf("Bounds() = %+v, expected inset box (56, 217, 32, 37)", r.Bounds())
	}
}

func TestRunnerJumpArc(t *testing.T) {
	r := newTestRunner()
	r.Jump()

	if r.Grounded {
		t.Fatal("Jump should clear the grounded flag")
	}
	if r.VelocityY != -13.5 {
		t.Fatalf("VelocityY = %v, expected -13.5", r.VelocityY)
	}

	peak := r.Y
	for tick := 1; tick <= 32; tick++ {
		r.Update(1)
		if r.Grounded {
			t.Fatalf("runner landed early at tick %d", tick)
		}
		if r.Y+r.Height >= 258 {
			t.Fatalf("airborne runner at or below ground at tick %d: y=%v", tick, r.Y)
		}
		peak = min(peak, r.Y)
	}

	r.Update(1)
	if !r.Grounded {
		t.Fatal("runner should land on tick 33")
	}
	if r.Y+r.Height != 258 || r.VelocityY != 0 {
		t.Errorf("landing should snap to ground with zero velocity, y=%v vel=%v", r.Y, r.VelocityY)
	}

	// Tallest obstacle hitbox starts at y=206; the jump must clear it.
	if peak+r.Height-4 >= 206 {
		t.Errorf("jump peak %v too low to clear the tallest obstacle", peak)
	}
}

func TestRunnerNoDoubleJump(t *testing.T) {
	r := newTestRunner()

	r.Jump()
	first := r.VelocityY
	r.Jump()
	if r.VelocityY != first {
		t.Errorf("second Jump changed velocity: %v -> %v", first, r.VelocityY)
	}

	r.Update(1)
	before := r.VelocityY
	r.Jump()
	if r.VelocityY != before {
		t.Errorf("mid-air Jump changed velocity: %v -> %v", before, r.VelocityY)
	}
}

func TestRunnerGroundClampWithLargeDelta(t *testing.T) {
	r := newTestRunner()
	r.Jump()

	for i := 0; i < 20; i++ {
		r.Update(3)
		if r.Y+r.Height > 258 {
			t.Fatalf("runner sank below ground: bottom=%v", r.Y+r.Height)
		}
		if r.Grounded != (r.Y+r.Height == 258) {
			t.Fatalf("grounded=%v but bottom=%v", r.Grounded, r.Y+r.Height)
		}
	}
	if !r.Grounded {
		t.Error("runner should have landed")
	}
}

func TestRunnerStride(t *testing.T) {
	r := newTestRunner()

	r.animate(4, 1) // 4 * 0.25 * 1 = 1 stride
	if r.LegPhase() != 1 {
		t.Errorf("LegPhase() = %d, expected 1", r.LegPhase())
	}

	r.Jump()
	stride := r.Stride
	r.animate(10, 6)
	if r.Stride != stride {
		t.Error("legs should not animate in the air")
	}

	r.Reset()
	if r.Stride != 0 || !r.Grounded || r.VelocityY != 0 {
		t.Errorf("Reset should restore the start pose, got %+v", r)
	}
}
