package sim

import (
	"testing"

	"mazechase/internal/board"
)

func TestPickupActivatesAndScores(t *testing.T) {
	s := NewSession(1)
	s.Avatar.X, s.Avatar.Y = 3, 3 // invincibility marker
	s.Step(tick)

	if s.ActiveEffect() != EffectInvincibility {
		t.Fatalf("effect = %v, want invincibility", s.ActiveEffect())
	}
	if s.Score != PickupPoints {
		t.Fatalf("score = %d, want %d", s.Score, PickupPoints)
	}
	if s.Board.At(3, 3) != board.CellEmpty {
		t.Fatal("power marker cell not cleared")
	}
	if !s.Pickups[0].Consumed {
		t.Fatal("pickup not marked consumed")
	}
	if s.EffectRemaining() <= 0 {
		t.Fatal("countdown not running")
	}
}

func TestPickupConsumedAtMostOnce(t *testing.T) {
	s := NewSession(1)
	s.Avatar.X, s.Avatar.Y = 3, 3
	s.Step(tick)
	score := s.Score

	// A second collect on the same pickup is a no-op.
	s.collectPickup(3, 3)
	if s.Score != score {
		t.Fatalf("consumed pickup scored again: %d", s.Score)
	}
}

func TestSpeedBoostAppliesAndRestoresOnce(t *testing.T) {
	s := NewSession(1)
	s.Avatar.X, s.Avatar.Y = 3, 16 // speed marker
	s.Step(tick)

	if s.ActiveEffect() != EffectSpeedBoost {
		t.Fatalf("effect = %v, want speed boost", s.ActiveEffect())
	}
	if s.Avatar.Speed != boostedSpeed {
		t.Fatalf("avatar speed = %v, want %v", s.Avatar.Speed, boostedSpeed)
	}

	// Run the countdown out in one large step.
	s.Step(effectDuration)
	if s.ActiveEffect() != EffectNone {
		t.Fatalf("effect = %v after expiry, want none", s.ActiveEffect())
	}
	if s.Avatar.Speed != baseAvatarSpeed {
		t.Fatalf("avatar speed = %v after expiry, want %v", s.Avatar.Speed, baseAvatarSpeed)
	}

	// The restore fires exactly once: later ticks leave speed alone.
	s.Avatar.Speed = 7.5
	s.Step(tick)
	if s.Avatar.Speed != 7.5 {
		t.Fatalf("expired effect restored speed again: %v", s.Avatar.Speed)
	}
}

// Collecting while an effect is active overwrites the slot and discards
// the remaining duration. Surprising but intentional: there is exactly
// one effect slot.
func TestCollectWhileActiveOverwritesSlot(t *testing.T) {
	s := NewSession(1)
	s.Avatar.X, s.Avatar.Y = 3, 16 // speed boost first
	s.Step(tick)
	if s.ActiveEffect() != EffectSpeedBoost {
		t.Fatalf("effect = %v, want speed boost", s.ActiveEffect())
	}

	s.Avatar.X, s.Avatar.Y = 16, 3 // now freeze
	s.Step(tick)
	if s.ActiveEffect() != EffectFreeze {
		t.Fatalf("effect = %v, want freeze", s.ActiveEffect())
	}
	if s.EffectRemaining() <= effectDuration-2*tick {
		t.Fatalf("countdown not restarted: %v left", s.EffectRemaining())
	}
	if s.Score != 2*PickupPoints {
		t.Fatalf("score = %d, want %d", s.Score, 2*PickupPoints)
	}
	// The boost's speed survives until the new countdown expires, then
	// the usual restore applies.
	if s.Avatar.Speed != boostedSpeed {
		t.Fatalf("avatar speed = %v, want boosted", s.Avatar.Speed)
	}
	s.Step(effectDuration)
	if s.Avatar.Speed != baseAvatarSpeed {
		t.Fatalf("avatar speed = %v after expiry, want base", s.Avatar.Speed)
	}
}
