package sim

// Effect is a power-up kind. EffectNone means nothing is in effect.
type Effect int

const (
	EffectNone Effect = iota
	EffectInvincibility
	EffectFreeze
	EffectSpeedBoost
)

func (e Effect) String() string {
	switch e {
	case EffectInvincibility:
		return "INVINCIBLE"
	case EffectFreeze:
		return "FREEZE"
	case EffectSpeedBoost:
		return "SPEED"
	default:
		return ""
	}
}

const effectDuration = 5.0

// Pickup is one of the four fixed power-up locations. Each can be taken
// at most once per session.
type Pickup struct {
	X, Y     int
	Kind     Effect
	Consumed bool
}

func defaultPickups() []*Pickup {
	return []*Pickup{
		{X: 3, Y: 3, Kind: EffectInvincibility},
		{X: 16, Y: 3, Kind: EffectFreeze},
		{X: 3, Y: 16, Kind: EffectSpeedBoost},
		{X: 16, Y: 16, Kind: EffectInvincibility},
	}
}

// collectPickup activates the pickup at the given cell. There is a
// single effect slot: collecting while another effect runs overwrites
// the kind and restarts the countdown, discarding whatever remained.
func (s *Session) collectPickup(gx, gy int) {
	for _, p := range s.Pickups {
		if p.X != gx || p.Y != gy || p.Consumed {
			continue
		}
		p.Consumed = true
		s.effect = p.Kind
		s.effectLeft = effectDuration
		s.Score += PickupPoints
		if p.Kind == EffectSpeedBoost {
			s.Avatar.Speed = boostedSpeed
		}
		return
	}
}

// tickEffect counts the active effect down and, on expiry, clears the
// slot and puts the avatar back on its base speed. The restore happens
// exactly once because the slot transitions to EffectNone here.
func (s *Session) tickEffect(dt float64) {
	if s.effect == EffectNone {
		return
	}
	s.effectLeft -= dt
	if s.effectLeft <= 0 {
		s.effect = EffectNone
		s.effectLeft = 0
		s.Avatar.Speed = baseAvatarSpeed
	}
}
