package shooter

// ProjectileKind tags the projectile variants
type ProjectileKind int

const (
	KindNone     ProjectileKind = iota // Contact damage, no projectile involved
	KindStraight                       // Direction driven shot from the player or a shooter enemy
	KindDiagonal                       // Player side shot with explicit velocity
	KindBounce                         // Player shot that reflects off the side and top walls
	KindBossShot                       // Boss point projectile, removed after one hit
	KindBeam                           // Boss area sweep with a lifetime in ticks
)

// String returns the kind name used in logs and metrics labels
func (k ProjectileKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStraight:
		return "straight"
	case KindDiagonal:
		return "diagonal"
	case KindBounce:
		return "bounce"
	case KindBossShot:
		return "boss_shot"
	case KindBeam:
		return "beam"
	default:
		return "unknown"
	}
}

// WeaponConfig holds the fixed properties of each projectile kind
type WeaponConfig struct {
	Kind   ProjectileKind
	Width  float64
	Height float64
	Speed  float64 // Per-tick speed, or the velocity multiplier for diagonal shots
	Damage float64 // Damage dealt to whatever the projectile hits
	Color  string

	MaxBounces int // Bounce shots only
	Lifetime   int // Beams only, in ticks
}

// GetWeaponConfig returns configuration for a projectile kind
func GetWeaponConfig(kind ProjectileKind) WeaponConfig {
	switch kind {
	case KindStraight:
		return WeaponConfig{
			Kind:   KindStraight,
			Width:  4,
			Height: 10,
			Speed:  8,
			Damage: 10,
			Color:  "#ffff00",
		}
	case KindDiagonal:
		return WeaponConfig{
			Kind:   KindDiagonal,
			Width:  3,
			Height: 6,
			Speed:  8,
			Damage: 10,
			Color:  "#ff00ff",
		}
	case KindBounce:
		return WeaponConfig{
			Kind:       KindBounce,
			Width:      4,
			Height:     8,
			Speed:      8,
			Damage:     10,
			Color:      "#00ffff",
			MaxBounces: 3,
		}
	case KindBossShot:
		return WeaponConfig{
			Kind:   KindBossShot,
			Width:  4,
			Height: 10,
			Speed:  8,
			Damage: 15,
			Color:  "#ff0000",
		}
	case KindBeam:
		return WeaponConfig{
			Kind:     KindBeam,
			Width:    8,
			Damage:   20,
			Color:    "#ff00ff",
			Lifetime: 60,
		}
	default:
		return GetWeaponConfig(KindStraight)
	}
}
