package entity

// Kind tags the closed set of entity variants
type Kind uint8

const (
	KindRoad Kind = iota
	KindObstacle
	KindBomb
	KindProjectile
	KindCar
	KindExplosion
)

var kindNames = [...]string{
	KindRoad:       "road",
	KindObstacle:   "obstacle",
	KindBomb:       "bomb",
	KindProjectile: "projectile",
	KindCar:        "car",
	KindExplosion:  "explosion",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// DescentRule selects how the car answers a go-down action
type DescentRule uint8

const (
	// DescentNone ignores go-down
	DescentNone DescentRule = iota
	// DescentGraduated lowers the ascent level by one per go-down
	DescentGraduated
)

// ParseDescentRule resolves a config value, false if unknown
func ParseDescentRule(s string) (DescentRule, bool) {
	switch s {
	case "", "none":
		return DescentNone, true
	case "graduated":
		return DescentGraduated, true
	default:
		return DescentNone, false
	}
}

func (r DescentRule) String() string {
	if r == DescentGraduated {
		return "graduated"
	}
	return "none"
}
