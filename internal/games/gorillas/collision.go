package gorillas

import "github.com/vovakirdan/tui-gorillas/internal/core"

// ColliderKind tells the resolver what a collider belongs to.
type ColliderKind int

const (
	KindBrick ColliderKind = iota
	KindGorilla
)

// Collider is the solid box of a brick or gorilla.
type Collider struct {
	Kind   ColliderKind
	Box    core.AABB
	Active bool
	Player core.PlayerID // set for gorillas
	Index  int           // set for bricks, index into World.Bricks
}

// Hit is everything a box touched in one query.
type Hit struct {
	Bricks   []int
	Gorillas []core.PlayerID
}

// Collided reports whether anything was touched.
func (h Hit) Collided() bool {
	return len(h.Bricks) > 0 || len(h.Gorillas) > 0
}

// Gorilla returns the first gorilla touched.
func (h Hit) Gorilla() (core.PlayerID, bool) {
	if len(h.Gorillas) == 0 {
		return 0, false
	}
	return h.Gorillas[0], true
}

// Resolve tests box against every active collider.
func Resolve(box core.AABB, colliders []*Collider) Hit {
	var hit Hit
	for _, c := range colliders {
		if c == nil || !c.Active || !c.Box.Intersects(box) {
			continue
		}
		switch c.Kind {
		case KindBrick:
			hit.Bricks = append(hit.Bricks, c.Index)
		case KindGorilla:
			hit.Gorillas = append(hit.Gorillas, c.Player)
		}
	}
	return hit
}
