package landmark

import (
	"errors"
	"fmt"

	"github.com/gokturkdogan/journey/internal/geom"
)

// ErrDuplicateID indicates two landmarks with the same key in one route.
var ErrDuplicateID = errors.New("landmark: duplicate id")

// Landmark is a fixed waypoint along the route. Position and ordinal
// never change after construction; Visual is an opaque handle owned by
// the presentation layer and never interpreted here.
type Landmark struct {
	ID       string
	Title    string
	Year     int
	Position geom.Vec3
	Ordinal  int
	Visual   any
}

// Registry holds the route's landmarks in chronological order and
// tracks which one, if any, is currently active.
type Registry struct {
	ordered []*Landmark
	byID    map[string]*Landmark

	active   *Landmark
	onChange func(prev, next *Landmark)
}

// NewRegistry builds a registry from an ordered landmark list. The
// slice order defines each landmark's ordinal.
func NewRegistry(landmarks []*Landmark) (*Registry, error) {
	r := &Registry{
		ordered: make([]*Landmark, 0, len(landmarks)),
		byID:    make(map[string]*Landmark, len(landmarks)),
	}
	for i, lm := range landmarks {
		if _, exists := r.byID[lm.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, lm.ID)
		}
		lm.Ordinal = i
		r.ordered = append(r.ordered, lm)
		r.byID[lm.ID] = lm
	}
	return r, nil
}

// Ordered returns the landmarks in traversal order. Callers must not
// mutate the returned slice.
func (r *Registry) Ordered() []*Landmark { return r.ordered }

func (r *Registry) Len() int { return len(r.ordered) }

// ByID returns the landmark with the given key, or nil.
func (r *Registry) ByID(id string) *Landmark { return r.byID[id] }

// NearestWithin returns the landmark closest to p with distance
// strictly below radius. Ties keep the first minimum in registry
// order, so the result is deterministic.
func (r *Registry) NearestWithin(p geom.Vec3, radius float64) *Landmark {
	var best *Landmark
	bestDist := radius
	for _, lm := range r.ordered {
		if d := lm.Position.DistanceTo(p); d < bestDist {
			best = lm
			bestDist = d
		}
	}
	return best
}

// OnActiveChange registers the single active-selection callback,
// invoked with the previous and next active landmark (either may be
// nil) whenever the selection changes.
func (r *Registry) OnActiveChange(fn func(prev, next *Landmark)) {
	r.onChange = fn
}

// Active returns the currently active landmark, or nil.
func (r *Registry) Active() *Landmark { return r.active }

// SetActive marks the landmark with the given key active. Unknown keys
// and re-activating the current landmark are no-ops.
func (r *Registry) SetActive(id string) {
	next := r.byID[id]
	if next == nil || next == r.active {
		return
	}
	prev := r.active
	r.active = next
	if r.onChange != nil {
		r.onChange(prev, next)
	}
}

// ClearActive deactivates the current landmark. Calling it with
// nothing active is a no-op.
func (r *Registry) ClearActive() {
	if r.active == nil {
		return
	}
	prev := r.active
	r.active = nil
	if r.onChange != nil {
		r.onChange(prev, nil)
	}
}
