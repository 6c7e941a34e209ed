// Package spatial is the collision world: a grid-bucketed broad phase over
// axis-aligned boxes that reports contact and proximity pairs as
// edge-triggered events.
//
// Positions are box centres in world units. The y axis grows downward, the
// same as the tilemap and the screen.
package spatial

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/solarlune/resolv"
)

// ErrStaleHandle is returned when a handle no longer names a live shape.
var ErrStaleHandle = errors.New("spatial: stale handle")

// Handle names a shape inside an Index. The zero handle is never issued.
type Handle uint64

// QueryType selects what kind of events a shape produces.
type QueryType int

const (
	// Contacts shapes produce Started/Stopped contact events.
	Contacts QueryType = iota
	// Proximity shapes (sensors) produce Began/Ended proximity events.
	Proximity
)

// ContactKind is the edge of a contact event.
type ContactKind int

const (
	Started ContactKind = iota
	Stopped
)

func (k ContactKind) String() string {
	if k == Started {
		return "started"
	}
	return "stopped"
}

// ProximityKind is the edge of a proximity event.
type ProximityKind int

const (
	Began ProximityKind = iota
	Ended
)

// ContactEvent reports that two solid shapes started or stopped overlapping.
// A is always the smaller handle.
type ContactEvent struct {
	A, B Handle
	Kind ContactKind
}

// ProximityEvent reports that a sensor started or stopped overlapping
// another shape. A is always the smaller handle.
type ProximityEvent struct {
	A, B Handle
	Kind ProximityKind
}

// Shape describes a box to insert.
type Shape struct {
	X, Y         float64 // centre
	HalfW, HalfH float64
	Rotation     float64
	Group        int
	Whitelist    []int // nil interacts with every group
	Query        QueryType
}

type shape[T any] struct {
	handle    Handle
	obj       *resolv.Object
	x, y      float64
	halfW     float64
	halfH     float64
	rotation  float64
	group     int
	whitelist []int
	query     QueryType
	aux       T
}

type pair struct{ a, b Handle }

func makePair(a, b Handle) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Index owns every shape in one arena. T is the payload carried next to
// each shape. Index is not safe for concurrent use.
type Index[T any] struct {
	space  *resolv.Space
	width  float64
	height float64
	shapes map[Handle]*shape[T]
	next   Handle

	active map[pair]QueryType

	// queued by Remove, delivered by the next Step
	pendingContacts  []ContactEvent
	pendingProximity []ProximityEvent

	contacts  []ContactEvent
	proximity []ProximityEvent
}

// NewIndex creates an index covering a width x height world split into
// cellSize square buckets. Shapes outside that area are still tracked but
// never collide.
func NewIndex[T any](width, height, cellSize int) *Index[T] {
	if cellSize <= 0 {
		cellSize = 16
	}
	return &Index[T]{
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
		width:  float64(width),
		height: float64(height),
		shapes: map[Handle]*shape[T]{},
		active: map[pair]QueryType{},
	}
}

// Bounds returns the world area covered by the grid.
func (i *Index[T]) Bounds() Box {
	return Box{MaxX: i.width, MaxY: i.height}
}

// Len returns the number of live shapes.
func (i *Index[T]) Len() int {
	return len(i.shapes)
}

// Contains reports whether h names a live shape.
func (i *Index[T]) Contains(h Handle) bool {
	_, ok := i.shapes[h]
	return ok
}

func groupTag(g int) string {
	return "g" + strconv.Itoa(g)
}

// Insert adds a shape carrying aux and returns its handle.
func (i *Index[T]) Insert(s Shape, aux T) Handle {
	i.next++
	sh := &shape[T]{
		handle:   i.next,
		x:        s.X,
		y:        s.Y,
		halfW:    math.Abs(s.HalfW),
		halfH:    math.Abs(s.HalfH),
		rotation: s.Rotation,
		group:    s.Group,
		query:    s.Query,
		aux:      aux,
	}
	if s.Whitelist != nil {
		sh.whitelist = append([]int{}, s.Whitelist...)
	}

	b := sh.box()
	w, h := broadSize(b)
	obj := resolv.NewObject(b.MinX, b.MinY, w, h, groupTag(s.Group))
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = sh
	sh.obj = obj
	i.space.Add(obj)

	i.shapes[sh.handle] = sh
	return sh.handle
}

// SetPosition moves a shape. Overlap changes show up after the next Step.
func (i *Index[T]) SetPosition(h Handle, x, y, rotation float64) error {
	sh, ok := i.shapes[h]
	if !ok {
		return ErrStaleHandle
	}
	sh.x, sh.y, sh.rotation = x, y, rotation
	b := sh.box()
	sh.obj.X, sh.obj.Y = b.MinX, b.MinY
	sh.obj.W, sh.obj.H = broadSize(b)
	sh.obj.Update()
	return nil
}

// Position returns the centre and rotation of a shape.
func (i *Index[T]) Position(h Handle) (x, y, rotation float64, ok bool) {
	sh, ok := i.shapes[h]
	if !ok {
		return 0, 0, 0, false
	}
	return sh.x, sh.y, sh.rotation, true
}

// Box returns the world-space bounding box of a shape.
func (i *Index[T]) Box(h Handle) (Box, bool) {
	sh, ok := i.shapes[h]
	if !ok {
		return Box{}, false
	}
	return sh.box(), true
}

// Group returns the collision group of a shape.
func (i *Index[T]) Group(h Handle) (int, bool) {
	sh, ok := i.shapes[h]
	if !ok {
		return 0, false
	}
	return sh.group, true
}

// Aux returns a pointer to the payload stored with h. The pointer stays
// valid until h is removed.
func (i *Index[T]) Aux(h Handle) (*T, bool) {
	sh, ok := i.shapes[h]
	if !ok {
		return nil, false
	}
	return &sh.aux, true
}

// Remove deletes a shape. Pairs it was part of are reported as stopped or
// ended by the next Step. Removing an unknown handle returns false.
func (i *Index[T]) Remove(h Handle) bool {
	sh, ok := i.shapes[h]
	if !ok {
		return false
	}
	i.space.Remove(sh.obj)
	sh.obj.Data = nil
	delete(i.shapes, h)

	for _, p := range sortedPairs(i.active) {
		if p.a != h && p.b != h {
			continue
		}
		switch i.active[p] {
		case Proximity:
			i.pendingProximity = append(i.pendingProximity, ProximityEvent{A: p.a, B: p.b, Kind: Ended})
		default:
			i.pendingContacts = append(i.pendingContacts, ContactEvent{A: p.a, B: p.b, Kind: Stopped})
		}
		delete(i.active, p)
	}
	return true
}

// Step recomputes overlapping pairs and replaces the event buffers with
// the edges since the previous Step.
func (i *Index[T]) Step() {
	current := map[pair]QueryType{}

	for _, h := range i.sortedHandles() {
		sh := i.shapes[h]
		col := sh.obj.Check(0, 0, sh.filterTags()...)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			other, ok := o.Data.(*shape[T])
			if !ok || other.handle <= sh.handle {
				continue
			}
			if !sh.accepts(other.group) || !other.accepts(sh.group) {
				continue
			}
			if !sh.box().Overlaps(other.box()) {
				continue
			}
			kind := Contacts
			if sh.query == Proximity || other.query == Proximity {
				kind = Proximity
			}
			current[makePair(sh.handle, other.handle)] = kind
		}
	}

	contacts := i.pendingContacts
	proximity := i.pendingProximity
	i.pendingContacts, i.pendingProximity = nil, nil

	for _, p := range sortedPairs(i.active) {
		if _, still := current[p]; still {
			continue
		}
		if i.active[p] == Proximity {
			proximity = append(proximity, ProximityEvent{A: p.a, B: p.b, Kind: Ended})
		} else {
			contacts = append(contacts, ContactEvent{A: p.a, B: p.b, Kind: Stopped})
		}
	}
	for _, p := range sortedPairs(current) {
		if _, was := i.active[p]; was {
			continue
		}
		if current[p] == Proximity {
			proximity = append(proximity, ProximityEvent{A: p.a, B: p.b, Kind: Began})
		} else {
			contacts = append(contacts, ContactEvent{A: p.a, B: p.b, Kind: Started})
		}
	}

	i.active = current
	i.contacts = contacts
	i.proximity = proximity
}

// ContactEvents returns the contact edges produced by the last Step.
func (i *Index[T]) ContactEvents() []ContactEvent {
	return i.contacts
}

// ProximityEvents returns the proximity edges produced by the last Step.
func (i *Index[T]) ProximityEvents() []ProximityEvent {
	return i.proximity
}

// Touching reports whether a and b overlapped at the last Step.
func (i *Index[T]) Touching(a, b Handle) bool {
	_, ok := i.active[makePair(a, b)]
	return ok
}

// Query returns the handles whose boxes strictly overlap b, restricted to
// groups when any are given. Results are sorted.
func (i *Index[T]) Query(b Box, groups ...int) []Handle {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	tags := make([]string, 0, len(groups))
	for _, g := range groups {
		tags = append(tags, groupTag(g))
	}

	pw, ph := broadSize(b)
	area := resolv.NewObject(b.MinX, b.MinY, pw, ph)
	i.space.Add(area)
	defer i.space.Remove(area)

	col := area.Check(0, 0, tags...)
	if col == nil {
		return nil
	}
	var out []Handle
	for _, o := range col.Objects {
		sh, ok := o.Data.(*shape[T])
		if !ok {
			continue
		}
		if sh.box().Overlaps(b) {
			out = append(out, sh.handle)
		}
	}
	sort.Slice(out, func(a, c int) bool { return out[a] < out[c] })
	return out
}

// broadSize is the resolv object size for b. resolv buckets an object by
// X+W-1, which drops the far edge of a box with a fractional extent into
// the previous cell; one extra unit keeps every cell b touches.
func broadSize(b Box) (float64, float64) {
	return b.Width() + 1, b.Height() + 1
}

// Contact returns the separating normal (pointing from a towards b) and
// penetration depth for two overlapping shapes.
func (i *Index[T]) Contact(a, b Handle) (Manifold, bool) {
	sa, okA := i.shapes[a]
	sb, okB := i.shapes[b]
	if !okA || !okB {
		return Manifold{}, false
	}
	return manifold(sa.box(), sb.box())
}

func (i *Index[T]) sortedHandles() []Handle {
	hs := make([]Handle, 0, len(i.shapes))
	for h := range i.shapes {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(a, b int) bool { return hs[a] < hs[b] })
	return hs
}

func sortedPairs(m map[pair]QueryType) []pair {
	ps := make([]pair, 0, len(m))
	for p := range m {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].a != ps[j].a {
			return ps[i].a < ps[j].a
		}
		return ps[i].b < ps[j].b
	})
	return ps
}

func (s *shape[T]) box() Box {
	hw, hh := s.halfW, s.halfH
	if s.rotation != 0 {
		sin, cos := math.Sincos(s.rotation)
		sin, cos = math.Abs(sin), math.Abs(cos)
		hw, hh = cos*s.halfW+sin*s.halfH, sin*s.halfW+cos*s.halfH
	}
	return Box{MinX: s.x - hw, MinY: s.y - hh, MaxX: s.x + hw, MaxY: s.y + hh}
}

func (s *shape[T]) accepts(group int) bool {
	if s.whitelist == nil {
		return true
	}
	for _, g := range s.whitelist {
		if g == group {
			return true
		}
	}
	return false
}

func (s *shape[T]) filterTags() []string {
	if s.whitelist == nil {
		return nil
	}
	if len(s.whitelist) == 0 {
		// an empty whitelist matches nothing; a tag no shape carries keeps
		// the broad phase empty
		return []string{"none"}
	}
	tags := make([]string, len(s.whitelist))
	for k, g := range s.whitelist {
		tags[k] = groupTag(g)
	}
	return tags
}
