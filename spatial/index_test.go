package spatial

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

const (
	gPlayer = 1
	gEnemy  = 2
	gBullet = 3
	gWall   = 4
)

func newTestIndex() *Index[string] {
	return NewIndex[string](320, 240, 16)
}

func box(x, y float64, group int, whitelist []int) Shape {
	return Shape{X: x, Y: y, HalfW: 4, HalfH: 4, Group: group, Whitelist: whitelist}
}

func TestContactStartedOnceAndStoppedOnce(t *testing.T) {
	idx := newTestIndex()
	a := idx.Insert(box(50, 50, gBullet, []int{gEnemy}), "bullet")
	b := idx.Insert(box(100, 50, gEnemy, nil), "enemy")

	idx.Step()
	if n := len(idx.ContactEvents()); n != 0 {
		t.Fatalf("expected no events while apart, got %d", n)
	}

	if err := idx.SetPosition(a, 98, 50, 0); err != nil {
		t.Fatal(err)
	}
	idx.Step()
	evs := idx.ContactEvents()
	if len(evs) != 1 || evs[0].Kind != Started || evs[0].A != a || evs[0].B != b {
		t.Fatalf("expected one started event, got %+v", evs)
	}

	// still overlapping: no repeat
	for k := 0; k < 3; k++ {
		idx.Step()
		if n := len(idx.ContactEvents()); n != 0 {
			t.Fatalf("step %d: expected no repeated events, got %d", k, n)
		}
	}

	_ = idx.SetPosition(a, 10, 10, 0)
	idx.Step()
	evs = idx.ContactEvents()
	if len(evs) != 1 || evs[0].Kind != Stopped {
		t.Fatalf("expected one stopped event, got %+v", evs)
	}
}

func TestWhitelistIsSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Shape
		wantPair bool
	}{
		{"both permissive", box(50, 50, gPlayer, nil), box(52, 50, gEnemy, nil), true},
		{"one side excludes", box(50, 50, gBullet, []int{gWall}), box(52, 50, gEnemy, nil), false},
		{"other side excludes", box(50, 50, gEnemy, nil), box(52, 50, gBullet, []int{gWall}), false},
		{"both accept", box(50, 50, gBullet, []int{gEnemy}), box(52, 50, gEnemy, []int{gBullet}), true},
		{"empty whitelist", box(50, 50, gBullet, []int{}), box(52, 50, gEnemy, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := newTestIndex()
			a := idx.Insert(tt.a, "a")
			b := idx.Insert(tt.b, "b")
			idx.Step()
			if got := idx.Touching(a, b); got != tt.wantPair {
				t.Fatalf("Touching = %v, want %v", got, tt.wantPair)
			}
		})
	}
}

func TestSensorReportsProximity(t *testing.T) {
	idx := newTestIndex()
	zone := idx.Insert(Shape{X: 100, Y: 100, HalfW: 40, HalfH: 40, Query: Proximity, Whitelist: []int{gPlayer}}, "zone")
	p := idx.Insert(box(100, 100, gPlayer, nil), "player")
	idx.Insert(box(110, 100, gEnemy, nil), "enemy")

	idx.Step()
	prox := idx.ProximityEvents()
	if len(prox) != 1 || prox[0].Kind != Began || prox[0].A != zone || prox[0].B != p {
		t.Fatalf("unexpected proximity events %+v", prox)
	}
	for _, ev := range idx.ContactEvents() {
		if ev.A == zone || ev.B == zone {
			t.Fatalf("sensor produced contact event %+v", ev)
		}
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	idx := newTestIndex()
	a := idx.Insert(box(50, 50, gPlayer, nil), "a")
	b := idx.Insert(box(58, 50, gEnemy, nil), "b")
	idx.Step()
	if idx.Touching(a, b) {
		t.Fatal("edge-touching boxes reported as overlapping")
	}
	ba, _ := idx.Box(a)
	bb, _ := idx.Box(b)
	if !ba.Intersects(bb) {
		t.Fatal("inclusive intersect should accept shared edges")
	}
}

func TestRemoveIsIdempotentAndReportsStop(t *testing.T) {
	idx := newTestIndex()
	a := idx.Insert(box(50, 50, gPlayer, nil), "a")
	b := idx.Insert(box(52, 50, gEnemy, nil), "b")
	idx.Step()

	if !idx.Remove(b) {
		t.Fatal("first remove should succeed")
	}
	if idx.Remove(b) {
		t.Fatal("second remove should be a no-op")
	}
	if _, ok := idx.Aux(b); ok {
		t.Fatal("aux still reachable after remove")
	}

	idx.Step()
	evs := idx.ContactEvents()
	if len(evs) != 1 || evs[0].Kind != Stopped || evs[0].A != a || evs[0].B != b {
		t.Fatalf("expected stopped event for removed shape, got %+v", evs)
	}
}

func TestStaleHandle(t *testing.T) {
	idx := newTestIndex()
	h := idx.Insert(box(50, 50, gPlayer, nil), "a")
	idx.Remove(h)
	if err := idx.SetPosition(h, 1, 1, 0); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("SetPosition on removed handle: %v", err)
	}
}

func TestAuxIsMutableInPlace(t *testing.T) {
	idx := newTestIndex()
	h := idx.Insert(box(50, 50, gPlayer, nil), "unbound")
	aux, _ := idx.Aux(h)
	*aux = "bound"
	got, _ := idx.Aux(h)
	if *got != "bound" {
		t.Fatalf("aux = %q", *got)
	}
}

func TestRotationGrowsBoundingBox(t *testing.T) {
	idx := newTestIndex()
	h := idx.Insert(Shape{X: 100, Y: 100, HalfW: 10, HalfH: 2}, "bar")
	_ = idx.SetPosition(h, 100, 100, 1.5707963267948966)
	b, _ := idx.Box(h)
	if b.Width() > 4.001 || b.Height() < 19.999 {
		t.Fatalf("quarter turn should swap extents, got %+v", b)
	}
}

func TestQueryFiltersGroups(t *testing.T) {
	idx := newTestIndex()
	wall := idx.Insert(Shape{X: 100, Y: 100, HalfW: 8, HalfH: 8, Group: gWall}, "wall")
	idx.Insert(Shape{X: 100, Y: 100, HalfW: 8, HalfH: 8, Group: gEnemy}, "enemy")

	got := idx.Query(BoxAround(100, 100, 2, 2), gWall)
	if len(got) != 1 || got[0] != wall {
		t.Fatalf("Query = %v", got)
	}
	if all := idx.Query(BoxAround(100, 100, 2, 2)); len(all) != 2 {
		t.Fatalf("unfiltered Query = %v", all)
	}
}

func TestContactManifold(t *testing.T) {
	idx := newTestIndex()
	a := idx.Insert(box(50, 50, 0, nil), "a")
	b := idx.Insert(box(56, 51, 0, nil), "b")
	m, ok := idx.Contact(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if m.Normal.X != 1 || m.Normal.Y != 0 || m.Depth != 2 {
		t.Fatalf("manifold = %+v", m)
	}
	m, _ = idx.Contact(b, a)
	if m.Normal.X != -1 {
		t.Fatalf("reversed manifold = %+v", m)
	}
}

// Random walks with fractional positions and sizes: every pair is reported
// started exactly when it begins to overlap and stopped exactly when it
// ends, matching a brute-force overlap check.
func TestEdgeTriggeringMatchesBruteForce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := newTestIndex()
		n := rapid.IntRange(2, 6).Draw(t, "shapes")
		handles := make([]Handle, n)
		for k := range handles {
			handles[k] = idx.Insert(Shape{
				X:     rapid.Float64Range(12, 110).Draw(t, "x"),
				Y:     rapid.Float64Range(12, 110).Draw(t, "y"),
				HalfW: rapid.Float64Range(0.25, 10).Draw(t, "halfW"),
				HalfH: rapid.Float64Range(0.25, 10).Draw(t, "halfH"),
				Group: k % 3,
			}, "")
		}
		idx.Step()
		prev := map[pair]bool{}
		for _, ev := range idx.ContactEvents() {
			prev[makePair(ev.A, ev.B)] = true
		}

		steps := rapid.IntRange(1, 15).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			for _, h := range handles {
				x := rapid.Float64Range(12, 110).Draw(t, "x")
				y := rapid.Float64Range(12, 110).Draw(t, "y")
				if err := idx.SetPosition(h, x, y, 0); err != nil {
					t.Fatal(err)
				}
			}
			idx.Step()

			want := map[pair]bool{}
			for i := 0; i < len(handles); i++ {
				for j := i + 1; j < len(handles); j++ {
					bi, _ := idx.Box(handles[i])
					bj, _ := idx.Box(handles[j])
					if bi.Overlaps(bj) {
						want[makePair(handles[i], handles[j])] = true
					}
				}
			}

			seen := map[pair]int{}
			for _, ev := range idx.ContactEvents() {
				p := makePair(ev.A, ev.B)
				seen[p]++
				switch ev.Kind {
				case Started:
					if prev[p] || !want[p] {
						t.Fatalf("spurious start for %v", p)
					}
				case Stopped:
					if !prev[p] || want[p] {
						t.Fatalf("spurious stop for %v", p)
					}
				}
			}
			for p, c := range seen {
				if c > 1 {
					t.Fatalf("pair %v reported %d times in one step", p, c)
				}
			}
			for p := range want {
				if !prev[p] && seen[p] == 0 {
					t.Fatalf("missing start for %v", p)
				}
			}
			for p := range prev {
				if !want[p] && seen[p] == 0 {
					t.Fatalf("missing stop for %v", p)
				}
			}
			prev = want
		}
	})
}

func TestSubUnitOverlapAcrossCellBoundary(t *testing.T) {
	idx := newTestIndex()
	// a spans [8.25, 16.25], b spans [16, 24]: a's far edge sits in the
	// cell after the one a's integer extent reaches
	a := idx.Insert(box(12.25, 20, gPlayer, nil), "a")
	b := idx.Insert(box(20, 20, gEnemy, nil), "b")
	idx.Step()
	evs := idx.ContactEvents()
	if len(evs) != 1 || evs[0].Kind != Started {
		t.Fatalf("expected one started event, got %+v", evs)
	}
	if !idx.Touching(a, b) {
		t.Fatal("pair not touching")
	}
}

func TestShrinkingOverlapStaysInContact(t *testing.T) {
	idx := newTestIndex()
	a := idx.Insert(box(10, 20, gPlayer, nil), "a") // [6, 14]
	b := idx.Insert(box(20, 20, gEnemy, nil), "b")  // [16, 24]

	var started, stopped int
	// overlap 2.0, 0.5, 2.0
	for _, x := range []float64{14, 12.5, 14} {
		if err := idx.SetPosition(a, x, 20, 0); err != nil {
			t.Fatal(err)
		}
		idx.Step()
		for _, ev := range idx.ContactEvents() {
			switch ev.Kind {
			case Started:
				started++
			case Stopped:
				stopped++
			}
		}
		if !idx.Touching(a, b) {
			t.Fatalf("x=%v: pair not touching", x)
		}
	}
	if started != 1 || stopped != 0 {
		t.Fatalf("started=%d stopped=%d, want 1 and 0", started, stopped)
	}
}

func TestQuerySubUnitOverlapOnAlignedWall(t *testing.T) {
	idx := newTestIndex()
	wall := idx.Insert(Shape{X: 40, Y: 40, HalfW: 8, HalfH: 8, Group: gWall}, "wall") // [32, 48]
	got := idx.Query(Box{MinX: 24.5, MinY: 36, MaxX: 32.25, MaxY: 44}, gWall)
	if len(got) != 1 || got[0] != wall {
		t.Fatalf("Query = %v, want [%v]", got, wall)
	}
}
