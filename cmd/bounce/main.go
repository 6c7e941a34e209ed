// Command bounce runs a headless ball in a walled box and logs what the
// spatial index reports: bounces off the walls and entering or leaving the
// four corner areas.
package main

import (
	"flag"
	"fmt"
	"os"

	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/shared/logging"
	"github.com/automoto/thief-arena/spatial"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

const (
	groupBall = 1
	groupWall = 2

	boxW = 320
	boxH = 240
)

type box struct {
	idx    *spatial.Index[string]
	ball   spatial.Handle
	pos    dmath.Vec2
	vel    dmath.Vec2
	bounce int
}

func newBox(pos, vel dmath.Vec2) *box {
	b := &box{idx: spatial.NewIndex[string](boxW, boxH, 16), pos: pos, vel: vel}

	walls := []struct {
		name         string
		x, y, hw, hh float64
	}{
		{"top", boxW / 2, 4, boxW / 2, 4},
		{"bottom", boxW / 2, boxH - 4, boxW / 2, 4},
		{"left", 4, boxH / 2, 4, boxH / 2},
		{"right", boxW - 4, boxH / 2, 4, boxH / 2},
	}
	for _, w := range walls {
		b.idx.Insert(spatial.Shape{X: w.x, Y: w.y, HalfW: w.hw, HalfH: w.hh, Group: groupWall, Whitelist: []int{groupBall}}, w.name)
	}

	areas := []struct {
		name string
		x, y float64
	}{
		{"north-west", 60, 50},
		{"north-east", boxW - 60, 50},
		{"south-west", 60, boxH - 50},
		{"south-east", boxW - 60, boxH - 50},
	}
	for _, a := range areas {
		b.idx.Insert(spatial.Shape{
			X: a.x, Y: a.y, HalfW: 30, HalfH: 24,
			Whitelist: []int{groupBall},
			Query:     spatial.Proximity,
		}, a.name)
	}

	b.ball = b.idx.Insert(spatial.Shape{X: pos.X, Y: pos.Y, HalfW: 4, HalfH: 4, Group: groupBall}, "ball")
	return b
}

func (b *box) name(h spatial.Handle) string {
	if n, ok := b.idx.Aux(h); ok {
		return *n
	}
	return "?"
}

func (b *box) other(a, c spatial.Handle) spatial.Handle {
	if a == b.ball {
		return c
	}
	return a
}

// step moves the ball and reacts to the events of the new positions. Only
// the first started contact of a step bounces the ball.
func (b *box) step(dt float64) {
	b.pos = b.pos.Add(b.vel.MulScalar(dt))
	if err := b.idx.SetPosition(b.ball, b.pos.X, b.pos.Y, 0); err != nil {
		zap.L().Error("ball lost", zap.Error(err))
		return
	}
	b.idx.Step()

	for _, ev := range b.idx.ContactEvents() {
		if ev.Kind != spatial.Started || (ev.A != b.ball && ev.B != b.ball) {
			continue
		}
		wall := b.other(ev.A, ev.B)
		m, ok := b.idx.Contact(b.ball, wall)
		if !ok {
			continue
		}
		b.vel = reflect(b.vel, m.Normal)
		b.bounce++
		zap.L().Info("bounce",
			zap.String("wall", b.name(wall)),
			zap.Float64("vx", b.vel.X),
			zap.Float64("vy", b.vel.Y))
		break
	}

	for _, ev := range b.idx.ProximityEvents() {
		area := b.name(b.other(ev.A, ev.B))
		if ev.Kind == spatial.Began {
			zap.L().Info("ball entered", zap.String("area", area))
		} else {
			zap.L().Info("ball left", zap.String("area", area))
		}
	}
}

// reflect mirrors v around the unit normal n.
func reflect(v, n dmath.Vec2) dmath.Vec2 {
	return v.Sub(n.MulScalar(2 * v.Dot(&n)))
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate")
	tps := flag.Int("tps", 60, "ticks per second")
	vx := flag.Float64("vx", 90, "initial x velocity")
	vy := flag.Float64("vy", 65, "initial y velocity")
	flag.Parse()

	cfg.Logging.Level = "info"
	flush, err := logging.Install(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	b := newBox(dmath.Vec2{X: boxW / 2, Y: boxH / 2}, dmath.Vec2{X: *vx, Y: *vy})
	dt := 1 / float64(*tps)
	for i := 0; i < *steps; i++ {
		b.step(dt)
	}
	zap.L().Info("done", zap.Int("steps", *steps), zap.Int("bounces", b.bounce))
}
