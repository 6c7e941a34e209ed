package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/fonts"
	"github.com/automoto/thief-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	colorGround = color.RGBA{R: 60, G: 56, B: 52, A: 255}
	colorWall   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	colorProp   = color.RGBA{R: 140, G: 100, B: 60, A: 255}
	colorPlayer = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	colorEnemy  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorBoss   = color.RGBA{R: 170, G: 40, B: 200, A: 255}
)

// drawCentered draws s centred horizontally with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}

func fillBox(screen *ebiten.Image, cx, cy, halfW, halfH float64, c color.Color) {
	vector.FillRect(screen, float32(cx-halfW), float32(cy-halfH), float32(halfW*2), float32(halfH*2), c, false)
}

// drawCollidersOf fills the bounding box of every tagged entity.
func drawCollidersOf(e *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], c color.Color) {
	idx := components.SpaceOf(e.World)
	if idx == nil {
		return
	}
	tag.Each(e.World, func(entry *donburi.Entry) {
		b, ok := idx.Box(components.Collider.Get(entry).Handle)
		if !ok {
			return
		}
		vector.FillRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), c, false)
	})
}

func drawArena(e *ecs.ECS, screen *ebiten.Image) {
	drawCollidersOf(e, screen, tags.Walkable, colorGround)
	drawCollidersOf(e, screen, tags.Wall, colorWall)

	tags.Prop.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		fillBox(screen, t.Position.X, t.Position.Y, t.Scale.X/2, t.Scale.Y/2, colorProp)
	})
}

func drawActors(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		c := components.Collider.Get(entry)
		clr := colorEnemy
		if entry.HasComponent(tags.Boss) {
			clr = colorBoss
		}
		fillBox(screen, t.Position.X, t.Position.Y, c.HalfW, c.HalfH, clr)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		c := components.Collider.Get(entry)
		fillBox(screen, t.Position.X, t.Position.Y, c.HalfW*t.Scale.X, c.HalfH*t.Scale.Y, colorPlayer)
	})

	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		c := components.Collider.Get(entry)
		clr := cfg.Yellow
		if components.Bullet.Get(entry).FiredBy == components.KindEnemy {
			clr = cfg.Red
		}
		fillBox(screen, t.Position.X, t.Position.Y, c.HalfW, c.HalfH, clr)
	})
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	if p, ok := tags.Player.First(e.World); ok {
		h := components.Health.Get(p)
		text.Draw(screen, fmt.Sprintf("HP %d/%d", max(h.Current, 0), h.Max), face, 24, 36, cfg.White)
	}
	if s := components.SessionOf(e.World); s != nil {
		text.Draw(screen, fmt.Sprintf("Kills %d", s.Kills), face, 24, 52, cfg.White)
	}
	if we, ok := components.Waves.First(e.World); ok {
		waves := components.Waves.Get(we)
		label := "Arena clear"
		if waves.Status == components.WavesRunning {
			label = fmt.Sprintf("Wave %d/%d", waves.Current+1, len(waves.Waves))
		}
		w := font.MeasureString(face, label).Ceil()
		text.Draw(screen, label, face, screen.Bounds().Dx()-24-w, 36, cfg.White)
	}
}

// dialogLine returns the line of the open dialog, or "" when none is open.
func dialogLine(w donburi.World) string {
	entry, ok := components.Dialog.First(w)
	if !ok {
		return ""
	}
	return components.Dialog.Get(entry).Line()
}

// drawColliders outlines every shape in the spatial index.
func drawColliders(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	idx := components.SpaceOf(e.World)
	if idx == nil {
		return
	}
	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		h := components.Collider.Get(entry).Handle
		b, ok := idx.Box(h)
		if !ok {
			return
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if info, ok := collider.Lookup(idx, h); ok {
			switch info.Kind {
			case components.KindWall:
				c = color.RGBA{100, 100, 100, 255}
			case components.KindPlayer:
				c = color.RGBA{0, 0, 255, 255}
			case components.KindEnemy:
				c = color.RGBA{255, 0, 0, 255}
			case components.KindBullet:
				c = color.RGBA{0, 255, 0, 255}
			}
		}
		vector.StrokeRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), 1, c, false)
	})
}
