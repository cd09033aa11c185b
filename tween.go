package ledgrid

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a drawable's X and Y toward a target position.
// Create one with TweenPosition and call Update(dt) once per host frame;
// the next Display refresh picks the new position up like any other scene
// mutation. Positions are integer pixels, so intermediate values are
// rounded to the nearest pixel.
//
// There is no global animation manager — hosts drive Update themselves.
type TweenGroup struct {
	tx, ty *gween.Tween
	setPos func(x, y int)
	Done   bool
}

// TweenPosition creates a TweenGroup that moves target to (toX, toY) over
// duration seconds using the given easing function. target must be a
// *Group or a *TileSprite.
func TweenPosition(target Drawable, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	var fromX, fromY int
	var setPos func(x, y int)
	switch n := target.(type) {
	case *Group:
		fromX, fromY = n.X, n.Y
		setPos = func(x, y int) { n.X, n.Y = x, y }
	case *TileSprite:
		fromX, fromY = n.X, n.Y
		setPos = func(x, y int) { n.X, n.Y = x, y }
	default:
		panic("ledgrid: tween target must be a *Group or *TileSprite")
	}
	return &TweenGroup{
		tx:     gween.New(float32(fromX), float32(toX), duration, fn),
		ty:     gween.New(float32(fromY), float32(toY), duration, fn),
		setPos: setPos,
	}
}

// Update advances the tween by dt seconds and writes the rounded position
// to the target. Once both axes finish, Done is set and further calls are
// no-ops.
func (tg *TweenGroup) Update(dt float32) {
	if tg.Done {
		return
	}
	x, doneX := tg.tx.Update(dt)
	y, doneY := tg.ty.Update(dt)
	tg.setPos(roundToInt(x), roundToInt(y))
	tg.Done = doneX && doneY
}

func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}
