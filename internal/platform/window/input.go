package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/math-catcher/internal/core"
)

// KeyState reports the keyboard for the current frame.
type KeyState interface {
	// Held reports whether k is down this frame.
	Held(k ebiten.Key) bool
	// JustPressed reports whether k went down this frame.
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Held(k ebiten.Key) bool        { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// binding maps keys to an action. Toggle actions fire once per key press,
// movement fires every frame the key is held.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	toggle bool
}

var bindings = []binding{
	{action: core.ActionLeft, keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{action: core.ActionRight, keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{action: core.ActionPause, keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, toggle: true},
	{action: core.ActionQuit, keys: []ebiten.Key{ebiten.KeyQ}, toggle: true},
}

// readInput sets every action whose keys are active on frame.
func readInput(ks KeyState, frame *core.InputFrame) {
	for _, b := range bindings {
		for _, k := range b.keys {
			active := ks.Held(k)
			if b.toggle {
				active = ks.JustPressed(k)
			}
			if active {
				frame.Set(b.action)
				break
			}
		}
	}
}
