package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/glide/internal/domain/edge"
	"github.com/younwookim/glide/internal/domain/motion"
)

// IntentSource supplies the move intent for the current tick.
// ok is false when nothing is bound yet; callers treat that as a zero intent.
type IntentSource interface {
	Intent() (intent motion.Intent, ok bool)
}

// DashEvents delivers discrete dash presses to subscribers
type DashEvents interface {
	SubscribeDash(fn func()) (unsubscribe func())
}

// KeyReader reports whether a key is held
type KeyReader interface {
	Pressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyBindings maps actions to keys; any bound key triggers the action
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Dash  []ebiten.Key
}

// DefaultBindings returns WASD plus arrow keys, with Space or K to dash
func DefaultBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Dash:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyK},
	}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Dash  bool // dash key held; the press is detected as an edge
}

// Intent converts digital input into a unit move intent
func (s InputState) Intent() motion.Intent {
	var in motion.Intent
	if s.Left {
		in.X--
	}
	if s.Right {
		in.X++
	}
	if s.Up {
		in.Y++
	}
	if s.Down {
		in.Y--
	}
	return in
}

// InputSystem samples input once per frame, exposes it as an IntentSource
// and publishes dash presses.
type InputSystem struct {
	keys     KeyReader
	bindings KeyBindings

	current InputState
	bound   bool
	dash    edge.Detector
	presses Signal
}

// NewInputSystem creates an input system reading the keyboard through ebiten
func NewInputSystem() *InputSystem {
	return NewInputSystemWith(ebitenKeys{}, DefaultBindings())
}

// NewInputSystemWith creates an input system over a custom key reader
func NewInputSystemWith(keys KeyReader, bindings KeyBindings) *InputSystem {
	return &InputSystem{keys: keys, bindings: bindings}
}

// GetInput reads the current key state without publishing anything
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  s.anyPressed(s.bindings.Left),
		Right: s.anyPressed(s.bindings.Right),
		Up:    s.anyPressed(s.bindings.Up),
		Down:  s.anyPressed(s.bindings.Down),
		Dash:  s.anyPressed(s.bindings.Dash),
	}
}

// Poll samples the keys and feeds the result. Call once per tick before the character ticks.
func (s *InputSystem) Poll() InputState {
	state := s.GetInput()
	s.Feed(state)
	return state
}

// Feed makes state the current input, e.g. from a replay.
// A rising dash key publishes one dash press.
func (s *InputSystem) Feed(state InputState) {
	s.current = state
	s.bound = true
	if s.dash.Update(state.Dash) == edge.Rising {
		s.presses.Publish()
	}
}

// Current returns the last fed state
func (s *InputSystem) Current() InputState {
	return s.current
}

// Intent implements IntentSource
func (s *InputSystem) Intent() (motion.Intent, bool) {
	if !s.bound {
		return motion.Intent{}, false
	}
	return s.current.Intent(), true
}

// SubscribeDash implements DashEvents
func (s *InputSystem) SubscribeDash(fn func()) func() {
	return s.presses.Subscribe(fn)
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.Pressed(k) {
			return true
		}
	}
	return false
}

// Signal is an ordered list of callbacks fired together.
// The zero value is ready to use.
type Signal struct {
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func()
}

// Subscribe adds fn and returns a func that removes it
func (h *Signal) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range h.subs {
			if sub.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every subscriber in subscription order
func (h *Signal) Publish() {
	// copy so handlers may unsubscribe while being called
	subs := append([]subscriber(nil), h.subs...)
	for _, sub := range subs {
		sub.fn()
	}
}

// Len returns the number of subscribers
func (h *Signal) Len() int {
	return len(h.subs)
}
