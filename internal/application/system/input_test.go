package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/glide/internal/domain/motion"
)

// fakeKeys is a KeyReader backed by a set of held keys
type fakeKeys struct {
	held map[ebiten.Key]bool
}

func (f *fakeKeys) Pressed(key ebiten.Key) bool {
	return f.held[key]
}

func (f *fakeKeys) hold(keys ...ebiten.Key) {
	f.held = make(map[ebiten.Key]bool)
	for _, k := range keys {
		f.held[k] = true
	}
}

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	_, ok := sys.Intent()
	assert.False(t, ok, "nothing is bound before the first poll")
}

func TestInputState_Intent(t *testing.T) {
	tests := []struct {
		name  string
		state InputState
		want  motion.Intent
	}{
		{"none", InputState{}, motion.Intent{}},
		{"left", InputState{Left: true}, motion.Intent{X: -1}},
		{"right", InputState{Right: true}, motion.Intent{X: 1}},
		{"both horizontal cancel", InputState{Left: true, Right: true}, motion.Intent{}},
		{"up", InputState{Up: true}, motion.Intent{Y: 1}},
		{"down", InputState{Down: true}, motion.Intent{Y: -1}},
		{"diagonal", InputState{Right: true, Up: true}, motion.Intent{X: 1, Y: 1}},
		{"dash has no intent", InputState{Dash: true}, motion.Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Intent())
		})
	}
}

func TestInputSystem_Poll(t *testing.T) {
	keys := &fakeKeys{}
	sys := NewInputSystemWith(keys, DefaultBindings())

	keys.hold(ebiten.KeyArrowLeft, ebiten.KeyW)
	state := sys.Poll()

	assert.Equal(t, InputState{Left: true, Up: true}, state)
	assert.Equal(t, state, sys.Current())
	intent, ok := sys.Intent()
	assert.True(t, ok)
	assert.Equal(t, motion.Intent{X: -1, Y: 1}, intent)
}

func TestInputSystem_DashPublishesOnPress(t *testing.T) {
	keys := &fakeKeys{}
	sys := NewInputSystemWith(keys, DefaultBindings())
	presses := 0
	sys.SubscribeDash(func() { presses++ })

	frames := [][]ebiten.Key{
		{},
		{ebiten.KeySpace},
		{ebiten.KeySpace}, // held
		{ebiten.KeySpace, ebiten.KeyK},
		{},
		{ebiten.KeyK},
	}
	for _, held := range frames {
		keys.hold(held...)
		sys.Poll()
	}

	assert.Equal(t, 2, presses)
}

func TestInputSystem_Unsubscribe(t *testing.T) {
	sys := NewInputSystemWith(&fakeKeys{}, DefaultBindings())
	var a, b int
	unsubA := sys.SubscribeDash(func() { a++ })
	sys.SubscribeDash(func() { b++ })

	sys.Feed(InputState{Dash: true})
	unsubA()
	unsubA()
	sys.Feed(InputState{})
	sys.Feed(InputState{Dash: true})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestInputSystem_UnsubscribeDuringPublish(t *testing.T) {
	sys := NewInputSystemWith(&fakeKeys{}, DefaultBindings())
	var calls []string
	var unsub func()
	unsub = sys.SubscribeDash(func() {
		calls = append(calls, "first")
		unsub()
	})
	sys.SubscribeDash(func() { calls = append(calls, "second") })

	sys.Feed(InputState{Dash: true})

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Len(t, sys.presses.subs, 1)
}

func TestInputSystem_SubscribeNil(t *testing.T) {
	sys := NewInputSystemWith(&fakeKeys{}, DefaultBindings())

	unsub := sys.SubscribeDash(nil)
	require.NotNil(t, unsub)
	unsub()

	assert.NotPanics(t, func() { sys.Feed(InputState{Dash: true}) })
}
