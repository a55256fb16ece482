package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/glide/internal/domain/entity"
)

// recordingCaster answers with a fixed result and keeps the last query
type recordingCaster struct {
	hit      bool
	calls    int
	origin   entity.Vec2
	size     entity.Vec2
	dir      entity.Vec2
	distance float64
	mask     entity.LayerMask
}

func (c *recordingCaster) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	c.calls++
	c.origin, c.size, c.dir, c.distance, c.mask = origin, size, dir, distance, mask
	return c.hit
}

func createTestProbe() Probe {
	return Probe{WidthFactor: 0.9, Thickness: 0.1, Distance: 0.05, Mask: entity.LayerGround}
}

func TestProbe_Box(t *testing.T) {
	bounds := entity.Bounds{Min: entity.Vec2{X: 10, Y: 20}, Size: entity.Vec2{X: 12, Y: 24}}

	origin, size := createTestProbe().Box(bounds)

	assert.Equal(t, entity.Vec2{X: 16, Y: 44}, origin)
	assert.InDelta(t, 10.8, size.X, 1e-9)
	assert.InDelta(t, 0.1, size.Y, 1e-9)

	t.Run("negative factors collapse to zero", func(t *testing.T) {
		_, size := Probe{WidthFactor: -1, Thickness: -2}.Box(bounds)
		assert.Equal(t, entity.Vec2{}, size)
	})
}

func TestProbe_Grounded(t *testing.T) {
	bounds := entity.Bounds{Min: entity.Vec2{X: 0, Y: 0}, Size: entity.Vec2{X: 10, Y: 10}}

	t.Run("forwards the cast", func(t *testing.T) {
		c := &recordingCaster{hit: true}

		assert.True(t, createTestProbe().Grounded(bounds, c))
		assert.Equal(t, 1, c.calls)
		assert.Equal(t, Down, c.dir)
		assert.Equal(t, 0.05, c.distance)
		assert.Equal(t, entity.LayerGround, c.mask)
		assert.Equal(t, entity.Vec2{X: 5, Y: 10}, c.origin)
	})

	t.Run("miss is not grounded", func(t *testing.T) {
		assert.False(t, createTestProbe().Grounded(bounds, &recordingCaster{}))
	})

	t.Run("unbound caster is not grounded", func(t *testing.T) {
		assert.False(t, createTestProbe().Grounded(bounds, nil))
	})

	t.Run("empty mask never queries", func(t *testing.T) {
		c := &recordingCaster{hit: true}
		p := createTestProbe()
		p.Mask = entity.LayerNone

		assert.False(t, p.Grounded(bounds, c))
		assert.Equal(t, 0, c.calls)
	})

	t.Run("negative distance is clamped", func(t *testing.T) {
		c := &recordingCaster{}
		p := createTestProbe()
		p.Distance = -3

		p.Grounded(bounds, c)
		assert.Equal(t, 0.0, c.distance)
	})
}

func TestSwept(t *testing.T) {
	tests := []struct {
		name     string
		dir      entity.Vec2
		distance float64
		wantMin  entity.Vec2
		wantSize entity.Vec2
	}{
		{"down", Down, 3, entity.Vec2{X: 8, Y: 9}, entity.Vec2{X: 4, Y: 5}},
		{"up", entity.Vec2{Y: -1}, 3, entity.Vec2{X: 8, Y: 6}, entity.Vec2{X: 4, Y: 5}},
		{"no distance", Down, 0, entity.Vec2{X: 8, Y: 9}, entity.Vec2{X: 4, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Swept(entity.Vec2{X: 10, Y: 10}, entity.Vec2{X: 4, Y: 2}, tt.dir, tt.distance)
			assert.Equal(t, tt.wantMin, b.Min)
			assert.Equal(t, tt.wantSize, b.Size)
		})
	}
}
