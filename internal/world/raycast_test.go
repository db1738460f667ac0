package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestRaycast_HitAndAdjacent(t *testing.T) {
	wm := newTestWorld(1, 16)
	wm.SetBlock(vec.Vec3{X: 5, Y: 5, Z: 5}, block.Stone)

	// Луч вдоль +Z из центра ячейки (5,5,0)
	hit, adjacent, ok := wm.Raycast(mgl32.Vec3{5.5, 5.5, 0.5}, mgl32.Vec3{0, 0, 1})

	assert.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 5, Y: 5, Z: 5}, hit)
	assert.Equal(t, vec.Vec3{X: 5, Y: 5, Z: 4}, adjacent, "соседняя ячейка — место установки блока")
}

func TestRaycast_VerticalDown(t *testing.T) {
	wm := newTestWorld(1, 16)
	wm.SetBlock(vec.Vec3{X: 3, Y: 2, Z: 3}, block.Grass)

	hit, adjacent, ok := wm.Raycast(mgl32.Vec3{3.5, 10.5, 3.5}, mgl32.Vec3{0, -1, 0})

	assert.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3, Y: 2, Z: 3}, hit)
	assert.Equal(t, vec.Vec3{X: 3, Y: 3, Z: 3}, adjacent)
}

func TestRaycast_Miss(t *testing.T) {
	wm := newTestWorld(1, 16)

	_, _, ok := wm.Raycast(mgl32.Vec3{5.5, 5.5, 0.5}, mgl32.Vec3{0, 0, 1})
	assert.False(t, ok, "в пустом мире лучу нечего задеть")
}

func TestRaycast_ZeroDirection(t *testing.T) {
	wm := newTestWorld(1, 16)
	wm.SetBlock(vec.Vec3{X: 5, Y: 5, Z: 5}, block.Stone)

	_, _, ok := wm.Raycast(mgl32.Vec3{5.5, 5.5, 0.5}, mgl32.Vec3{})
	assert.False(t, ok)
}

func TestRaycast_WaterIsHit(t *testing.T) {
	// Луч останавливается на любом неатмосферном блоке, включая воду
	wm := newTestWorld(1, 16)
	wm.SetBlock(vec.Vec3{X: 5, Y: 5, Z: 5}, block.Water)

	hit, _, ok := wm.Raycast(mgl32.Vec3{5.5, 5.5, 0.5}, mgl32.Vec3{0, 0, 1})
	assert.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 5, Y: 5, Z: 5}, hit)
}
