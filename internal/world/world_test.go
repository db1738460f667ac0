package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// newTestWorld создаёт мир из пустых (воздушных) колонн указанного размера
func newTestWorld(sizeInChunks, height int) *WorldManager {
	wm := NewWorldManager(config.WorldConfig{
		Seed:         1,
		SizeInChunks: sizeInChunks,
		Height:       height,
		SeaLevel:     8,
	})
	for cx := 0; cx < sizeInChunks; cx++ {
		for cz := 0; cz < sizeInChunks; cz++ {
			coords := vec.Vec2{X: cx, Z: cz}
			wm.chunks[coords] = NewChunk(coords, height)
		}
	}
	return wm
}

// clearDirty сбрасывает флаги Dirty у всех колонн
func clearDirty(wm *WorldManager) {
	wm.ForEachChunk(func(c *Chunk) { c.Dirty = false })
}

func TestBlockAt_Totality(t *testing.T) {
	// Запросы вне границ и в незагруженных колоннах тотальны: всегда Air
	wm := newTestWorld(1, 16)

	assert.Equal(t, block.Air, wm.BlockAt(vec.Vec3{X: 0, Y: -1, Z: 0}))
	assert.Equal(t, block.Air, wm.BlockAt(vec.Vec3{X: 0, Y: 16, Z: 0}))
	assert.Equal(t, block.Air, wm.BlockAt(vec.Vec3{X: -1, Y: 5, Z: 0}), "колонна с отрицательными координатами не загружена")
	assert.Equal(t, block.Air, wm.BlockAt(vec.Vec3{X: 100, Y: 5, Z: 100}))
}

func TestLightAt_MissingChunkFallback(t *testing.T) {
	// Для незагруженной колонны верхняя половина мира освещена небом
	wm := newTestWorld(1, 16)

	assert.Equal(t, uint8(MaxLightLevel), wm.LightAt(vec.Vec3{X: -10, Y: 8, Z: 0}))
	assert.Equal(t, uint8(MaxLightLevel), wm.LightAt(vec.Vec3{X: -10, Y: 15, Z: 0}))
	assert.Equal(t, uint8(0), wm.LightAt(vec.Vec3{X: -10, Y: 7, Z: 0}))
	assert.Equal(t, uint8(MaxLightLevel), wm.LightAt(vec.Vec3{X: 0, Y: 100, Z: 0}), "выше мира всегда небо")
}

func TestSetBlock_RoundTrip(t *testing.T) {
	wm := newTestWorld(1, 16)

	pos := vec.Vec3{X: 5, Y: 5, Z: 5}
	wm.SetBlock(pos, block.Stone)

	assert.Equal(t, block.Stone, wm.BlockAt(pos))
	assert.True(t, wm.IsSolidAt(pos))
	assert.False(t, wm.IsSolidAt(pos.Up()))
}

func TestSetBlock_IdentityNoOp(t *testing.T) {
	// Запись уже стоящего блока не помечает колонну на перестройку
	wm := newTestWorld(1, 16)
	pos := vec.Vec3{X: 5, Y: 5, Z: 5}
	wm.SetBlock(pos, block.Stone)
	clearDirty(wm)

	wm.SetBlock(pos, block.Stone)

	chunk := wm.GetChunk(vec.Vec2{X: 0, Z: 0})
	assert.False(t, chunk.Dirty, "повторная запись того же блока — no-op")
}

func TestSetBlock_OutsideWorldIsNoOp(t *testing.T) {
	wm := newTestWorld(1, 16)

	// Вне высоты и в отсутствующей колонне ничего не падает
	wm.SetBlock(vec.Vec3{X: 0, Y: -1, Z: 0}, block.Stone)
	wm.SetBlock(vec.Vec3{X: 0, Y: 99, Z: 0}, block.Stone)
	wm.SetBlock(vec.Vec3{X: -5, Y: 5, Z: 0}, block.Stone)

	assert.Equal(t, block.Air, wm.BlockAt(vec.Vec3{X: -5, Y: 5, Z: 0}))
}

func TestSetBlock_BorderMarksNeighborsDirty(t *testing.T) {
	wm := newTestWorld(2, 16)
	clearDirty(wm)

	// Граница по X: локальный x == 15 в колонне (0,0)
	wm.SetBlock(vec.Vec3{X: 15, Y: 5, Z: 5}, block.Stone)
	assert.True(t, wm.GetChunk(vec.Vec2{X: 0, Z: 0}).Dirty)
	assert.True(t, wm.GetChunk(vec.Vec2{X: 1, Z: 0}).Dirty, "сосед по +X должен перестроиться")
	assert.False(t, wm.GetChunk(vec.Vec2{X: 0, Z: 1}).Dirty)

	clearDirty(wm)

	// Граница по Z: локальный z == 0 в колонне (1,1)
	wm.SetBlock(vec.Vec3{X: 20, Y: 5, Z: 16}, block.Stone)
	assert.True(t, wm.GetChunk(vec.Vec2{X: 1, Z: 1}).Dirty)
	assert.True(t, wm.GetChunk(vec.Vec2{X: 1, Z: 0}).Dirty, "сосед по -Z должен перестроиться")
}

func TestSetBlock_BorderWithoutNeighborIsSafe(t *testing.T) {
	// Сосед за границей мира отсутствует — пометка молча пропускается
	wm := newTestWorld(1, 16)

	wm.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.Stone)
	assert.True(t, wm.GetChunk(vec.Vec2{X: 0, Z: 0}).Dirty)
}

func TestGenerateWorld_CountAndDirty(t *testing.T) {
	wm := NewWorldManager(config.WorldConfig{
		Seed: 42, SizeInChunks: 2, Height: 32, SeaLevel: 8,
	})
	wm.GenerateWorld()

	assert.Equal(t, 4, wm.ChunkCount())
	wm.ForEachChunk(func(c *Chunk) {
		assert.True(t, c.Dirty, "свежесгенерированная колонна ждёт первую сборку меша")
	})
}
