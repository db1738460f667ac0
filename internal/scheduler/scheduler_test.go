package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// nopUploader считает выгрузки, имитируя GPU-загрузчик
type nopUploader struct {
	uploads int
	coords  []vec.Vec2
}

func (u *nopUploader) Upload(chunk *world.Chunk) {
	u.uploads++
	u.coords = append(u.coords, chunk.Coords)
}

// newLitWorld создаёт маленький сгенерированный мир без фоновых очередей
func newLitWorld(t *testing.T) *world.WorldManager {
	t.Helper()
	wm := world.NewWorldManager(config.WorldConfig{
		Seed: 99, SizeInChunks: 2, Height: 32, SeaLevel: 8,
	})
	wm.GenerateWorld()
	wm.Lights().Flush()
	return wm
}

// drainAll крутит Dispatch/DrainReady до полной выгрузки всех колонн
func drainAll(t *testing.T, s *Scheduler, up *nopUploader, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for up.uploads < want {
		if time.Now().After(deadline) {
			t.Fatalf("выгружено %d колонн из %d", up.uploads, want)
		}
		s.Dispatch()
		s.DrainReady(up)
		time.Sleep(time.Millisecond)
	}
}

func TestScheduler_BuildsAllDirtyChunks(t *testing.T) {
	wm := newLitWorld(t)
	s := NewScheduler(wm, 2, nil)
	defer s.Stop()

	up := &nopUploader{}
	drainAll(t, s, up, 4)

	assert.Equal(t, 4, up.uploads)
	wm.ForEachChunk(func(c *world.Chunk) {
		assert.False(t, c.Dirty, "колонна %v выгружена и чиста", c.Coords)
		assert.False(t, c.Building)
		assert.Nil(t, c.OpaqueMesh, "буферы освобождаются при выгрузке")
	})
}

func TestScheduler_AtMostOneBuildInFlight(t *testing.T) {
	// Повторный Dispatch до съёма готового меша не порождает вторую сборку
	wm := newLitWorld(t)
	s := NewScheduler(wm, 1, nil)
	defer s.Stop()

	first := s.Dispatch()
	assert.Equal(t, 4, first, "все грязные колонны уходят в очередь")

	again := s.Dispatch()
	assert.Equal(t, 0, again, "колонны в сборке не отправляются повторно")
}

func TestScheduler_EditRetriggersRebuild(t *testing.T) {
	wm := newLitWorld(t)
	s := NewScheduler(wm, 2, nil)
	defer s.Stop()

	up := &nopUploader{}
	drainAll(t, s, up, 4)

	// Правка в колонне (0,0) пачкает её; пересчёт света может задеть
	// и соседние колонны
	pos := vec.Vec3{X: 5, Y: 30, Z: 5}
	replacement := block.Stone
	if wm.BlockAt(pos) == block.Stone {
		replacement = block.Dirt
	}
	wm.SetBlock(pos, replacement)

	assert.True(t, wm.GetChunk(vec.Vec2{X: 0, Z: 0}).Dirty)

	dirty := 0
	wm.ForEachChunk(func(c *world.Chunk) {
		if c.Dirty {
			dirty++
		}
	})
	drainAll(t, s, up, 4+dirty)
	assert.Equal(t, 4+dirty, up.uploads)
}

func TestScheduler_StopJoinsWorkers(t *testing.T) {
	wm := newLitWorld(t)
	s := NewScheduler(wm, 4, nil)
	s.Dispatch()

	// Stop дожидается воркеров; оставшиеся готовые меши доступны после
	s.Stop()

	up := &nopUploader{}
	s.DrainReady(up)
	assert.Equal(t, 4, up.uploads)
}
