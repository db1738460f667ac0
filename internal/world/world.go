package world

import (
	"sync"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// WorldManager управляет картой чанк-колонн и координирует генерацию,
// освещение и редактирование блоков. Карта чанков защищена RWMutex;
// содержимое блоков и света намеренно не блокируется — фоновые сборщики
// мешей читают его без синхронизации, устаревшее чтение лишь откладывает
// перестройку меша до следующего цикла.
type WorldManager struct {
	cfg       config.WorldConfig  // Неизменяемые границы мира
	chunks    map[vec.Vec2]*Chunk // Активные чанк-колонны
	mu        sync.RWMutex        // Мьютекс карты чанков
	generator *TerrainGenerator   // Генератор рельефа
	lights    *LightEngine        // Движок распространения света
}

// NewWorldManager создаёт менеджер мира с указанной конфигурацией
func NewWorldManager(cfg config.WorldConfig) *WorldManager {
	wm := &WorldManager{
		cfg:    cfg,
		chunks: make(map[vec.Vec2]*Chunk),
	}
	wm.generator = NewTerrainGenerator(cfg.Seed, cfg.SeaLevel)
	wm.lights = NewLightEngine(wm)
	return wm
}

// Config возвращает конфигурацию мира
func (wm *WorldManager) Config() config.WorldConfig {
	return wm.cfg
}

// Lights возвращает движок освещения мира
func (wm *WorldManager) Lights() *LightEngine {
	return wm.lights
}

// GenerateWorld генерирует все чанк-колонны в пределах
// SizeInChunks x SizeInChunks и засеивает небесный свет. Выполняется
// однопоточно до запуска фоновых сборщиков, поэтому блокировки не нужны.
func (wm *WorldManager) GenerateWorld() {
	logging.Info("Генерация мира: %dx%d колонн, высота %d, сид %d",
		wm.cfg.SizeInChunks, wm.cfg.SizeInChunks, wm.cfg.Height, wm.cfg.Seed)

	for cx := 0; cx < wm.cfg.SizeInChunks; cx++ {
		for cz := 0; cz < wm.cfg.SizeInChunks; cz++ {
			coords := vec.Vec2{X: cx, Z: cz}
			chunk := NewChunk(coords, wm.cfg.Height)
			wm.generator.FillChunk(chunk)
			chunk.Dirty = true
			wm.chunks[coords] = chunk
		}
	}

	wm.lights.SeedSkyLight()
	logging.Info("Мир сгенерирован: %d колонн, очередь света %d узлов",
		len(wm.chunks), wm.lights.Pending())
}

// GetChunk возвращает чанк-колонну по координатам или nil
func (wm *WorldManager) GetChunk(coords vec.Vec2) *Chunk {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.chunks[coords]
}

// ForEachChunk вызывает fn для каждой активной колонны.
// Вызывается только с главной горутины: fn может трогать флаги Dirty/Building.
func (wm *WorldManager) ForEachChunk(fn func(*Chunk)) {
	wm.mu.RLock()
	snapshot := make([]*Chunk, 0, len(wm.chunks))
	for _, c := range wm.chunks {
		snapshot = append(snapshot, c)
	}
	wm.mu.RUnlock()

	for _, c := range snapshot {
		fn(c)
	}
}

// ChunkCount возвращает число активных колонн
func (wm *WorldManager) ChunkCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.chunks)
}

// BlockAt возвращает блок по мировым координатам.
// Тотальна: вне границ по высоте или при отсутствии колонны — Air.
func (wm *WorldManager) BlockAt(pos vec.Vec3) block.BlockID {
	if pos.Y < 0 || pos.Y >= wm.cfg.Height {
		return block.Air
	}
	chunk := wm.GetChunk(pos.ToColumnCoords())
	if chunk == nil {
		return block.Air
	}
	return chunk.GetBlock(pos.LocalInChunk())
}

// LightAt возвращает уровень света по мировым координатам.
// Для отсутствующей колонны верхняя половина мира считается освещённой
// небом (15), нижняя — тёмной: края мира не затемняют граничные меши.
func (wm *WorldManager) LightAt(pos vec.Vec3) uint8 {
	if pos.Y >= wm.cfg.Height {
		return MaxLightLevel
	}
	if pos.Y < 0 {
		return 0
	}
	chunk := wm.GetChunk(pos.ToColumnCoords())
	if chunk == nil {
		if pos.Y >= wm.cfg.Height/2 {
			return MaxLightLevel
		}
		return 0
	}
	return chunk.GetLight(pos.LocalInChunk())
}

// setLightAt записывает уровень света и помечает колонну на перестройку.
// Запись в отсутствующую колонну молча игнорируется.
func (wm *WorldManager) setLightAt(pos vec.Vec3, level uint8) {
	if pos.Y < 0 || pos.Y >= wm.cfg.Height {
		return
	}
	chunk := wm.GetChunk(pos.ToColumnCoords())
	if chunk == nil {
		return
	}
	local := pos.LocalInChunk()
	if chunk.GetLight(local) == level {
		return
	}
	chunk.SetLight(local, level)
	chunk.Dirty = true
	wm.markBorderNeighbors(pos)
}

// IsSolidAt сообщает, занята ли ячейка твёрдым блоком.
// Используется физикой как функция проверки коллизий.
func (wm *WorldManager) IsSolidAt(pos vec.Vec3) bool {
	return block.IsSolid(wm.BlockAt(pos))
}

// SetBlock изменяет блок по мировым координатам: обновляет содержимое,
// синхронно пересчитывает свет и помечает колонну (и соседей на границе)
// на перестройку меша. Запись вне границ или в отсутствующую колонну —
// no-op, как и запись того же самого блока.
func (wm *WorldManager) SetBlock(pos vec.Vec3, id block.BlockID) {
	if pos.Y < 0 || pos.Y >= wm.cfg.Height {
		return
	}
	if !block.IsValidBlockID(id) {
		logging.Warn("SetBlock: неизвестный блок %d в %v", id, pos)
		return
	}
	chunk := wm.GetChunk(pos.ToColumnCoords())
	if chunk == nil {
		logging.Debug("SetBlock: колонна %v не загружена", pos.ToColumnCoords())
		return
	}

	local := pos.LocalInChunk()
	old := chunk.GetBlock(local)
	if old == id {
		return
	}

	// Фоновая очередь света не должна перезаписать результат
	// синхронного пересчёта устаревшими узлами.
	wm.lights.Flush()

	chunk.SetBlock(local, id)

	oldTransparent := block.IsTransparentToLight(old)
	newTransparent := block.IsTransparentToLight(id)
	if oldTransparent && !newTransparent {
		wm.lights.onBlockPlaced(pos)
	} else if !oldTransparent && newTransparent {
		wm.lights.onBlockRemoved(pos)
	}
	wm.lights.Flush()

	chunk.Dirty = true
	wm.markBorderNeighbors(pos)
}

// markBorderNeighbors помечает соседние колонны грязными, если ячейка
// лежит на границе чанка. В колонной раскладке соседи есть только по X и Z.
func (wm *WorldManager) markBorderNeighbors(pos vec.Vec3) {
	coords := pos.ToColumnCoords()
	local := pos.LocalInChunk()

	if local.X == 0 {
		wm.markDirty(vec.Vec2{X: coords.X - 1, Z: coords.Z})
	} else if local.X == vec.ChunkSize-1 {
		wm.markDirty(vec.Vec2{X: coords.X + 1, Z: coords.Z})
	}
	if local.Z == 0 {
		wm.markDirty(vec.Vec2{X: coords.X, Z: coords.Z - 1})
	} else if local.Z == vec.ChunkSize-1 {
		wm.markDirty(vec.Vec2{X: coords.X, Z: coords.Z + 1})
	}
}

// markDirty помечает колонну грязной, если она загружена
func (wm *WorldManager) markDirty(coords vec.Vec2) {
	if chunk := wm.GetChunk(coords); chunk != nil {
		chunk.Dirty = true
	}
}
