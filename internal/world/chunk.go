package world

import (
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// ChunkSize — размер чанк-колонны по осям X и Z
const ChunkSize = vec.ChunkSize

// Chunk представляет чанк-колонну: участок мира 16x16 блоков,
// занимающий всю высоту мира. Колонная раскладка убирает измерение Y
// из поиска по карте чанков: колонна адресуется только (X, Z).
type Chunk struct {
	Coords vec.Vec2 // Координаты колонны в мире

	height int
	blocks []block.BlockID // Плотный массив типов блоков
	light  []uint8         // Уровни освещения 0-15

	// Dirty — чанк требует перестроения меша.
	// Building — сборка меша уже запущена в фоне. Оба флага читаются и
	// изменяются только основной горутиной (контракт планировщика),
	// поэтому не нуждаются в мьютексе.
	Dirty    bool
	Building bool

	// Выходные буферы месхера. Заполняются фоновым воркером, потребляются
	// ровно один раз при загрузке в GPU, затем очищаются.
	OpaqueMesh      []mesh.Vertex
	TransparentMesh []mesh.Vertex
}

// NewChunk создаёт пустую колонну указанной высоты
func NewChunk(coords vec.Vec2, height int) *Chunk {
	return &Chunk{
		Coords: coords,
		height: height,
		blocks: make([]block.BlockID, ChunkSize*height*ChunkSize),
		light:  make([]uint8, ChunkSize*height*ChunkSize),
	}
}

// Height возвращает высоту колонны в блоках
func (c *Chunk) Height() int {
	return c.height
}

// idx переводит локальные координаты в индекс плотного массива
func (c *Chunk) idx(x, y, z int) int {
	return (x*c.height+y)*ChunkSize + z
}

// inBounds проверяет, что локальные координаты лежат внутри колонны
func (c *Chunk) inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < c.height && z >= 0 && z < ChunkSize
}

// GetBlock возвращает тип блока по локальным координатам.
// Вне колонны — воздух.
func (c *Chunk) GetBlock(local vec.Vec3) block.BlockID {
	if !c.inBounds(local.X, local.Y, local.Z) {
		return block.Air
	}
	return c.blocks[c.idx(local.X, local.Y, local.Z)]
}

// SetBlock устанавливает тип блока по локальным координатам
func (c *Chunk) SetBlock(local vec.Vec3, id block.BlockID) {
	if !c.inBounds(local.X, local.Y, local.Z) {
		return
	}
	c.blocks[c.idx(local.X, local.Y, local.Z)] = id
}

// GetLight возвращает уровень освещения по локальным координатам
func (c *Chunk) GetLight(local vec.Vec3) uint8 {
	if !c.inBounds(local.X, local.Y, local.Z) {
		return 0
	}
	return c.light[c.idx(local.X, local.Y, local.Z)]
}

// SetLight устанавливает уровень освещения по локальным координатам
func (c *Chunk) SetLight(local vec.Vec3, level uint8) {
	if !c.inBounds(local.X, local.Y, local.Z) {
		return
	}
	c.light[c.idx(local.X, local.Y, local.Z)] = level
}

// WorldOrigin возвращает мировую позицию угла колонны (y=0)
func (c *Chunk) WorldOrigin() vec.Vec3 {
	return vec.Vec3{X: c.Coords.X * ChunkSize, Y: 0, Z: c.Coords.Z * ChunkSize}
}
