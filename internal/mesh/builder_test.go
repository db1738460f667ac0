package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// mapSource — источник блоков для тестов: карта мировых координат,
// всё прочее — воздух, свет везде максимальный
type mapSource struct {
	blocks map[vec.Vec3]block.BlockID
	light  map[vec.Vec3]uint8
}

func newMapSource() *mapSource {
	return &mapSource{
		blocks: make(map[vec.Vec3]block.BlockID),
		light:  make(map[vec.Vec3]uint8),
	}
}

func (s *mapSource) BlockAt(pos vec.Vec3) block.BlockID {
	return s.blocks[pos]
}

func (s *mapSource) LightAt(pos vec.Vec3) uint8 {
	if level, ok := s.light[pos]; ok {
		return level
	}
	return MaxLightLevel
}

func TestBuild_IsolatedStoneBlock(t *testing.T) {
	src := newMapSource()
	src.blocks[vec.Vec3{X: 5, Y: 5, Z: 5}] = block.Stone

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	// Шесть открытых граней, по два треугольника без индексации
	assert.Len(t, out.Opaque, 6*6, "изолированный блок — 6 граней по 6 вершин")
	assert.Empty(t, out.Transparent)
}

func TestBuild_BuriedBlockInvisible(t *testing.T) {
	// Блок, окружённый камнем со всех сторон, не даёт ни одной грани
	src := newMapSource()
	center := vec.Vec3{X: 5, Y: 5, Z: 5}
	src.blocks[center] = block.Stone
	for _, nbr := range center.Neighbors6() {
		src.blocks[nbr] = block.Stone
	}

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	// 6 соседей дают по 5 открытых граней (внутренняя скрыта)
	assert.Len(t, out.Opaque, 6*5*6)
}

func TestBuild_WaterSuppressesSharedFaces(t *testing.T) {
	// Смежные блоки воды не рисуют общую грань
	src := newMapSource()
	a := vec.Vec3{X: 5, Y: 5, Z: 5}
	b := vec.Vec3{X: 6, Y: 5, Z: 5}
	src.blocks[a] = block.Water
	src.blocks[b] = block.Water

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	// Каждый блок: 5 видимых граней, верхняя с дополнительной обратной парой
	assert.Empty(t, out.Opaque)
	assert.Len(t, out.Transparent, 2*(5*6+6))
}

func TestBuild_SolidFaceAgainstWaterIsDrawn(t *testing.T) {
	// Камень под водой рисует верхнюю грань: вода не скрывает твёрдые блоки
	src := newMapSource()
	src.blocks[vec.Vec3{X: 5, Y: 5, Z: 5}] = block.Stone
	src.blocks[vec.Vec3{X: 5, Y: 6, Z: 5}] = block.Water

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	// Камень: все 6 граней видимы. Вода рисует грани против любого
	// не-водного соседа, включая камень: 6 граней + обратная пара верха.
	assert.Len(t, out.Opaque, 6*6)
	assert.Len(t, out.Transparent, 6*6+6)
}

func TestBuild_WaterSurfaceLowered(t *testing.T) {
	// Верхняя грань воды с воздухом сверху опущена на 0.2
	src := newMapSource()
	src.blocks[vec.Vec3{X: 2, Y: 7, Z: 2}] = block.Water

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	topY := float32(0)
	for _, v := range out.Transparent {
		if v.Position.Y() > topY {
			topY = v.Position.Y()
		}
	}
	assert.InDelta(t, 8.0-0.2, topY, 1e-5, "поверхность воды ниже верха ячейки")
}

func TestBuild_LightSampledFromNeighbor(t *testing.T) {
	// Освещение грани берётся из ячейки-соседа, нормированное к 1
	src := newMapSource()
	pos := vec.Vec3{X: 5, Y: 5, Z: 5}
	src.blocks[pos] = block.Stone
	src.light[pos.Up()] = 10

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)

	// Только верхняя грань сэмплирует ячейку сверху: ровно 6 вершин
	// несут её уровень, остальные грани освещены полностью
	dimmed := 0
	for _, v := range out.Opaque {
		if v.Light < 0.99 {
			assert.InDelta(t, 10.0/15.0, v.Light, 1e-5)
			assert.Equal(t, float32(6), v.Position.Y(), "приглушённая вершина принадлежит верхней грани")
			dimmed++
		}
	}
	assert.Equal(t, 6, dimmed)
}

func TestBuild_GrassFaceTextures(t *testing.T) {
	// Трава: дёрн сверху, земля снизу, боковая текстура на четырёх гранях
	src := newMapSource()
	src.blocks[vec.Vec3{X: 5, Y: 5, Z: 5}] = block.Grass

	out := Build(src, vec.Vec2{X: 0, Z: 0}, 16)
	assert.Len(t, out.Opaque, 6*6)

	uRange := func(vs []Vertex, wantY float32) (min, max float32) {
		min, max = 2, -1
		for _, v := range vs {
			if v.Position.Y() != wantY {
				continue
			}
			if u := v.TexCoord.X(); u < min {
				min = u
			}
			if u := v.TexCoord.X(); u > max {
				max = u
			}
		}
		return min, max
	}

	// Верхняя грань лежит в плоскости y=6 целиком, нижняя — y=5.
	// Боковые грани содержат вершины на обеих высотах, поэтому охватывают
	// и другие плитки; проверяем крайние плитки по диапазонам U.
	minTop, _ := uRange(out.Opaque, 6)
	assert.InDelta(t, float32(block.TextureGrassTop)*block.TileWidth, minTop, 1e-4,
		"минимальный U на верхней плоскости — начало плитки дёрна")
	minBottom, _ := uRange(out.Opaque, 5)
	assert.InDelta(t, float32(block.TextureDirt)*block.TileWidth, minBottom, 1e-4,
		"минимальный U на нижней плоскости — начало плитки земли")
}

func TestBuild_EmptyColumn(t *testing.T) {
	src := newMapSource()
	out := Build(src, vec.Vec2{X: 3, Z: -1}, 16)

	assert.Empty(t, out.Opaque)
	assert.Empty(t, out.Transparent)
}

func TestBuild_NegativeColumnLocalCoords(t *testing.T) {
	// Колонна с отрицательными координатами: вершины остаются локальными
	src := newMapSource()
	src.blocks[vec.Vec3{X: -1, Y: 5, Z: -1}] = block.Stone

	out := Build(src, vec.Vec2{X: -1, Z: -1}, 16)

	assert.Len(t, out.Opaque, 6*6)
	for _, v := range out.Opaque {
		assert.GreaterOrEqual(t, v.Position.X(), float32(15))
		assert.LessOrEqual(t, v.Position.X(), float32(16))
	}
}
