package world

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Параметры рельефа: пятиоктавный OpenSimplex поверх доменного искажения
// Перлином. Искажение сдвигает точку выборки основного шума, ломая его
// решётчатую регулярность.
const (
	terrainOctaves     = 5
	terrainPersistence = 0.5
	terrainLacunarity  = 2.2
	terrainBaseFreq    = 0.1
	terrainBaseAmp     = 20.0

	warpFrequency = 0.05
	warpStrength  = 10.0
	warpOffsetX   = 543.21
	warpOffsetZ   = -123.45
)

// TerrainGenerator детерминированно порождает рельеф по сиду
type TerrainGenerator struct {
	noise    opensimplex.Noise // Основной шум высот
	warp     *perlin.Perlin    // Шум доменного искажения
	seaLevel int
}

// NewTerrainGenerator создаёт генератор рельефа с указанным сидом
func NewTerrainGenerator(seed int64, seaLevel int) *TerrainGenerator {
	return &TerrainGenerator{
		noise:    opensimplex.New(seed),
		warp:     perlin.NewPerlin(2.0, 2.0, 3, seed),
		seaLevel: seaLevel,
	}
}

// TerrainHeight возвращает высоту рельефа в мировой точке (x, z)
func (g *TerrainGenerator) TerrainHeight(worldX, worldZ int) int {
	fx := float64(worldX)
	fz := float64(worldZ)

	warpX := g.warp.Noise2D(fx*warpFrequency, fz*warpFrequency) * warpStrength
	warpZ := g.warp.Noise2D((fx+warpOffsetX)*warpFrequency, (fz+warpOffsetZ)*warpFrequency) * warpStrength

	total := 0.0
	frequency := terrainBaseFreq
	amplitude := terrainBaseAmp
	for i := 0; i < terrainOctaves; i++ {
		total += g.noise.Eval2(fx*frequency+warpX, fz*frequency+warpZ) * amplitude
		amplitude *= terrainPersistence
		frequency *= terrainLacunarity
	}

	return int(total) + g.seaLevel
}

// FillChunk заполняет колонну блоками по правилу рельефа:
// над поверхностью до уровня моря — вода, поверхность над морем — трава,
// пять слоёв под поверхностью — земля, глубже — камень.
func (g *TerrainGenerator) FillChunk(chunk *Chunk) {
	origin := chunk.WorldOrigin()
	height := chunk.Height()

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			h := g.TerrainHeight(origin.X+x, origin.Z+z)

			for y := 0; y < height; y++ {
				id := block.Air
				if y > h {
					if y <= g.seaLevel {
						id = block.Water
					}
				} else if y == h && y > g.seaLevel {
					id = block.Grass
				} else if y > h-5 {
					id = block.Dirt
				} else {
					id = block.Stone
				}
				if id != block.Air {
					chunk.SetBlock(vec.Vec3{X: x, Y: y, Z: z}, id)
				}
			}
		}
	}
}
