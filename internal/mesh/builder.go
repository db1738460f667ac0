package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// BlockSource предоставляет месхеру доступ к блокам и освещению мира.
// Запросы принимают мировые координаты: видимость грани на границе
// колонны зависит от блока в соседней колонне.
type BlockSource interface {
	// BlockAt возвращает тип блока; вне мира — воздух
	BlockAt(pos vec.Vec3) block.BlockID

	// LightAt возвращает уровень освещения 0-15
	LightAt(pos vec.Vec3) uint8
}

// MaxLightLevel — максимальный уровень освещения
const MaxLightLevel = 15

// waterSurfaceOffset — понижение верхней грани воды, когда над ней воздух
const waterSurfaceOffset = 0.2

// faceVertices — четыре угла каждой из шести граней единичного куба.
// Порядок граней совпадает с vec.Directions6 и block.Face.
// Обход углов даёт наружную ориентацию при веерной триангуляции 0-1-2, 0-2-3.
var faceVertices = [6][4]mgl32.Vec3{
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // Front (+Z)
	{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, // Back (-Z)
	{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, // Top (+Y)
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // Bottom (-Y)
	{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, // Right (+X)
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // Left (-X)
}

// faceUVs — UV-координаты углов грани внутри одной плитки атласа
var faceUVs = [4]mgl32.Vec2{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}

// Build собирает меш колонны с координатами coords и высотой height.
// Чистая функция состояния мира: не трогает ни GPU, ни флаги чанков,
// поэтому безопасна для выполнения в фоновом воркере. Вершины заданы
// в локальных координатах колонны; модельная матрица рендерера
// переносит их в мировые.
func Build(src BlockSource, coords vec.Vec2, height int) *ChunkMesh {
	out := &ChunkMesh{}

	originX := coords.X * vec.ChunkSize
	originZ := coords.Z * vec.ChunkSize

	for x := 0; x < vec.ChunkSize; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < vec.ChunkSize; z++ {
				worldPos := vec.Vec3{X: originX + x, Y: y, Z: originZ + z}
				id := src.BlockAt(worldPos)
				if id == block.Air {
					continue
				}

				behavior, exists := block.Get(id)
				if !exists {
					continue
				}
				isWater := id == block.Water

				for face := 0; face < 6; face++ {
					neighborPos := worldPos.Add(vec.Directions6[face])
					neighborID := src.BlockAt(neighborPos)

					if !shouldDrawFace(id, neighborID) {
						continue
					}

					light := float32(src.LightAt(neighborPos)) / MaxLightLevel
					uOffset := float32(behavior.FaceTexture(block.Face(face))) * block.TileWidth

					lowerTop := isWater && src.BlockAt(worldPos.Up()) == block.Air

					var quad [4]Vertex
					for k := 0; k < 4; k++ {
						corner := faceVertices[face][k]
						if lowerTop && corner.Y() == 1 {
							corner = mgl32.Vec3{corner.X(), corner.Y() - waterSurfaceOffset, corner.Z()}
						}
						quad[k] = Vertex{
							Position: mgl32.Vec3{
								float32(x) + corner.X(),
								float32(y) + corner.Y(),
								float32(z) + corner.Z(),
							},
							TexCoord: mgl32.Vec2{
								uOffset + faceUVs[k].X()*block.TileWidth,
								faceUVs[k].Y(),
							},
							Light: light,
						}
					}

					if isWater {
						out.Transparent = appendQuad(out.Transparent, quad)
						if block.Face(face) == block.FaceTop {
							// Поверхность воды видна и снизу: добавляем
							// пару треугольников с обратным обходом
							out.Transparent = append(out.Transparent,
								quad[0], quad[2], quad[1],
								quad[0], quad[3], quad[2])
						}
					} else {
						out.Opaque = appendQuad(out.Opaque, quad)
					}
				}
			}
		}
	}

	return out
}

// shouldDrawFace решает, видима ли грань блока id напротив соседа neighborID.
// Вода рисует грани только против не-воды, иначе смежные блоки воды
// дали бы внутренние стенки. Твёрдые блоки рисуют грани против воздуха
// и воды.
func shouldDrawFace(id, neighborID block.BlockID) bool {
	if id == block.Water {
		return neighborID != block.Water
	}
	return neighborID == block.Air || neighborID == block.Water
}

// appendQuad добавляет четырёхугольник как два треугольника (веер 0-1-2, 0-2-3)
func appendQuad(dst []Vertex, quad [4]Vertex) []Vertex {
	return append(dst,
		quad[0], quad[1], quad[2],
		quad[0], quad[2], quad[3])
}
