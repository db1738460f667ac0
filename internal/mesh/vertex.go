package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex — одна вершина меша чанка. Раскладка совпадает с атрибутами
// вершинного шейдера: позиция, UV в атласе, скаляр освещения.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Light    float32 // Нормированный уровень освещения 0..1
}

// ChunkMesh — результат сборки меша одной колонны. Непрозрачная и
// прозрачная геометрия разделены, чтобы рендерер мог рисовать
// прозрачный проход отдельно, с сортировкой по глубине.
type ChunkMesh struct {
	Opaque      []Vertex
	Transparent []Vertex
}
