package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// GrassBehavior реализует поведение травяного блока
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.Grass
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// Opacity возвращает класс прозрачности
func (b *GrassBehavior) Opacity() block.Opacity {
	return block.Opaque
}

// FaceTexture возвращает индекс текстуры. Трава — единственный блок
// с разными текстурами по граням: дёрн сверху, земля снизу, боковая
// текстура на остальных гранях.
func (b *GrassBehavior) FaceTexture(face block.Face) int {
	switch face {
	case block.FaceTop:
		return block.TextureGrassTop
	case block.FaceBottom:
		return block.TextureDirt
	default:
		return block.TextureGrassSide
	}
}

func init() {
	block.Register(block.Grass, &GrassBehavior{})
}
