package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.Stone
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// Opacity возвращает класс прозрачности
func (b *StoneBehavior) Opacity() block.Opacity {
	return block.Opaque
}

// FaceTexture возвращает индекс текстуры: камень одинаков со всех сторон
func (b *StoneBehavior) FaceTexture(face block.Face) int {
	return block.TextureStone
}

func init() {
	block.Register(block.Stone, &StoneBehavior{})
}
