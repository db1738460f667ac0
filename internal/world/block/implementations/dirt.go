package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.Dirt
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "Dirt"
}

// Opacity возвращает класс прозрачности
func (b *DirtBehavior) Opacity() block.Opacity {
	return block.Opaque
}

// FaceTexture возвращает индекс текстуры: земля одинакова со всех сторон
func (b *DirtBehavior) FaceTexture(face block.Face) int {
	return block.TextureDirt
}

func init() {
	block.Register(block.Dirt, &DirtBehavior{})
}
