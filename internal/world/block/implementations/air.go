package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// AirBehavior реализует поведение пустого блока
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.Air
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// Opacity возвращает класс прозрачности: воздух полностью прозрачен
func (b *AirBehavior) Opacity() block.Opacity {
	return block.Transparent
}

// FaceTexture возвращает индекс текстуры; у воздуха граней нет
func (b *AirBehavior) FaceTexture(face block.Face) int {
	return -1
}

func init() {
	block.Register(block.Air, &AirBehavior{})
}
