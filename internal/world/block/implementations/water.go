package implementations

import (
	"github.com/annel0/voxel-engine/internal/world/block"
)

// WaterBehavior реализует поведение блока воды
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.Water
}

// Name возвращает имя блока
func (b *WaterBehavior) Name() string {
	return "Water"
}

// Opacity возвращает класс прозрачности: вода пропускает свет
// и не участвует в коллизиях, но рендерится в прозрачном проходе
func (b *WaterBehavior) Opacity() block.Opacity {
	return block.Liquid
}

// FaceTexture возвращает индекс текстуры воды
func (b *WaterBehavior) FaceTexture(face block.Face) int {
	return block.TextureWater
}

func init() {
	block.Register(block.Water, &WaterBehavior{})
}
