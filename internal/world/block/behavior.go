package block

// Opacity описывает взаимодействие блока со светом и коллизиями
type Opacity int

const (
	// Opaque — блок непрозрачен для света и непроходим
	Opaque Opacity = iota
	// Transparent — блок прозрачен для света и проходим (воздух)
	Transparent
	// Liquid — блок прозрачен для света, проходим, но видим (вода)
	Liquid
)

// Face обозначает грань блока. Порядок совпадает с порядком
// направлений vec.Directions6 и таблицей граней месхера.
type Face int

const (
	FaceFront  Face = iota // +Z
	FaceBack               // -Z
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceRight              // +X
	FaceLeft               // -X
)

// Индексы текстур в атласе. Атлас содержит AtlasTiles плиток в один ряд.
const (
	TextureStone     = 0
	TextureDirt      = 1
	TextureGrassTop  = 2
	TextureGrassSide = 3
	TextureWater     = 4

	AtlasTiles = 5
)

// TileWidth — доля ширины атласа, приходящаяся на одну плитку
const TileWidth = 1.0 / float32(AtlasTiles)

// BlockBehavior определяет статические свойства типа блока.
// Реализации регистрируются в init() соответствующего файла
// в пакете implementations.
type BlockBehavior interface {
	// ID возвращает идентификатор блока
	ID() BlockID

	// Name возвращает имя блока
	Name() string

	// Opacity возвращает класс прозрачности блока
	Opacity() Opacity

	// FaceTexture возвращает индекс текстуры в атласе для указанной грани
	FaceTexture(face Face) int
}
