package vec

// ChunkSize — размер чанк-колонны по осям X и Z
const ChunkSize = 16

// ChunkShift — сдвиг для деления на размер чанка (16)
const ChunkShift = 4

// ChunkMask — маска для локальных координат внутри чанка
const ChunkMask = 0xF

// Vec3 представляет мировую позицию блока с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToColumnCoords преобразует мировые координаты в координаты чанк-колонны.
// Арифметический сдвиг даёт floor-семантику: X=-1 попадает в колонну -1,
// а не в 0, как при усечении к нулю.
func (v Vec3) ToColumnCoords() Vec2 {
	return Vec2{X: v.X >> ChunkShift, Z: v.Z >> ChunkShift}
}

// LocalInChunk возвращает локальные координаты внутри чанк-колонны.
// Координата Y не преобразуется: колонна занимает всю высоту мира.
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & ChunkMask, Y: v.Y, Z: v.Z & ChunkMask}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Up возвращает позицию на один блок выше
func (v Vec3) Up() Vec3 {
	return Vec3{X: v.X, Y: v.Y + 1, Z: v.Z}
}

// Down возвращает позицию на один блок ниже
func (v Vec3) Down() Vec3 {
	return Vec3{X: v.X, Y: v.Y - 1, Z: v.Z}
}

// Directions6 — шесть направлений соседства блока.
// Порядок: +Z, -Z, +Y, -Y, +X, -X — совпадает с порядком граней при мешинге.
var Directions6 = [6]Vec3{
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
}

// Neighbors6 возвращает шесть соседних позиций блока
func (v Vec3) Neighbors6() [6]Vec3 {
	var out [6]Vec3
	for i, d := range Directions6 {
		out[i] = v.Add(d)
	}
	return out
}
