package vec

import "math"

// Vec2 представляет координаты чанк-колонны в мире (X, Z)
type Vec2 struct {
	X, Z int
}

// DistanceTo вычисляет расстояние до другой колонны
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// Equals проверяет равенство координат
func (v Vec2) Equals(other Vec2) bool {
	return v.X == other.X && v.Z == other.Z
}
