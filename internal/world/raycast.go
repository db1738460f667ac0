package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// maxRaycastSteps ограничивает длину луча в пересечённых ячейках
const maxRaycastSteps = 100

// Raycast пускает воксельный луч (DDA) из origin вдоль direction и
// возвращает первый неатмосферный блок вместе с соседней ячейкой, из
// которой луч в него вошёл. Соседняя ячейка — место установки нового
// блока. Второй результат false, если луч ничего не задел.
func (wm *WorldManager) Raycast(origin, direction mgl32.Vec3) (hit, adjacent vec.Vec3, ok bool) {
	if direction.LenSqr() < 0.0001 {
		return vec.Vec3{}, vec.Vec3{}, false
	}

	current := vec.Vec3{
		X: int(math.Floor(float64(origin.X()))),
		Y: int(math.Floor(float64(origin.Y()))),
		Z: int(math.Floor(float64(origin.Z()))),
	}
	last := current

	stepX, tMaxX, tDeltaX := rayAxis(origin.X(), direction.X(), current.X)
	stepY, tMaxY, tDeltaY := rayAxis(origin.Y(), direction.Y(), current.Y)
	stepZ, tMaxZ, tDeltaZ := rayAxis(origin.Z(), direction.Z(), current.Z)

	for i := 0; i < maxRaycastSteps; i++ {
		last = current

		if tMaxX < tMaxY {
			if tMaxX < tMaxZ {
				current.X += stepX
				tMaxX += tDeltaX
			} else {
				current.Z += stepZ
				tMaxZ += tDeltaZ
			}
		} else {
			if tMaxY < tMaxZ {
				current.Y += stepY
				tMaxY += tDeltaY
			} else {
				current.Z += stepZ
				tMaxZ += tDeltaZ
			}
		}

		if wm.BlockAt(current) != block.Air {
			return current, last, true
		}
	}
	return vec.Vec3{}, vec.Vec3{}, false
}

// rayAxis готовит параметры DDA по одной оси: направление шага,
// расстояние до первой границы ячейки и шаг между границами
func rayAxis(origin, direction float32, cell int) (step int, tMax, tDelta float32) {
	if direction == 0 {
		return 0, float32(math.Inf(1)), float32(math.Inf(1))
	}
	tDelta = 1.0 / float32(math.Abs(float64(direction)))
	if direction > 0 {
		step = 1
		tMax = (float32(cell) + 1.0 - origin) * tDelta
	} else {
		step = -1
		tMax = (origin - float32(cell)) * tDelta
	}
	return step, tMax, tDelta
}
