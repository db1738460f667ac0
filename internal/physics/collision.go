package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/vec"
)

// SolidChecker сообщает, занята ли ячейка твёрдым блоком.
// Мир передаёт сюда WorldManager.IsSolidAt; тесты — табличную функцию.
type SolidChecker func(pos vec.Vec3) bool

// WaterChecker сообщает, заполнена ли ячейка водой
type WaterChecker func(pos vec.Vec3) bool

// collisionEpsilon — зазор выталкивания из блока, не даёт AABB
// залипнуть на грани после округления float32
const collisionEpsilon = 1e-4

// aabb — мировой прямоугольный параллелепипед игрока
type aabb struct {
	min, max mgl32.Vec3
}

// playerAABB строит AABB игрока от позиции ног
func playerAABB(position mgl32.Vec3) aabb {
	half := float32(PlayerWidth) / 2
	return aabb{
		min: position.Sub(mgl32.Vec3{half, 0, half}),
		max: position.Add(mgl32.Vec3{half, PlayerHeight, half}),
	}
}

// intersects проверяет пересечение с единичным блоком в (x, y, z)
func (b aabb) intersects(x, y, z int) bool {
	return b.max.X() > float32(x) && b.min.X() < float32(x+1) &&
		b.max.Y() > float32(y) && b.min.Y() < float32(y+1) &&
		b.max.Z() > float32(z) && b.min.Z() < float32(z+1)
}

// forEachOverlappedCell перебирает ячейки, накрытые AABB
func (b aabb) forEachOverlappedCell(fn func(x, y, z int) bool) {
	minX := int(math.Floor(float64(b.min.X())))
	maxX := int(math.Floor(float64(b.max.X())))
	minY := int(math.Floor(float64(b.min.Y())))
	maxY := int(math.Floor(float64(b.max.Y())))
	minZ := int(math.Floor(float64(b.min.Z())))
	maxZ := int(math.Floor(float64(b.max.Z())))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				if !fn(x, y, z) {
					return
				}
			}
		}
	}
}

// resolveCollisions сдвигает игрока на delta, разрешая столкновения
// по осям раздельно: X, затем Z, затем Y. Раздельное разрешение даёт
// скольжение вдоль стен без диагональных зацепов. Столкновение по Y
// вниз ставит игрока на блок и взводит OnGround.
func (p *Player) resolveCollisions(delta mgl32.Vec3, solid SolidChecker) {
	p.OnGround = false
	half := float32(PlayerWidth) / 2

	p.Position = p.Position.Add(mgl32.Vec3{delta.X(), 0, 0})
	box := playerAABB(p.Position)
	box.forEachOverlappedCell(func(x, y, z int) bool {
		if !solid(vec.Vec3{X: x, Y: y, Z: z}) || !box.intersects(x, y, z) {
			return true
		}
		if delta.X() > 0 {
			p.Position = mgl32.Vec3{float32(x) - half - collisionEpsilon, p.Position.Y(), p.Position.Z()}
		} else if delta.X() < 0 {
			p.Position = mgl32.Vec3{float32(x+1) + half + collisionEpsilon, p.Position.Y(), p.Position.Z()}
		}
		box = playerAABB(p.Position)
		return true
	})

	p.Position = p.Position.Add(mgl32.Vec3{0, 0, delta.Z()})
	box = playerAABB(p.Position)
	box.forEachOverlappedCell(func(x, y, z int) bool {
		if !solid(vec.Vec3{X: x, Y: y, Z: z}) || !box.intersects(x, y, z) {
			return true
		}
		if delta.Z() > 0 {
			p.Position = mgl32.Vec3{p.Position.X(), p.Position.Y(), float32(z) - half - collisionEpsilon}
		} else if delta.Z() < 0 {
			p.Position = mgl32.Vec3{p.Position.X(), p.Position.Y(), float32(z+1) + half + collisionEpsilon}
		}
		box = playerAABB(p.Position)
		return true
	})

	p.Position = p.Position.Add(mgl32.Vec3{0, delta.Y(), 0})
	box = playerAABB(p.Position)
	box.forEachOverlappedCell(func(x, y, z int) bool {
		if !solid(vec.Vec3{X: x, Y: y, Z: z}) || !box.intersects(x, y, z) {
			return true
		}
		if delta.Y() > 0 {
			p.Position = mgl32.Vec3{p.Position.X(), float32(y) - PlayerHeight - collisionEpsilon, p.Position.Z()}
		} else if delta.Y() < 0 {
			p.Position = mgl32.Vec3{p.Position.X(), float32(y + 1), p.Position.Z()}
			p.OnGround = true
		}
		p.Velocity = mgl32.Vec3{p.Velocity.X(), 0, p.Velocity.Z()}
		box = playerAABB(p.Position)
		return true
	})
}
