package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/vec"
)

// Константы движения игрока
const (
	Gravity      = -28.0 // Ускорение падения, блоков/с²
	JumpVelocity = 9.0   // Начальная скорость прыжка
	MoveSpeed    = 5.0   // Горизонтальная скорость ходьбы, блоков/с

	WaterGravity  = -6.0 // Погружение в воде
	SwimVelocity  = 3.0  // Вертикальный гребок
	WaterSpeedMul = 0.6  // Замедление ходьбы в воде
	MaxSinkSpeed  = -4.0 // Предельная скорость погружения

	FlySpeedMul = 2.0 // Ускорение горизонтали в полёте

	PlayerWidth    = 0.6
	PlayerHeight   = 1.8
	PlayerEyeLevel = 1.6
)

// Player — состояние игрока. Position — нижний центр капсулы
// (ноги); камера смотрит с высоты PlayerEyeLevel над ним.
type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool
	InWater  bool
	Flying   bool
}

// Input — снимок ввода на один шаг физики. Front — направление взгляда
// камеры; для горизонтального движения оно проецируется на плоскость XZ.
type Input struct {
	Front    mgl32.Vec3
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	Descend  bool
}

// horizontalWish возвращает нормированное желаемое направление
// движения в плоскости XZ, или нулевой вектор
func (in Input) horizontalWish() mgl32.Vec3 {
	flat := mgl32.Vec3{in.Front.X(), 0, in.Front.Z()}
	if flat.LenSqr() < 1e-8 {
		flat = mgl32.Vec3{0, 0, -1}
	}
	flat = flat.Normalize()
	right := flat.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	var wish mgl32.Vec3
	if in.Forward {
		wish = wish.Add(flat)
	}
	if in.Backward {
		wish = wish.Sub(flat)
	}
	if in.Right {
		wish = wish.Add(right)
	}
	if in.Left {
		wish = wish.Sub(right)
	}
	if wish.LenSqr() < 1e-8 {
		return mgl32.Vec3{}
	}
	return wish.Normalize()
}

// Step продвигает физику игрока на dt секунд. Окружение опрашивается
// через solid (коллизии) и water (погружение) — обе функции принимают
// мировые координаты ячейки.
func (p *Player) Step(dt float32, in Input, solid SolidChecker, water WaterChecker) {
	// Среда: вода определяется по ячейке на уровне глаз
	head := p.Position.Add(mgl32.Vec3{0, PlayerEyeLevel, 0})
	p.InWater = !p.Flying && water(floorVec(head))

	wish := in.horizontalWish()

	switch {
	case p.Flying:
		p.OnGround = false
		wish = wish.Mul(MoveSpeed * FlySpeedMul)
		switch {
		case in.Jump:
			p.Velocity = mgl32.Vec3{wish.X(), MoveSpeed, wish.Z()}
		case in.Descend:
			p.Velocity = mgl32.Vec3{wish.X(), -MoveSpeed, wish.Z()}
		default:
			p.Velocity = mgl32.Vec3{wish.X(), 0, wish.Z()}
		}

	case p.InWater:
		p.OnGround = false
		vy := p.Velocity.Y() + WaterGravity*dt
		if in.Jump {
			vy = SwimVelocity
		}
		if vy < MaxSinkSpeed {
			vy = MaxSinkSpeed
		}
		wish = wish.Mul(MoveSpeed * WaterSpeedMul)
		p.Velocity = mgl32.Vec3{wish.X(), vy, wish.Z()}

	default:
		vy := p.Velocity.Y() + Gravity*dt
		if in.Jump && p.OnGround {
			vy = JumpVelocity
			p.OnGround = false
		}
		wish = wish.Mul(MoveSpeed)
		p.Velocity = mgl32.Vec3{wish.X(), vy, wish.Z()}
	}

	p.resolveCollisions(p.Velocity.Mul(dt), solid)
}

// EyePosition возвращает позицию камеры
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, PlayerEyeLevel, 0})
}

// floorVec приводит точку к координатам объемлющей ячейки
func floorVec(v mgl32.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: int(math.Floor(float64(v.X()))),
		Y: int(math.Floor(float64(v.Y()))),
		Z: int(math.Floor(float64(v.Z()))),
	}
}
