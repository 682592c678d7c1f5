package vec

import "fmt"

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется и для мировых координат вокселей, и для локальных координат внутри чанка.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Zero3 нулевой вектор
var Zero3 = Vec3{}

// NewVec3 создаёт вектор из компонент
func NewVec3(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul умножает вектор на скаляр
func (v Vec3) Mul(s int) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div делит вектор на скаляр с отбрасыванием дробной части (к нулю)
func (v Vec3) Div(s int) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Mod возвращает остаток от деления по каждой компоненте.
// Знак остатка совпадает со знаком делимого, поэтому результат может быть отрицательным.
// Для координат внутри чанка используйте PosMod.
func (v Vec3) Mod(s int) Vec3 {
	return Vec3{X: v.X % s, Y: v.Y % s, Z: v.Z % s}
}

// FloorDiv делит вектор на скаляр с округлением вниз (корректно для отрицательных координат)
func (v Vec3) FloorDiv(s int) Vec3 {
	return Vec3{X: floorDiv(v.X, s), Y: floorDiv(v.Y, s), Z: floorDiv(v.Z, s)}
}

// PosMod возвращает неотрицательный остаток в диапазоне [0, s)
func (v Vec3) PosMod(s int) Vec3 {
	return Vec3{X: posMod(v.X, s), Y: posMod(v.Y, s), Z: posMod(v.Z, s)}
}

// DistanceTo возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return float64(dx*dx + dy*dy + dz*dz)
}

// ToVec2 возвращает проекцию на плоскость XZ (колонка вокселей)
func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func posMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
