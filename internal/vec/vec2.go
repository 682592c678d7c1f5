package vec

import "math"

// Vec2 представляет 2D координаты колонки вокселей (X, Z мира хранятся как X, Y)
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// ToVec3 поднимает колонку на заданную высоту
func (v Vec2) ToVec3(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
