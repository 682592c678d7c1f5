package physics

import (
	"github.com/annel0/voxel-world/internal/vec"
)

// Occupancy отвечает, занят ли воксель твёрдым содержимым
type Occupancy interface {
	IsBlocked(pos vec.Vec3) bool
}

// BoxCollider прямоугольный коллайдер, выровненный по сетке вокселей.
// Позиция коллайдера - воксель в центре основания.
type BoxCollider struct {
	Width  int // по X в вокселях
	Height int // по Y в вокселях
	Depth  int // по Z в вокселях
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height, depth int) *BoxCollider {
	return &BoxCollider{
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// Min первый воксель, занятый коллайдером в позиции pos
func (bc *BoxCollider) Min(pos vec.Vec3) vec.Vec3 {
	return vec.Vec3{X: pos.X - bc.Width/2, Y: pos.Y, Z: pos.Z - bc.Depth/2}
}

// Max воксель за последним занятым по каждой оси
func (bc *BoxCollider) Max(pos vec.Vec3) vec.Vec3 {
	return bc.Min(pos).Add(vec.Vec3{X: bc.Width, Y: bc.Height, Z: bc.Depth})
}

// IsPointInside проверяет, находится ли воксель point внутри коллайдера
func (bc *BoxCollider) IsPointInside(colliderPos, point vec.Vec3) bool {
	lo, hi := bc.Min(colliderPos), bc.Max(colliderPos)
	return point.X >= lo.X && point.X < hi.X &&
		point.Y >= lo.Y && point.Y < hi.Y &&
		point.Z >= lo.Z && point.Z < hi.Z
}

// CheckBoxCollision проверяет пересечение двух коллайдеров
func CheckBoxCollision(pos1 vec.Vec3, collider1 *BoxCollider, pos2 vec.Vec3, collider2 *BoxCollider) bool {
	lo1, hi1 := collider1.Min(pos1), collider1.Max(pos1)
	lo2, hi2 := collider2.Min(pos2), collider2.Max(pos2)

	return lo1.X < hi2.X && lo2.X < hi1.X &&
		lo1.Y < hi2.Y && lo2.Y < hi1.Y &&
		lo1.Z < hi2.Z && lo2.Z < hi1.Z
}

// GetCollisionPoints возвращает все воксели, занятые коллайдером
func GetCollisionPoints(pos vec.Vec3, collider *BoxCollider) []vec.Vec3 {
	lo, hi := collider.Min(pos), collider.Max(pos)
	points := make([]vec.Vec3, 0, collider.Width*collider.Height*collider.Depth)
	for x := lo.X; x < hi.X; x++ {
		for y := lo.Y; y < hi.Y; y++ {
			for z := lo.Z; z < hi.Z; z++ {
				points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

// CanMoveToPosition проверяет, что все воксели коллайдера в позиции newPos свободны
func CanMoveToPosition(newPos vec.Vec3, collider *BoxCollider, occupancy Occupancy) bool {
	for _, point := range GetCollisionPoints(newPos, collider) {
		if occupancy.IsBlocked(point) {
			return false
		}
	}
	return true
}

// FindGround опускается по колонке (x, z) от fromY до minY и возвращает первую позицию,
// где коллайдер свободен, а под ним есть опора
func FindGround(occupancy Occupancy, collider *BoxCollider, x, z, fromY, minY int) (vec.Vec3, bool) {
	for y := fromY; y > minY; y-- {
		pos := vec.Vec3{X: x, Y: y, Z: z}
		if !CanMoveToPosition(pos, collider, occupancy) {
			continue
		}
		if occupancy.IsBlocked(vec.Vec3{X: x, Y: y - 1, Z: z}) {
			return pos, true
		}
	}
	return vec.Vec3{}, false
}
