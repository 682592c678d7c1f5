package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/world/direction"
)

// Единичные углы граней куба; умножаются на полуразмер вокселя.
// Порядок вершин общий для видимой сетки и сетки коллизий.
var quadCorners = [direction.Count][4]mgl32.Vec3{
	direction.Up:    {{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	direction.Down:  {{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	direction.North: {{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}},
	direction.East:  {{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
	direction.South: {{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},
	direction.West:  {{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}},
}

func faceCorners(position mgl32.Vec3, dir direction.Direction, half float32) [4]mgl32.Vec3 {
	var out [4]mgl32.Vec3
	for i, c := range quadCorners[dir] {
		out[i] = position.Add(c.Mul(half))
	}
	return out
}
