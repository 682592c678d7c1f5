package meshing

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// ErrUnsupportedStyle для стиля вокселя нет генератора геометрии
var ErrUnsupportedStyle = errors.New("стиль вокселя не поддерживается генератором сетки")

// AddSimpleBlock добавляет неповёрнутый куб: по грани на каждое видимое направление,
// в котором у типа есть грань.
func AddSimpleBlock(md *MeshData, position mgl32.Vec3, visibility direction.Mask, t *block.Type, voxelSize float32) error {
	half := voxelSize / 2
	textures := t.Textures()

	for _, dir := range direction.All {
		if !visibility.Get(dir) || !t.HasFace(dir) {
			continue
		}
		face := textures.Face(dir)

		md.AddQuad(position, dir, half, int(face.SubMesh))
		md.AddQuadToCollider(position, dir, half)
		md.AddQuadUVs(textures.Rect(dir), dir)
	}
	return nil
}

// AddComplexBlock добавляет куб с ориентацией и поворотом.
// Видимость задана в глобальных направлениях, грани и текстуры типа - в локальных.
func AddComplexBlock(md *MeshData, position mgl32.Vec3, orientation direction.Direction, rotation int,
	visibility direction.Mask, t *block.Type, voxelSize float32) error {
	half := voxelSize / 2
	textures := t.Textures()

	for _, global := range direction.All {
		if !visibility.Get(global) {
			continue
		}
		local := direction.GlobalToLocal(global, orientation, rotation)
		if !t.HasFace(local) {
			continue
		}

		md.AddQuad(position, global, half, int(textures.Face(local).SubMesh))
		md.AddQuadToCollider(position, global, half)

		uvs := rotatedUVs(textures.Rect(local), direction.UVRotation(global, orientation, rotation))
		for _, uv := range uvs {
			md.AddUV(uv)
		}
	}
	return nil
}

// AddComplexWedge добавляет клин: скат, прямоугольные грани (локальные South и Down)
// и треугольные бока (локальные East и West). Скат добавляется не больше одного раза.
func AddComplexWedge(md *MeshData, position mgl32.Vec3, orientation direction.Direction, rotation int,
	visibility direction.Mask, t *block.Type, voxelSize float32) error {
	half := voxelSize / 2
	textures := t.Textures()
	step := rotation / 90
	slopeDone := false

	for _, global := range direction.All {
		if !visibility.Get(global) {
			continue
		}
		local := direction.GlobalToLocal(global, orientation, rotation)
		if !t.HasFace(local) {
			continue
		}

		switch local {
		case direction.Up, direction.North, direction.East, direction.West:
			if !slopeDone {
				uvs := rotatedUVs(textures.Rect(direction.Up), direction.UVRotation(direction.Up, orientation, rotation))
				addWedgeFace(md, wedgeMeshMap[orientation][step][orientation], position, half,
					uvs, int(textures.Face(direction.Up).SubMesh))
				slopeDone = true
			}
		}

		switch local {
		case direction.South, direction.Down, direction.East, direction.West:
			uvs := rotatedUVs(textures.Rect(local), direction.UVRotation(global, orientation, rotation))
			addWedgeFace(md, wedgeMeshMap[orientation][step][global], position, half,
				uvs, int(textures.Face(local).SubMesh))
		}
	}
	return nil
}

// AddComplexCorner генератор угла пока не реализован
func AddComplexCorner(md *MeshData, position mgl32.Vec3, orientation direction.Direction, rotation int,
	visibility direction.Mask, t *block.Type, voxelSize float32) error {
	return ErrUnsupportedStyle
}

// AddComplexInverseCorner генератор внутреннего угла пока не реализован
func AddComplexInverseCorner(md *MeshData, position mgl32.Vec3, orientation direction.Direction, rotation int,
	visibility direction.Mask, t *block.Type, voxelSize float32) error {
	return ErrUnsupportedStyle
}

// addWedgeFace выбирает четырёхугольник или треугольник по числу вершин в таблице
func addWedgeFace(md *MeshData, face wedgeFace, position mgl32.Vec3, half float32, uvs [4]mgl32.Vec2, subMesh int) {
	var v [4]mgl32.Vec3
	for i := 0; i < face.n; i++ {
		v[i] = mgl32.Vec3(face.verts[i]).Mul(half).Add(position)
	}

	switch face.n {
	case 4:
		md.AddQuadVerts(v[0], v[1], v[2], v[3], subMesh)
		md.AddQuadVertsToCollider(v[0], v[1], v[2], v[3])
	case 3:
		md.AddTriangleVerts(v[0], v[1], v[2], subMesh)
		md.AddTriangleVertsToCollider(v[0], v[1], v[2])
	default:
		return
	}

	for i := 0; i < face.n; i++ {
		md.AddUV(uvs[face.uv[i]])
	}
}

// rotatedUVs возвращает углы клетки атласа (min, min+h, max, min+w),
// повёрнутые вокруг центра клетки на degrees градусов
func rotatedUVs(rect block.UVRect, degrees int) [4]mgl32.Vec2 {
	corners := rect.Corners()
	if degrees == 0 {
		return corners
	}

	center := rect.Center()
	rot := mgl32.Rotate2D(mgl32.DegToRad(float32(degrees)))
	for i, c := range corners {
		corners[i] = rot.Mul2x1(c.Sub(center)).Add(center)
	}
	return corners
}
