package block

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/world/direction"
)

// Параметры атласа: клетка 16 единиц в атласе 288 единиц с отступом 1 единица
// с каждой стороны, чтобы фильтрация не захватывала соседние текстуры.
const (
	AtlasSize         = 288
	TextureDimension  = float32(16) / AtlasSize
	TexturePadding    = float32(1) / AtlasSize
	UVSizeWithPadding = TextureDimension + TexturePadding*2
)

// FaceTexture клетка атласа и номер сабмеша для одной грани
type FaceTexture struct {
	X       uint8
	Y       uint8
	SubMesh uint8
}

// Textures текстуры для всех шести граней
type Textures [direction.Count]FaceTexture

// UVRect прямоугольник в UV-пространстве
type UVRect struct {
	Min  mgl32.Vec2
	Size mgl32.Vec2
}

// Corners возвращает углы прямоугольника в порядке:
// (min), (min + высота), (max), (min + ширина)
func (r UVRect) Corners() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		r.Min,
		r.Min.Add(mgl32.Vec2{0, r.Size.Y()}),
		r.Min.Add(r.Size),
		r.Min.Add(mgl32.Vec2{r.Size.X(), 0}),
	}
}

// Center возвращает центр прямоугольника
func (r UVRect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Size.Mul(0.5))
}

// UniformTextures использует одну клетку атласа для всех граней
func UniformTextures(x, y, subMesh uint8) Textures {
	var t Textures
	for i := range t {
		t[i] = FaceTexture{X: x, Y: y, SubMesh: subMesh}
	}
	return t
}

// With возвращает копию с другой текстурой для грани dir
func (t Textures) With(dir direction.Direction, x, y uint8) Textures {
	t[dir].X = x
	t[dir].Y = y
	return t
}

// WithSubMesh возвращает копию с другим сабмешем для грани dir
func (t Textures) WithSubMesh(dir direction.Direction, subMesh uint8) Textures {
	t[dir].SubMesh = subMesh
	return t
}

// Face возвращает текстуру грани
func (t Textures) Face(dir direction.Direction) FaceTexture {
	return t[dir]
}

// Rect возвращает UV-прямоугольник текстуры грани dir с учётом отступов
func (t Textures) Rect(dir direction.Direction) UVRect {
	f := t[dir]
	origin := mgl32.Vec2{float32(f.X), float32(f.Y)}.Mul(UVSizeWithPadding).Add(mgl32.Vec2{TexturePadding, TexturePadding})
	return UVRect{
		Min:  origin,
		Size: mgl32.Vec2{TextureDimension, TextureDimension},
	}
}

// MaxSubMesh возвращает наибольший номер сабмеша среди граней
func (t Textures) MaxSubMesh() int {
	highest := 0
	for _, f := range t {
		if int(f.SubMesh) > highest {
			highest = int(f.SubMesh)
		}
	}
	return highest
}
