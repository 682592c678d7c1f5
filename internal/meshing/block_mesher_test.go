package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

var testType = block.NewType(block.ID{ID: 1}, "Test",
	block.WithTextures(block.UniformTextures(0, 3, 0).
		With(direction.Up, 0, 1).
		With(direction.Down, 1, 0).
		With(direction.North, 1, 1).
		With(direction.South, 1, 2).
		With(direction.East, 1, 3).
		With(direction.West, 1, 4)),
)

var allVisible = direction.NewMask(true)

func TestSimpleBlockAllFaces(t *testing.T) {
	md := NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, allVisible, testType, 1))

	stats := md.Stats()
	assert.Equal(t, 24, stats.Vertices)
	assert.Equal(t, 12, stats.Triangles, "36 индексов")
	assert.Equal(t, 24, stats.UVs)
	assert.Equal(t, 24, stats.ColliderVertices)
	assert.Equal(t, 12, stats.ColliderTriangles)

	b := md.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, b.Min, "полуразмер равен половине вокселя")
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, b.Max)
}

func TestSimpleBlockNothingVisible(t *testing.T) {
	md := NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, direction.NewMask(false), testType, 1))
	assert.True(t, md.IsEmpty())
	assert.Equal(t, Stats{}, md.Stats())
}

func TestSimpleBlockRespectsFaces(t *testing.T) {
	slab := block.NewType(block.ID{ID: 2}, "Slab", block.WithFaces(direction.MaskOf(direction.Up)))

	md := NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, allVisible, slab, 1))
	assert.Equal(t, 4, md.Stats().Vertices)

	md = NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, direction.MaskOf(direction.Down), slab, 1))
	assert.True(t, md.IsEmpty(), "видимая грань без грани у типа не рисуется")

	md = NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, allVisible, block.Null, 1))
	assert.True(t, md.IsEmpty())
}

func TestSimpleBlockUsesFaceSubMesh(t *testing.T) {
	tex := block.UniformTextures(0, 0, 0).WithSubMesh(direction.Up, 1)
	glassTop := block.NewType(block.ID{ID: 3}, "GlassTop", block.WithTextures(tex))

	md := NewMeshData(2)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, allVisible, glassTop, 1))
	assert.Len(t, md.triangles[0], 5*6)
	assert.Len(t, md.triangles[1], 6)

	assert.Panics(t, func() {
		_ = AddSimpleBlock(NewMeshData(1), mgl32.Vec3{}, allVisible, glassTop, 1)
	})
}

func TestSimpleBlockUVsInsideTextureCell(t *testing.T) {
	md := NewMeshData(1)
	require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, direction.MaskOf(direction.Up), testType, 1))

	rect := testType.Textures().Rect(direction.Up)
	require.Len(t, md.uvs, 4)
	assert.Equal(t, rect.Corners()[1], md.uvs[0])
	assert.Equal(t, rect.Corners()[0], md.uvs[3])
}

func TestComplexBlockIdentityMatchesSimple(t *testing.T) {
	simple := NewMeshData(1)
	require.NoError(t, AddSimpleBlock(simple, mgl32.Vec3{1, 2, 3}, allVisible, testType, 2))

	complexMD := NewMeshData(1)
	require.NoError(t, AddComplexBlock(complexMD, mgl32.Vec3{1, 2, 3}, direction.Up, 0, allVisible, testType, 2))

	assert.Equal(t, simple.vertices, complexMD.vertices)
	assert.Equal(t, simple.Stats(), complexMD.Stats())
}

func TestComplexBlockTextureFollowsOrientation(t *testing.T) {
	for _, o := range direction.All {
		for r := 0; r < 360; r += 90 {
			md := NewMeshData(1)
			require.NoError(t, AddComplexBlock(md, mgl32.Vec3{}, o, r, direction.MaskOf(o), testType, 1))
			require.Len(t, md.uvs, 4)

			// глобальная грань ориентации - это локальный верх
			rect := testType.Textures().Rect(direction.Up)
			for _, uv := range md.uvs {
				assertInRect(t, rect, uv)
			}
		}
	}
}

func TestComplexBlockSkipsMissingLocalFace(t *testing.T) {
	topOnly := block.NewType(block.ID{ID: 4}, "TopOnly", block.WithFaces(direction.MaskOf(direction.Up)))

	md := NewMeshData(1)
	require.NoError(t, AddComplexBlock(md, mgl32.Vec3{}, direction.North, 0, allVisible, topOnly, 1))
	require.Equal(t, 4, md.Stats().Vertices)

	// единственная грань смотрит на север
	for _, v := range md.vertices {
		assert.Equal(t, float32(0.5), v.Z())
	}
}

func TestWedgeAllOrientations(t *testing.T) {
	for _, o := range direction.All {
		for r := 0; r < 360; r += 90 {
			md := NewMeshData(1)
			require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, allVisible, testType, 1))

			// скат + два прямоугольника + два треугольника
			stats := md.Stats()
			assert.Equal(t, 3*4+2*3, stats.Vertices, "o=%s r=%d", o, r)
			assert.Equal(t, 3*2+2, stats.Triangles, "o=%s r=%d", o, r)
			assert.Equal(t, stats.Vertices, stats.UVs)
			assert.Equal(t, stats.Vertices, stats.ColliderVertices)

			b := md.Bounds()
			assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, b.Min, "o=%s r=%d", o, r)
			assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, b.Max, "o=%s r=%d", o, r)
		}
	}
}

func TestWedgeSlopeOnce(t *testing.T) {
	for _, o := range direction.All {
		for r := 0; r < 360; r += 90 {
			slope := wedgeMeshMap[o][r/90][o]
			require.Equal(t, 4, slope.n)

			md := NewMeshData(1)
			require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, allVisible, testType, 1))

			found := 0
			for i := 0; i+4 <= len(md.vertices); i++ {
				if matchesFace(md.vertices[i:i+4], slope, 0.5) {
					found++
				}
			}
			assert.Equal(t, 1, found, "скат должен быть ровно один: o=%s r=%d", o, r)
		}
	}
}

func TestWedgeSingleFaces(t *testing.T) {
	o, r := direction.Up, 0

	// локальный верх: только скат
	md := NewMeshData(1)
	require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, direction.MaskOf(direction.Up), testType, 1))
	assert.Equal(t, 4, md.Stats().Vertices)

	// локальный низ: прямоугольник
	md = NewMeshData(1)
	require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, direction.MaskOf(direction.Down), testType, 1))
	assert.Equal(t, 4, md.Stats().Vertices)

	// локальный восток: скат и треугольник
	md = NewMeshData(1)
	require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, direction.MaskOf(direction.East), testType, 1))
	assert.Equal(t, 7, md.Stats().Vertices)
	assert.Equal(t, 3, md.Stats().Triangles)

	// локальный север не используется, но открывает скат
	md = NewMeshData(1)
	require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, direction.MaskOf(direction.North), testType, 1))
	assert.Equal(t, 4, md.Stats().Vertices)
}

func TestWedgeTableShape(t *testing.T) {
	for _, o := range direction.All {
		for step := 0; step < 4; step++ {
			for _, d := range direction.All {
				face := wedgeMeshMap[o][step][d]
				local := direction.GlobalToLocal(d, o, step*90)
				switch local {
				case direction.Up, direction.South, direction.Down:
					assert.Equal(t, 4, face.n, "o=%s r=%d d=%s", o, step*90, d)
				case direction.East, direction.West:
					assert.Equal(t, 3, face.n, "o=%s r=%d d=%s", o, step*90, d)
				case direction.North:
					assert.Equal(t, 0, face.n, "o=%s r=%d d=%s", o, step*90, d)
				}
			}
		}
	}
}

func TestCornerStylesUnsupported(t *testing.T) {
	md := NewMeshData(1)
	err := AddComplexCorner(md, mgl32.Vec3{}, direction.Up, 0, allVisible, testType, 1)
	assert.ErrorIs(t, err, ErrUnsupportedStyle)

	err = AddComplexInverseCorner(md, mgl32.Vec3{}, direction.Up, 0, allVisible, testType, 1)
	assert.ErrorIs(t, err, ErrUnsupportedStyle)
	assert.True(t, md.IsEmpty())
}

func TestRotatedUVs(t *testing.T) {
	rect := block.UVRect{Min: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{2, 2}}
	c := rect.Corners()

	assert.Equal(t, c, rotatedUVs(rect, 0))

	got := rotatedUVs(rect, 90)
	assertVec2(t, c[3], got[0])
	assertVec2(t, c[0], got[1])
	assertVec2(t, c[1], got[2])
	assertVec2(t, c[2], got[3])

	got = rotatedUVs(rect, 180)
	assertVec2(t, c[2], got[0])
	assertVec2(t, c[0], got[2])
}

func assertVec2(t *testing.T, want, got mgl32.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-5)
	assert.InDelta(t, want.Y(), got.Y(), 1e-5)
}

func assertInRect(t *testing.T, rect block.UVRect, uv mgl32.Vec2) {
	t.Helper()
	const eps = 1e-5
	assert.GreaterOrEqual(t, uv.X(), rect.Min.X()-eps)
	assert.GreaterOrEqual(t, uv.Y(), rect.Min.Y()-eps)
	assert.LessOrEqual(t, uv.X(), rect.Min.X()+rect.Size.X()+eps)
	assert.LessOrEqual(t, uv.Y(), rect.Min.Y()+rect.Size.Y()+eps)
}

func matchesFace(verts []mgl32.Vec3, face wedgeFace, half float32) bool {
	for i := 0; i < face.n; i++ {
		if !verts[i].ApproxEqual(mgl32.Vec3(face.verts[i]).Mul(half)) {
			return false
		}
	}
	return true
}

func TestFacelessTypeEmitsNothingOnComplexPaths(t *testing.T) {
	ghost := block.NewType(block.ID{ID: 40}, "Ghost",
		block.WithFaces(direction.NewMask(false)),
		block.WithSolidity(direction.NewMask(true)))
	all := direction.NewMask(true)

	for _, o := range direction.All {
		for r := 0; r < 360; r += 90 {
			md := NewMeshData(1)
			require.NoError(t, AddComplexBlock(md, mgl32.Vec3{}, o, r, all, ghost, 1))
			require.NoError(t, AddComplexWedge(md, mgl32.Vec3{}, o, r, all, ghost, 1))
			require.NoError(t, AddSimpleBlock(md, mgl32.Vec3{}, all, ghost, 1))
			assert.True(t, md.IsEmpty(), "ориентация %s, поворот %d", o, r)
		}
	}
}
