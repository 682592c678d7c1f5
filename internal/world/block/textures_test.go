package block

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-world/internal/world/direction"
)

func TestTextureRect(t *testing.T) {
	tex := UniformTextures(0, 0, 0).With(direction.North, 2, 3)

	r := tex.Rect(direction.Up)
	assert.InDelta(t, 1.0/288, r.Min.X(), 1e-6)
	assert.InDelta(t, 1.0/288, r.Min.Y(), 1e-6)
	assert.InDelta(t, 16.0/288, r.Size.X(), 1e-6)

	r = tex.Rect(direction.North)
	assert.InDelta(t, 2*18.0/288+1.0/288, r.Min.X(), 1e-6)
	assert.InDelta(t, 3*18.0/288+1.0/288, r.Min.Y(), 1e-6)
}

func TestUVRectCorners(t *testing.T) {
	r := UVRect{Min: mgl32.Vec2{1, 2}, Size: mgl32.Vec2{3, 4}}
	c := r.Corners()

	assert.Equal(t, mgl32.Vec2{1, 2}, c[0])
	assert.Equal(t, mgl32.Vec2{1, 6}, c[1])
	assert.Equal(t, mgl32.Vec2{4, 6}, c[2])
	assert.Equal(t, mgl32.Vec2{4, 2}, c[3])
	assert.Equal(t, mgl32.Vec2{2.5, 4}, r.Center())
}

func TestTexturesWithIsCopy(t *testing.T) {
	base := UniformTextures(1, 1, 0)
	changed := base.With(direction.Up, 5, 5)

	assert.Equal(t, FaceTexture{X: 1, Y: 1}, base.Face(direction.Up))
	assert.Equal(t, FaceTexture{X: 5, Y: 5}, changed.Face(direction.Up))
}
