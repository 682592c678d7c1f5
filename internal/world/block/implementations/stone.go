package implementations

import "github.com/annel0/voxel-world/internal/world/block"

// StoneID идентификатор камня
var StoneID = block.ID{ID: 2}

// Stone камень: всё, что глубже трёх вокселей от поверхности
var Stone = block.NewType(StoneID, "Stone",
	block.WithTextures(block.UniformTextures(0, 2, 0)),
)
