package implementations

import "github.com/annel0/voxel-world/internal/world/block"

// DirtID идентификатор земли
var DirtID = block.ID{ID: 1}

// Dirt земля: слой под травой
var Dirt = block.NewType(DirtID, "Dirt",
	block.WithTextures(block.UniformTextures(0, 3, 0)),
)
