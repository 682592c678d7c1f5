package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// GrassID идентификатор травы
var GrassID = block.ID{ID: 3}

// Grass трава: боковые грани и низ как у земли, верх зелёный
var Grass = block.NewType(GrassID, "Grass",
	block.WithTextures(block.UniformTextures(0, 3, 0).With(direction.Up, 0, 1)),
)
