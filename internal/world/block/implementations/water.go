package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// WaterID идентификатор воды
var WaterID = block.ID{ID: 5}

// WaterSubMesh отдельный сабмеш для прозрачного материала
const WaterSubMesh = 1

// Water вода: все грани есть, но ни одна не перекрывает соседей,
// поэтому под водой остаются видимые грани дна
var Water = block.NewType(WaterID, "Water",
	block.WithSolidity(direction.NewMask(false)),
	block.WithTextures(block.UniformTextures(2, 0, WaterSubMesh)),
)
