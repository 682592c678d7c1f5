package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// RotatoID идентификатор отладочного типа
var RotatoID = block.ID{ID: 4}

// Rotato отладочный тип: у каждой грани своя текстура,
// поэтому на нём хорошо видно ориентацию и поворот
var Rotato = block.NewType(RotatoID, "Rotato",
	block.WithTextures(block.UniformTextures(0, 3, 0).
		With(direction.Up, 0, 1).
		With(direction.Down, 1, 0).
		With(direction.North, 1, 1).
		With(direction.South, 1, 2).
		With(direction.East, 1, 3).
		With(direction.West, 1, 4)),
)
