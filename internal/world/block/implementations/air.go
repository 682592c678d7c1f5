package implementations

import "github.com/annel0/voxel-world/internal/world/block"

// Air пустота. Это тот же тип, что и block.Null, под привычным именем.
var Air = block.Null
