package world

import "github.com/annel0/voxel-world/internal/vec"

// PositionHelper переводит координаты между мировыми вокселями,
// чанками и ячейками внутри чанка
type PositionHelper struct {
	chunkSize int
}

// NewPositionHelper создаёт помощник для заданного размера чанка
func NewPositionHelper(chunkSize int) PositionHelper {
	return PositionHelper{chunkSize: chunkSize}
}

// WorldToChunk возвращает координаты чанка, содержащего воксель (округление вниз)
func (p PositionHelper) WorldToChunk(worldPos vec.Vec3) vec.Vec3 {
	return worldPos.FloorDiv(p.chunkSize)
}

// WorldToLocal возвращает координаты вокселя внутри его чанка, всегда в [0, size)
func (p PositionHelper) WorldToLocal(worldPos vec.Vec3) vec.Vec3 {
	return worldPos.PosMod(p.chunkSize)
}

// ChunkToWorld возвращает мировые координаты начала чанка
func (p PositionHelper) ChunkToWorld(chunkPos vec.Vec3) vec.Vec3 {
	return chunkPos.Mul(p.chunkSize)
}
