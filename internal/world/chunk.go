package world

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// DefaultChunkSize длина ребра чанка в вокселях
const DefaultChunkSize = 16

// Chunk куб size×size×size ячеек.
// Мир владеет чанком, чанк хранит только ссылку на мир для проверки соседей.
// Ячейки можно менять только пока чанк не участвует в построении сетки.
type Chunk struct {
	world  *World
	coords vec.Vec3
	size   int
	cells  []Cell
}

// NewChunk создаёт чанк, заполненный пустыми ячейками.
// Размер берётся из настроек мира; без мира используется DefaultChunkSize.
func NewChunk(w *World, coords vec.Vec3) *Chunk {
	size := DefaultChunkSize
	if w != nil {
		size = w.settings.ChunkSize
	}
	return newChunk(w, coords, size)
}

func newChunk(w *World, coords vec.Vec3, size int) *Chunk {
	c := &Chunk{
		world:  w,
		coords: coords,
		size:   size,
		cells:  make([]Cell, size*size*size),
	}
	for i := range c.cells {
		c.cells[i] = NullCell
	}
	return c
}

// Coords возвращает координаты чанка в сетке чанков
func (c *Chunk) Coords() vec.Vec3 {
	return c.coords
}

// Size возвращает длину ребра в вокселях
func (c *Chunk) Size() int {
	return c.size
}

// World возвращает мир, которому принадлежит чанк (может быть nil)
func (c *Chunk) World() *World {
	return c.world
}

// Origin возвращает мировые координаты ячейки (0, 0, 0) чанка
func (c *Chunk) Origin() vec.Vec3 {
	return c.coords.Mul(c.size)
}

// IsInChunk проверяет, что локальные координаты внутри чанка
func (c *Chunk) IsInChunk(x, y, z int) bool {
	return x >= 0 && x < c.size &&
		y >= 0 && y < c.size &&
		z >= 0 && z < c.size
}

func (c *Chunk) index(x, y, z int) int {
	if !c.IsInChunk(x, y, z) {
		panic(fmt.Sprintf("world: координаты (%d, %d, %d) вне чанка размера %d", x, y, z, c.size))
	}
	return (x*c.size+y)*c.size + z
}

// Cell возвращает ячейку по локальным координатам
func (c *Chunk) Cell(x, y, z int) Cell {
	return c.cells[c.index(x, y, z)]
}

// CellAt то же, что Cell, для вектора
func (c *Chunk) CellAt(local vec.Vec3) Cell {
	return c.Cell(local.X, local.Y, local.Z)
}

// SetCell записывает ячейку по локальным координатам
func (c *Chunk) SetCell(x, y, z int, cell Cell) {
	if cell.Type == nil {
		cell = NullCell
	}
	c.cells[c.index(x, y, z)] = cell
}

// SetCellAt то же, что SetCell, для вектора
func (c *Chunk) SetCellAt(local vec.Vec3, cell Cell) {
	c.SetCell(local.X, local.Y, local.Z, cell)
}

// IsSolid проверяет непрозрачность грани dir ячейки local.
// Координаты за пределами чанка передаются миру; без мира сосед считается пустым.
func (c *Chunk) IsSolid(local vec.Vec3, dir direction.Direction) bool {
	if c.IsInChunk(local.X, local.Y, local.Z) {
		return c.CellAt(local).IsSolid(dir)
	}
	if c.world == nil {
		return false
	}
	return c.world.IsSolid(c.Origin().Add(local), dir)
}

// ForEach обходит все ячейки в порядке x, y, z
func (c *Chunk) ForEach(fn func(local vec.Vec3, cell Cell)) {
	i := 0
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.size; y++ {
			for z := 0; z < c.size; z++ {
				fn(vec.Vec3{X: x, Y: y, Z: z}, c.cells[i])
				i++
			}
		}
	}
}

// CountNonEmpty возвращает количество непустых ячеек
func (c *Chunk) CountNonEmpty() int {
	n := 0
	for _, cell := range c.cells {
		if !cell.IsEmpty() {
			n++
		}
	}
	return n
}

// SubMeshesUsed число сабмешей, нужное типам непустых ячеек чанка.
// Учитывает и типы, не зарегистрированные в каталоге мира.
func (c *Chunk) SubMeshesUsed() int {
	highest := 0
	for _, cell := range c.cells {
		if cell.IsEmpty() {
			continue
		}
		if n := cell.Type.Textures().MaxSubMesh(); n > highest {
			highest = n
		}
	}
	return highest + 1
}

func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk%s", c.coords)
}
