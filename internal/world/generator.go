package world

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// TerrainGenerator заполняет только что созданный чанк.
// rng детерминирован для пары (сид мира, координаты чанка).
type TerrainGenerator interface {
	Generate(c *Chunk, rng *rand.Rand)
}

// Palette типы слоёв рельефа
type Palette struct {
	Surface    *block.Type // верхний воксель колонки
	Subsurface *block.Type // два вокселя под поверхностью
	Deep       *block.Type // всё, что ниже
}

// DefaultPalette трава, земля и камень из встроенного каталога
func DefaultPalette() Palette {
	return Palette{
		Surface:    implementations.Grass,
		Subsurface: implementations.Dirt,
		Deep:       implementations.Stone,
	}
}

// Classify выбирает тип для высоты y в колонке с высотой h и порогом глубины d.
// Колонка высоты h занимает y от 0 до h-1: верхний воксель - поверхность,
// два под ним - подповерхностный слой, ниже - глубинный. Всё ниже d пусто.
func (p Palette) Classify(y, h, d int) *block.Type {
	if y < d || y >= h {
		return block.Null
	}
	switch {
	case y == h-1:
		return p.Surface
	case y >= h-3:
		return p.Subsurface
	default:
		return p.Deep
	}
}

// FillFromMaps заполняет чанк по картам высот и глубин, индексированным [x][z]
// в локальных координатах чанка
func FillFromMaps(c *Chunk, heights, depths [][]int, p Palette) {
	fillColumns(c, heights, depths, p, 0)
}

// fillColumns заполняет колонки; baseY - мировая высота нижней ячейки чанка
func fillColumns(c *Chunk, heights, depths [][]int, p Palette, baseY int) {
	size := c.Size()
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			h, d := heights[x][z], depths[x][z]
			for y := 0; y < size; y++ {
				t := p.Classify(baseY+y, h, d)
				if t.IsNull() {
					continue
				}
				c.SetCell(x, y, z, NewCell(t))
			}
		}
	}
}

// HeuristicTerrain холмы со случайно изрезанным низом.
// Каждый чанк генерируется независимо от соседей.
type HeuristicTerrain struct {
	Palette Palette
	// RandomShapes случайно поворачивает непустые ячейки и делает треть из них клиньями
	RandomShapes bool
}

// NewHeuristicTerrain создаёт генератор со встроенной палитрой
func NewHeuristicTerrain() *HeuristicTerrain {
	return &HeuristicTerrain{Palette: DefaultPalette()}
}

// Generate заполняет чанк
func (g *HeuristicTerrain) Generate(c *Chunk, rng *rand.Rand) {
	heights, depths := HeightDepthMaps(c.Size(), rng)
	FillFromMaps(c, heights, depths, g.Palette)

	if g.RandomShapes {
		randomizeShapes(c, rng)
	}
}

// HeightDepthMaps строит сглаженные карты высот и глубин для чанка размера size.
// Высота случайна в [size/2, size), порог глубины растёт к краям чанка.
func HeightDepthMaps(size int, rng *rand.Rand) (heights, depths [][]int) {
	heights = newMap(size)
	depths = newMap(size)
	half := float64(size) / 2

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			heights[x][z] = size/2 + rng.Intn(size-size/2)

			a := int(math.RoundToEven(math.Abs(float64(x) - half)))
			b := int(math.RoundToEven(math.Abs(float64(z) - half)))
			lo, hi := (a+b)/2-1, size/2+5
			if hi > lo {
				depths[x][z] = lo + rng.Intn(hi-lo)
			} else {
				depths[x][z] = lo
			}
		}
	}

	// три прохода сглаживания, карта глубин только в первых двух
	for pass := 0; pass < 3; pass++ {
		heights = smoothMap(heights)
		if pass < 2 {
			depths = smoothMap(depths)
		}
	}
	return heights, depths
}

// smoothMap усредняет каждую клетку с соседями 3×3 внутри карты
func smoothMap(src [][]int) [][]int {
	size := len(src)
	dst := newMap(size)
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			sum, n := 0, 0
			for dx := -1; dx <= 1; dx++ {
				for dz := -1; dz <= 1; dz++ {
					nx, nz := x+dx, z+dz
					if nx < 0 || nx >= size || nz < 0 || nz >= size {
						continue
					}
					sum += src[nx][nz]
					n++
				}
			}
			// половины округляются к чётному
			dst[x][z] = int(math.RoundToEven(float64(sum) / float64(n)))
		}
	}
	return dst
}

func newMap(size int) [][]int {
	m := make([][]int, size)
	for i := range m {
		m[i] = make([]int, size)
	}
	return m
}

func randomizeShapes(c *Chunk, rng *rand.Rand) {
	size := c.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				cell := c.Cell(x, y, z)
				if cell.IsEmpty() {
					continue
				}
				cell.orient(direction.Direction(rng.Intn(direction.Count)), 90*rng.Intn(4))
				if rng.Intn(3) == 0 {
					cell.SetStyle(StyleWedge)
				}
				c.SetCell(x, y, z, cell)
			}
		}
	}
}

// PerlinTerrain рельеф по шуму Перлина в мировых координатах,
// поэтому соседние чанки стыкуются без швов
type PerlinTerrain struct {
	Palette   Palette
	Scale     float64 // масштаб координат для шума
	MinHeight int     // мировая высота при нулевом шуме
	MaxHeight int     // мировая высота при единичном шуме

	noise *util.Noise
}

// NewPerlinTerrain создаёт генератор с параметрами по умолчанию
func NewPerlinTerrain(seed int64, p Palette) *PerlinTerrain {
	return &PerlinTerrain{
		Palette:   p,
		Scale:     0.05,
		MinHeight: 4,
		MaxHeight: 28,
		noise:     util.NewNoise(seed),
	}
}

// HeightAt возвращает мировую высоту колонки (x, z)
func (g *PerlinTerrain) HeightAt(x, z int) int {
	n := g.noise.Noise2D(float64(x)*g.Scale, float64(z)*g.Scale)
	return g.MinHeight + int(math.Round(n*float64(g.MaxHeight-g.MinHeight)))
}

// Generate заполняет чанк; rng не используется, рельеф зависит только от сида шума
func (g *PerlinTerrain) Generate(c *Chunk, _ *rand.Rand) {
	size := c.Size()
	origin := c.Origin()

	heights := newMap(size)
	depths := newMap(size)
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			heights[x][z] = g.HeightAt(origin.X+x, origin.Z+z)
			depths[x][z] = math.MinInt32
		}
	}
	fillColumns(c, heights, depths, g.Palette, origin.Y)
}
