package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

// ErrInvalidOrientation ориентация вне шести допустимых направлений
var ErrInvalidOrientation = errors.New("недопустимая ориентация вокселя")

// Style форма повёрнутого вокселя
type Style uint8

const (
	StyleBlock Style = iota
	StyleWedge
	StyleCorner
	StyleInverseCorner
)

func (s Style) String() string {
	switch s {
	case StyleBlock:
		return "Block"
	case StyleWedge:
		return "Wedge"
	case StyleCorner:
		return "Corner"
	case StyleInverseCorner:
		return "InverseCorner"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// ShapeKind простой куб или воксель с ориентацией и стилем
type ShapeKind uint8

const (
	ShapeSimple ShapeKind = iota
	ShapeComplex
)

// Shape геометрия ячейки. Для ShapeSimple остальные поля не используются.
type Shape struct {
	Kind        ShapeKind
	Style       Style
	Orientation direction.Direction // локальный "верх" после поворота
	Rotation    int                 // 0, 90, 180 или 270 вокруг оси ориентации
}

// Cell состояние одной ячейки сетки: ссылка на общий тип и форма
type Cell struct {
	Type  *block.Type
	Shape Shape
}

// NullCell пустая ячейка (воздух)
var NullCell = Cell{Type: block.Null}

// NewCell создаёт простую ячейку
func NewCell(t *block.Type) Cell {
	if t == nil {
		t = block.Null
	}
	return Cell{Type: t}
}

// NewComplexCell создаёт ячейку со стилем, ориентацией Up и без поворота
func NewComplexCell(t *block.Type, style Style) Cell {
	c := NewCell(t)
	c.Shape = Shape{Kind: ShapeComplex, Style: style, Orientation: direction.Up}
	return c
}

// IsEmpty возвращает true для пустой ячейки
func (c Cell) IsEmpty() bool {
	return c.Type == nil || c.Type.IsNull()
}

// IsComplex возвращает true, если у ячейки есть ориентация и стиль
func (c Cell) IsComplex() bool {
	return c.Shape.Kind == ShapeComplex
}

func (c Cell) typ() *block.Type {
	if c.Type == nil {
		return block.Null
	}
	return c.Type
}

// OrientRotate задаёт ориентацию и поворот. Поворот должен быть неотрицательным
// и кратным 90, значения больше 270 сворачиваются по модулю 360.
// При ошибке ячейка не меняется. Простая ячейка становится блоком со стилем Block.
func (c *Cell) OrientRotate(orientation direction.Direction, rotation int) error {
	if !orientation.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrientation, orientation)
	}
	normalized, err := direction.NormalizeRotation(rotation)
	if err != nil {
		return err
	}

	c.orient(orientation, normalized)
	return nil
}

// orient без проверок: orientation допустима, rotation из {0, 90, 180, 270}
func (c *Cell) orient(orientation direction.Direction, rotation int) {
	if c.Shape.Kind == ShapeSimple {
		c.Shape = Shape{Kind: ShapeComplex, Style: StyleBlock}
	}
	c.Shape.Orientation = orientation
	c.Shape.Rotation = rotation
}

// SetStyle задаёт стиль; простая ячейка становится ячейкой с ориентацией Up
func (c *Cell) SetStyle(style Style) {
	if c.Shape.Kind == ShapeSimple {
		c.Shape = Shape{Kind: ShapeComplex, Orientation: direction.Up}
	}
	c.Shape.Style = style
}

// IsSolid возвращает true, если грань ячейки в глобальном направлении dir
// непрозрачна и скрывает соседнюю грань
func (c Cell) IsSolid(dir direction.Direction) bool {
	t := c.typ()
	if c.Shape.Kind == ShapeSimple {
		return t.IsSolid(dir)
	}

	local := direction.GlobalToLocal(dir, c.Shape.Orientation, c.Shape.Rotation)
	switch c.Shape.Style {
	case StyleWedge:
		// у клина полные грани только сзади и снизу
		if local != direction.South && local != direction.Down {
			return false
		}
		return t.IsSolid(local)
	default:
		return t.IsSolid(local)
	}
}

// Visibility собирает маску видимых граней: грань видна, если сосед
// в этом направлении не закрывает её своей противоположной гранью
func Visibility(chunk *Chunk, local vec.Vec3) direction.Mask {
	var m direction.Mask
	for _, dir := range direction.All {
		m[dir] = !chunk.IsSolid(local.Add(dir.Offset()), dir.Opposite())
	}
	return m
}

// AddMeshData добавляет геометрию ячейки в буфер.
// local - координаты в чанке для проверки соседей, position - центр вокселя в сетке.
func (c Cell) AddMeshData(md *meshing.MeshData, chunk *Chunk, local vec.Vec3, position mgl32.Vec3, voxelSize float32) error {
	t := c.typ()
	if !t.HasAnyFace() {
		return nil
	}

	visibility := Visibility(chunk, local)
	if !visibility.Any() {
		return nil
	}

	if c.Shape.Kind == ShapeSimple {
		return meshing.AddSimpleBlock(md, position, visibility, t, voxelSize)
	}

	o, r := c.Shape.Orientation, c.Shape.Rotation
	switch c.Shape.Style {
	case StyleBlock:
		return meshing.AddComplexBlock(md, position, o, r, visibility, t, voxelSize)
	case StyleWedge:
		return meshing.AddComplexWedge(md, position, o, r, visibility, t, voxelSize)
	case StyleCorner:
		return meshing.AddComplexCorner(md, position, o, r, visibility, t, voxelSize)
	case StyleInverseCorner:
		return meshing.AddComplexInverseCorner(md, position, o, r, visibility, t, voxelSize)
	default:
		return fmt.Errorf("%w: %s", meshing.ErrUnsupportedStyle, c.Shape.Style)
	}
}
