// Package direction описывает шесть осевых направлений вокселя и таблицы,
// связывающие глобальные направления с локальными гранями повернутого вокселя.
package direction

import (
	"fmt"
	"strings"

	"github.com/annel0/voxel-world/internal/vec"
)

// Direction одно из шести осевых направлений.
// Порядок значений фиксирован и используется как индекс во всех таблицах.
type Direction uint8

const (
	Up Direction = iota
	Down
	North
	East
	South
	West

	Count = 6 // всегда последний: количество направлений
)

// All перечисляет направления в каноническом порядке
var All = [Count]Direction{Up, Down, North, East, South, West}

var opposites = [Count]Direction{Down, Up, South, West, North, East}

// North = +Z, East = +X, Up = +Y
var offsets = [Count]vec.Vec3{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 0},
}

var names = [Count]string{"Up", "Down", "North", "East", "South", "West"}

// Valid возвращает true для одного из шести допустимых значений
func (d Direction) Valid() bool {
	return d < Count
}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Offset возвращает единичное смещение к соседу в этом направлении
func (d Direction) Offset() vec.Vec3 {
	return offsets[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Parse преобразует имя направления ("Up", "north", ...) в Direction
func Parse(s string) (Direction, error) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("неизвестное направление %q", s)
}

// Mask хранит по одному флагу на каждое направление
// (наличие граней, непрозрачность, видимость).
type Mask [Count]bool

// NewMask создаёт маску, где все направления равны value
func NewMask(value bool) Mask {
	var m Mask
	for i := range m {
		m[i] = value
	}
	return m
}

// MaskOf создаёт маску, где выставлены только перечисленные направления
func MaskOf(dirs ...Direction) Mask {
	var m Mask
	for _, d := range dirs {
		m[d] = true
	}
	return m
}

// Get возвращает флаг для направления
func (m Mask) Get(d Direction) bool {
	return m[d]
}

// Set возвращает копию маски с изменённым флагом
func (m Mask) Set(d Direction, value bool) Mask {
	m[d] = value
	return m
}

// Any возвращает true, если выставлено хотя бы одно направление
func (m Mask) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Count возвращает количество выставленных направлений
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
