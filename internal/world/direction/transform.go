package direction

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidRotation возвращается, если поворот не кратен 90 градусам
var ErrInvalidRotation = errors.New("поворот должен быть кратен 90 градусам")

// Таблица граней: для ориентации (локальный "верх"), шага поворота вокруг неё
// и глобального направления хранит локальную грань вокселя.
// Каждая строка является перестановкой шести направлений.
var dirMap = [6][4][6]Direction{
	// Up
	{
		{Up, Down, North, East, South, West}, // 0
		{Up, Down, West, North, East, South}, // 90
		{Up, Down, South, West, North, East}, // 180
		{Up, Down, East, South, West, North}, // 270
	},
	// Down
	{
		{Down, Up, North, West, South, East}, // 0
		{Down, Up, East, North, West, South}, // 90
		{Down, Up, South, East, North, West}, // 180
		{Down, Up, West, South, East, North}, // 270
	},
	// North
	{
		{North, South, Up, East, Down, West}, // 0
		{West, East, Up, North, Down, South}, // 90
		{South, North, Up, West, Down, East}, // 180
		{East, West, Up, South, Down, North}, // 270
	},
	// East
	{
		{North, South, West, Up, East, Down}, // 0
		{West, East, South, Up, North, Down}, // 90
		{South, North, East, Up, West, Down}, // 180
		{East, West, North, Up, South, Down}, // 270
	},
	// South
	{
		{North, South, Down, East, Up, West}, // 0
		{West, East, Down, North, Up, South}, // 90
		{South, North, Down, West, Up, East}, // 180
		{East, West, Down, South, Up, North}, // 270
	},
	// West
	{
		{North, South, East, Down, West, Up}, // 0
		{West, East, North, Down, South, Up}, // 90
		{South, North, West, Down, East, Up}, // 180
		{East, West, South, Down, North, Up}, // 270
	},
}

// Поворот UV (в градусах) для каждой глобальной грани, чтобы текстура
// оставалась "стоящей" после поворота вокселя.
var rotMap = [6][4][6]int{
	// Up
	{
		{270, 90, 0, 0, 0, 0}, // 0
		{0, 0, 0, 0, 0, 0}, // 90
		{90, 270, 0, 0, 0, 0}, // 180
		{180, 180, 0, 0, 0, 0}, // 270
	},
	// Down
	{
		{270, 90, 180, 180, 180, 180}, // 0
		{0, 0, 180, 180, 180, 180}, // 90
		{90, 270, 180, 180, 180, 180}, // 180
		{180, 180, 180, 180, 180, 180}, // 270
	},
	// North
	{
		{270, 90, 0, 90, 0, 270}, // 0
		{270, 90, 270, 90, 90, 270}, // 90
		{270, 90, 180, 90, 180, 270}, // 180
		{270, 90, 90, 90, 270, 270}, // 270
	},
	// East
	{
		{0, 0, 270, 0, 90, 0}, // 0
		{0, 0, 270, 270, 90, 90}, // 90
		{0, 0, 270, 180, 90, 180}, // 180
		{0, 0, 270, 90, 90, 270}, // 270
	},
	// South
	{
		{90, 270, 0, 270, 0, 90}, // 0
		{90, 270, 270, 270, 90, 90}, // 90
		{90, 270, 180, 270, 180, 90}, // 180
		{90, 270, 90, 270, 270, 90}, // 270
	},
	// West
	{
		{180, 180, 90, 0, 270, 0}, // 0
		{180, 180, 90, 90, 270, 270}, // 90
		{180, 180, 90, 180, 270, 180}, // 180
		{180, 180, 90, 270, 270, 90}, // 270
	},
}

// GlobalToLocal возвращает локальную грань вокселя, которая смотрит в глобальном
// направлении dir при заданных ориентации и повороте.
// Для (Up, 0) это тождественное отображение.
func GlobalToLocal(dir, orientation Direction, rotation int) Direction {
	return dirMap[mustOrientation(orientation)][rotationStep(rotation)][mustDirection(dir)]
}

// UVRotation возвращает угол (0/90/180/270), на который нужно повернуть UV грани dir
func UVRotation(dir, orientation Direction, rotation int) int {
	return rotMap[mustOrientation(orientation)][rotationStep(rotation)][mustDirection(dir)]
}

// EulerRotation возвращает кватернион поворота вокселя для потребителей,
// которым нужна произвольная (не сеточная) ориентация.
func EulerRotation(orientation Direction, rotation int) mgl32.Quat {
	var a, b float32
	switch rotationStep(rotation) {
	case 0:
		a = 1
	case 1:
		b = 1
	case 2:
		a = -1
	case 3:
		b = -1
	}

	var forward, up mgl32.Vec3
	switch mustOrientation(orientation) {
	case Up:
		forward, up = mgl32.Vec3{b, 0, a}, mgl32.Vec3{0, 1, 0}
	case Down:
		forward, up = mgl32.Vec3{-b, 0, a}, mgl32.Vec3{0, -1, 0}
	case North:
		forward, up = mgl32.Vec3{b, a, 0}, mgl32.Vec3{0, 0, 1}
	case East:
		forward, up = mgl32.Vec3{0, a, -b}, mgl32.Vec3{1, 0, 0}
	case South:
		forward, up = mgl32.Vec3{-b, a, 0}, mgl32.Vec3{0, 0, -1}
	case West:
		forward, up = mgl32.Vec3{0, a, b}, mgl32.Vec3{-1, 0, 0}
	}

	return lookRotation(forward, up)
}

// lookRotation строит поворот, переводящий +Z в forward и +Y в up.
// forward и up во всех вызовах ортогональны и единичны.
func lookRotation(forward, up mgl32.Vec3) mgl32.Quat {
	right := up.Cross(forward)
	m := mgl32.Mat3FromCols(right, forward.Cross(right), forward)
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}

// ValidRotation возвращает true для неотрицательных углов, кратных 90
func ValidRotation(rotation int) bool {
	return rotation >= 0 && rotation%90 == 0
}

// NormalizeRotation приводит угол к диапазону [0, 270].
// Углы, не кратные 90, и отрицательные углы отклоняются.
func NormalizeRotation(rotation int) (int, error) {
	if !ValidRotation(rotation) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRotation, rotation)
	}
	if rotation > 270 {
		rotation = ((rotation / 90) % 4) * 90
	}
	return rotation, nil
}

// Выход за пределы таблиц - нарушение предусловия вызывающей стороны
func rotationStep(rotation int) int {
	if rotation < 0 || rotation > 270 || rotation%90 != 0 {
		panic(fmt.Sprintf("direction: недопустимый поворот %d", rotation))
	}
	return rotation / 90
}

func mustOrientation(o Direction) Direction {
	if !o.Valid() {
		panic(fmt.Sprintf("direction: недопустимая ориентация %d", uint8(o)))
	}
	return o
}

func mustDirection(d Direction) Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("direction: недопустимое направление %d", uint8(d)))
	}
	return d
}
