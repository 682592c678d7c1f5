package block

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/world/direction"
)

// ID идентификатор типа вокселя
type ID struct {
	ID    uint16 // 0..65535
	SubID uint8  // вариант внутри типа, 0..255
}

func (id ID) String() string {
	if id.SubID == 0 {
		return fmt.Sprintf("%d", id.ID)
	}
	return fmt.Sprintf("%d:%d", id.ID, id.SubID)
}

// Type описывает вид вокселя: какие грани у него есть, какие из них непрозрачны
// и какие клетки атласа используются для текстур.
// Тип неизменяем после создания и разделяется между всеми ячейками мира.
type Type struct {
	id       ID
	name     string
	faces    direction.Mask
	solidity direction.Mask
	textures Textures
}

// Option настраивает тип при создании
type Option func(*Type)

// WithFaces задаёт маску наличия граней
func WithFaces(faces direction.Mask) Option {
	return func(t *Type) { t.faces = faces }
}

// WithSolidity задаёт маску непрозрачных граней
func WithSolidity(solidity direction.Mask) Option {
	return func(t *Type) { t.solidity = solidity }
}

// WithTextures задаёт координаты текстур в атласе
func WithTextures(textures Textures) Option {
	return func(t *Type) { t.textures = textures }
}

// NewType создаёт тип вокселя. По умолчанию все грани присутствуют и непрозрачны,
// текстура - клетка (0, 0) атласа.
func NewType(id ID, name string, opts ...Option) *Type {
	t := &Type{
		id:       id,
		name:     name,
		faces:    direction.NewMask(true),
		solidity: direction.NewMask(true),
		textures: UniformTextures(0, 0, 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Null тип "пустоты" (воздух): граней нет, ничего не перекрывает
var Null = NewType(ID{}, "NULL",
	WithFaces(direction.NewMask(false)),
	WithSolidity(direction.NewMask(false)),
)

// ID возвращает идентификатор типа
func (t *Type) ID() ID { return t.id }

// Name возвращает отображаемое имя
func (t *Type) Name() string { return t.name }

// Faces возвращает маску граней
func (t *Type) Faces() direction.Mask { return t.faces }

// Solidity возвращает маску непрозрачности
func (t *Type) Solidity() direction.Mask { return t.solidity }

// Textures возвращает текстурные координаты
func (t *Type) Textures() Textures { return t.textures }

// HasFace возвращает true, если у типа есть грань в направлении dir
func (t *Type) HasFace(dir direction.Direction) bool {
	return t.faces.Get(dir)
}

// HasAnyFace возвращает true, если тип вообще порождает геометрию
func (t *Type) HasAnyFace() bool {
	return t.faces.Any()
}

// IsSolid возвращает true, если грань dir непрозрачна и скрывает грань соседа
func (t *Type) IsSolid(dir direction.Direction) bool {
	return t.solidity.Get(dir)
}

// IsNull возвращает true для типа-пустоты
func (t *Type) IsNull() bool {
	return t == Null
}

func (t *Type) String() string {
	return fmt.Sprintf("%s(%s)", t.name, t.id)
}
