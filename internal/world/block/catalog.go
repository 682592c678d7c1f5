package block

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/annel0/voxel-world/internal/world/direction"
)

// CatalogFile описание каталога типов вокселей в YAML
type CatalogFile struct {
	Types []TypeSpec `yaml:"types"`
}

// TypeSpec описание одного типа.
// Пустой список faces/solid означает "все грани", значение "none" - ни одной.
type TypeSpec struct {
	ID      uint16                 `yaml:"id"`
	SubID   uint8                  `yaml:"sub_id"`
	Name    string                 `yaml:"name"`
	Faces   []string               `yaml:"faces"`
	Solid   []string               `yaml:"solid"`
	Texture TextureSpec            `yaml:"texture"`
	PerFace map[string]TextureSpec `yaml:"face_textures"`
}

// TextureSpec клетка атласа в YAML
type TextureSpec struct {
	X       uint8 `yaml:"x"`
	Y       uint8 `yaml:"y"`
	SubMesh uint8 `yaml:"submesh"`
}

// LoadCatalog читает YAML файл и регистрирует описанные типы в reg
func LoadCatalog(path string, reg *Registry) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return ParseCatalog(data, reg)
}

// ParseCatalog разбирает YAML и регистрирует типы. Возвращает число добавленных типов.
func ParseCatalog(data []byte, reg *Registry) (int, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("ошибка разбора каталога: %w", err)
	}

	added := 0
	for _, spec := range file.Types {
		t, err := spec.Build()
		if err != nil {
			return added, fmt.Errorf("тип %q: %w", spec.Name, err)
		}
		if err := reg.Register(t); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Build создаёт Type по описанию
func (s TypeSpec) Build() (*Type, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("не задано имя")
	}

	faces, err := parseMask(s.Faces)
	if err != nil {
		return nil, fmt.Errorf("faces: %w", err)
	}
	solid, err := parseMask(s.Solid)
	if err != nil {
		return nil, fmt.Errorf("solid: %w", err)
	}

	textures := UniformTextures(s.Texture.X, s.Texture.Y, s.Texture.SubMesh)
	for name, tex := range s.PerFace {
		dir, err := direction.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("face_textures: %w", err)
		}
		textures[dir] = FaceTexture(tex)
	}

	return NewType(ID{ID: s.ID, SubID: s.SubID}, s.Name,
		WithFaces(faces),
		WithSolidity(solid),
		WithTextures(textures),
	), nil
}

func parseMask(values []string) (direction.Mask, error) {
	if len(values) == 0 {
		return direction.NewMask(true), nil
	}

	var m direction.Mask
	for _, v := range values {
		switch strings.ToLower(v) {
		case "all":
			return direction.NewMask(true), nil
		case "none":
			return direction.NewMask(false), nil
		}
		dir, err := direction.Parse(v)
		if err != nil {
			return m, err
		}
		m = m.Set(dir, true)
	}
	return m, nil
}
