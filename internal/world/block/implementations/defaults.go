package implementations

import (
	"fmt"

	"github.com/annel0/voxel-world/internal/world/block"
)

// Defaults все встроенные типы, кроме пустоты (она есть в любом каталоге)
func Defaults() []*block.Type {
	return []*block.Type{Dirt, Stone, Grass, Rotato, Water}
}

// RegisterDefaults добавляет встроенные типы в каталог
func RegisterDefaults(reg *block.Registry) error {
	for _, t := range Defaults() {
		if err := reg.Register(t); err != nil {
			return fmt.Errorf("регистрация %s: %w", t.Name(), err)
		}
	}
	return nil
}

// NewDefaultRegistry создаёт каталог со встроенными типами.
// Каталог не заморожен: можно добавить типы из YAML и потом вызвать Freeze.
func NewDefaultRegistry() (*block.Registry, error) {
	reg := block.NewRegistry()
	if err := RegisterDefaults(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
