package meshing

import (
	"fmt"
	"strings"
)

// Mode какие сетки нужно построить из MeshData
type Mode int

const (
	MeshAndCollider Mode = 0
	MeshOnly        Mode = 1
	ColliderOnly    Mode = -1
)

// WantsMesh возвращает true, если режим требует видимую сетку
func (m Mode) WantsMesh() bool {
	return m != ColliderOnly
}

// WantsCollider возвращает true, если режим требует сетку коллизий
func (m Mode) WantsCollider() bool {
	return m != MeshOnly
}

func (m Mode) String() string {
	switch m {
	case MeshAndCollider:
		return "mesh+collider"
	case MeshOnly:
		return "mesh"
	case ColliderOnly:
		return "collider"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode разбирает режим из конфигурации или флага командной строки
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "mesh+collider", "meshandcollider":
		return MeshAndCollider, nil
	case "mesh", "meshonly":
		return MeshOnly, nil
	case "collider", "collideronly":
		return ColliderOnly, nil
	}
	return MeshAndCollider, fmt.Errorf("неизвестный режим построения сетки %q", s)
}
