package block

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicateID тип с таким ID уже зарегистрирован
	ErrDuplicateID = errors.New("тип вокселя с таким ID уже зарегистрирован")
	// ErrRegistryFrozen каталог закрыт для изменений
	ErrRegistryFrozen = errors.New("каталог типов вокселей закрыт для изменений")
	// ErrUnknownType тип не найден в каталоге
	ErrUnknownType = errors.New("неизвестный тип вокселя")
)

// Registry каталог типов вокселей.
// Создаётся один раз при старте, заполняется и замораживается,
// после чего передаётся в World и безопасен для параллельного чтения.
type Registry struct {
	mu     sync.RWMutex
	byID   map[ID]*Type
	byName map[string]*Type
	frozen bool
}

// NewRegistry создаёт пустой каталог. Тип Null доступен всегда.
func NewRegistry() *Registry {
	return &Registry{
		byID:   map[ID]*Type{Null.ID(): Null},
		byName: map[string]*Type{Null.Name(): Null},
	}
}

// Register добавляет тип в каталог
func (r *Registry) Register(t *Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	if _, exists := r.byID[t.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t)
	}

	r.byID[t.ID()] = t
	r.byName[t.Name()] = t
	return nil
}

// Freeze запрещает дальнейшую регистрацию
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen возвращает true, если каталог заморожен
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Get возвращает тип по идентификатору
func (r *Registry) Get(id ID) (*Type, bool) {
	r.mu.RLock()
	t, exists := r.byID[id]
	r.mu.RUnlock()
	return t, exists
}

// MustGet возвращает тип по идентификатору или ошибку ErrUnknownType
func (r *Registry) MustGet(id ID) (*Type, error) {
	t, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, id)
	}
	return t, nil
}

// ByName возвращает тип по имени
func (r *Registry) ByName(name string) (*Type, bool) {
	r.mu.RLock()
	t, exists := r.byName[name]
	r.mu.RUnlock()
	return t, exists
}

// IsValidID проверяет, зарегистрирован ли идентификатор
func (r *Registry) IsValidID(id ID) bool {
	_, exists := r.Get(id)
	return exists
}

// Len возвращает количество типов, включая Null
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Types возвращает все типы, отсортированные по ID
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	types := make([]*Type, 0, len(r.byID))
	for _, t := range r.byID {
		types = append(types, t)
	}
	r.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		a, b := types[i].ID(), types[j].ID()
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.SubID < b.SubID
	})
	return types
}

// SubMeshCount возвращает количество сабмешей, необходимое для всех типов каталога
func (r *Registry) SubMeshCount() int {
	highest := 0
	for _, t := range r.Types() {
		if n := t.Textures().MaxSubMesh(); n > highest {
			highest = n
		}
	}
	return highest + 1
}
