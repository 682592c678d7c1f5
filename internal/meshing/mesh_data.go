// Package meshing собирает геометрию вокселей: буфер вершин, UV и треугольников
// по сабмешам плюс отдельную упрощённую сетку коллизий.
package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/direction"
)

var (
	// ErrAlreadyConsumed буфер уже отдан через Build
	ErrAlreadyConsumed = errors.New("буфер сетки уже использован")
	// ErrUVMismatch количество UV не совпадает с количеством вершин
	ErrUVMismatch = errors.New("количество UV не совпадает с количеством вершин")
)

// MeshData накопительный буфер геометрии одного прохода построения.
// Не потокобезопасен: один буфер принадлежит одной задаче.
type MeshData struct {
	vertices  []mgl32.Vec3
	uvs       []mgl32.Vec2
	triangles [][]uint32

	colliderVertices  []mgl32.Vec3
	colliderTriangles []uint32

	consumed bool
}

// RenderMesh готовая видимая сетка
type RenderMesh struct {
	Vertices  []mgl32.Vec3 `json:"vertices"`
	Normals   []mgl32.Vec3 `json:"normals"`
	UVs       []mgl32.Vec2 `json:"uvs"`
	SubMeshes [][]uint32   `json:"submeshes"`
	Bounds    AABB         `json:"bounds"`
}

// ColliderMesh готовая сетка коллизий
type ColliderMesh struct {
	Vertices  []mgl32.Vec3 `json:"vertices"`
	Triangles []uint32     `json:"triangles"`
}

// AABB ограничивающий параллелепипед
type AABB struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// Stats счётчики буфера для логов и метрик
type Stats struct {
	Vertices          int
	UVs               int
	Triangles         int
	ColliderVertices  int
	ColliderTriangles int
}

// NewMeshData создаёт пустой буфер с заданным количеством сабмешей (минимум один)
func NewMeshData(subMeshes int) *MeshData {
	if subMeshes < 1 {
		subMeshes = 1
	}
	return &MeshData{
		triangles: make([][]uint32, subMeshes),
	}
}

// SubMeshCount возвращает количество сабмешей
func (m *MeshData) SubMeshCount() int {
	return len(m.triangles)
}

// EnsureSubMeshes расширяет буфер минимум до n сабмешей
func (m *MeshData) EnsureSubMeshes(n int) {
	for len(m.triangles) < n {
		m.triangles = append(m.triangles, nil)
	}
}

// AddVertex добавляет вершину видимой сетки
func (m *MeshData) AddVertex(v mgl32.Vec3) {
	m.vertices = append(m.vertices, v)
}

// AddVertexToCollider добавляет вершину сетки коллизий
func (m *MeshData) AddVertexToCollider(v mgl32.Vec3) {
	m.colliderVertices = append(m.colliderVertices, v)
}

// AddUV добавляет текстурную координату
func (m *MeshData) AddUV(uv mgl32.Vec2) {
	m.uvs = append(m.uvs, uv)
}

// AddTriangle добавляет треугольник из уже существующих вершин в сабмеш
func (m *MeshData) AddTriangle(i1, i2, i3 uint32, subMesh int) {
	m.checkSubMesh(subMesh)
	m.triangles[subMesh] = append(m.triangles[subMesh], i1, i2, i3)
}

// AddTriangleVerts добавляет три вершины и треугольник по ним
func (m *MeshData) AddTriangleVerts(v1, v2, v3 mgl32.Vec3, subMesh int) {
	m.checkSubMesh(subMesh)
	m.vertices = append(m.vertices, v1, v2, v3)
	n := uint32(len(m.vertices))
	m.triangles[subMesh] = append(m.triangles[subMesh], n-3, n-2, n-1)
}

// AddTriangleToCollider добавляет треугольник коллизий из существующих вершин
func (m *MeshData) AddTriangleToCollider(i1, i2, i3 uint32) {
	m.colliderTriangles = append(m.colliderTriangles, i1, i2, i3)
}

// AddTriangleVertsToCollider добавляет три вершины коллизий и треугольник по ним
func (m *MeshData) AddTriangleVertsToCollider(v1, v2, v3 mgl32.Vec3) {
	m.colliderVertices = append(m.colliderVertices, v1, v2, v3)
	n := uint32(len(m.colliderVertices))
	m.colliderTriangles = append(m.colliderTriangles, n-3, n-2, n-1)
}

// AddQuadVerts добавляет четырёхугольник v1..v4 (два треугольника: 1-2-3 и 1-3-4)
func (m *MeshData) AddQuadVerts(v1, v2, v3, v4 mgl32.Vec3, subMesh int) {
	m.checkSubMesh(subMesh)
	m.vertices = append(m.vertices, v1, v2, v3, v4)
	m.addQuadTriangles(subMesh)
}

// AddQuadVertsToCollider то же для сетки коллизий
func (m *MeshData) AddQuadVertsToCollider(v1, v2, v3, v4 mgl32.Vec3) {
	m.colliderVertices = append(m.colliderVertices, v1, v2, v3, v4)
	n := uint32(len(m.colliderVertices))
	m.colliderTriangles = append(m.colliderTriangles, n-4, n-3, n-2, n-4, n-2, n-1)
}

// AddQuad добавляет грань куба с центром position и полуразмером half
func (m *MeshData) AddQuad(position mgl32.Vec3, dir direction.Direction, half float32, subMesh int) {
	c := faceCorners(position, dir, half)
	m.AddQuadVerts(c[0], c[1], c[2], c[3], subMesh)
}

// AddQuadToCollider добавляет грань куба в сетку коллизий
func (m *MeshData) AddQuadToCollider(position mgl32.Vec3, dir direction.Direction, half float32) {
	c := faceCorners(position, dir, half)
	m.AddQuadVertsToCollider(c[0], c[1], c[2], c[3])
}

// AddQuadUVs добавляет четыре UV для грани простого блока.
// Порядок углов подобран под порядок вершин в AddQuad, чтобы текстура не была перевёрнута.
func (m *MeshData) AddQuadUVs(rect block.UVRect, dir direction.Direction) {
	c := rect.Corners() // min, min+h, max, min+w
	switch dir {
	case direction.Up:
		m.uvs = append(m.uvs, c[1], c[2], c[3], c[0])
	case direction.Down:
		m.uvs = append(m.uvs, c[3], c[0], c[1], c[2])
	default:
		m.uvs = append(m.uvs, c[0], c[1], c[2], c[3])
	}
}

func (m *MeshData) addQuadTriangles(subMesh int) {
	n := uint32(len(m.vertices))
	m.triangles[subMesh] = append(m.triangles[subMesh], n-4, n-3, n-2, n-4, n-2, n-1)
}

func (m *MeshData) checkSubMesh(subMesh int) {
	if subMesh < 0 || subMesh >= len(m.triangles) {
		panic(fmt.Sprintf("meshing: сабмеш %d вне диапазона [0, %d)", subMesh, len(m.triangles)))
	}
}

// Stats возвращает текущие счётчики буфера
func (m *MeshData) Stats() Stats {
	s := Stats{
		Vertices:          len(m.vertices),
		UVs:               len(m.uvs),
		ColliderVertices:  len(m.colliderVertices),
		ColliderTriangles: len(m.colliderTriangles) / 3,
	}
	for _, tris := range m.triangles {
		s.Triangles += len(tris) / 3
	}
	return s
}

// Bounds возвращает AABB видимых вершин; для пустого буфера - нулевой
func (m *MeshData) Bounds() AABB {
	return computeBounds(m.vertices)
}

// IsEmpty возвращает true, если в буфер ничего не добавлено
func (m *MeshData) IsEmpty() bool {
	return len(m.vertices) == 0 && len(m.colliderVertices) == 0
}

// Build копирует накопленные данные в готовые сетки.
// Вызывается один раз: повторный вызов возвращает ErrAlreadyConsumed (до Clear).
// Сетка, не нужная в режиме mode, возвращается как nil.
func (m *MeshData) Build(mode Mode) (*RenderMesh, *ColliderMesh, error) {
	if m.consumed {
		return nil, nil, ErrAlreadyConsumed
	}

	var render *RenderMesh
	var collider *ColliderMesh

	if mode.WantsMesh() {
		if len(m.uvs) != len(m.vertices) {
			return nil, nil, fmt.Errorf("%w: %d UV на %d вершин", ErrUVMismatch, len(m.uvs), len(m.vertices))
		}
		render = &RenderMesh{
			Vertices:  append([]mgl32.Vec3(nil), m.vertices...),
			UVs:       append([]mgl32.Vec2(nil), m.uvs...),
			SubMeshes: make([][]uint32, len(m.triangles)),
			Bounds:    computeBounds(m.vertices),
		}
		for i, tris := range m.triangles {
			render.SubMeshes[i] = append([]uint32(nil), tris...)
		}
		render.Normals = computeNormals(render.Vertices, render.SubMeshes)
	}

	if mode.WantsCollider() {
		collider = &ColliderMesh{
			Vertices:  append([]mgl32.Vec3(nil), m.colliderVertices...),
			Triangles: append([]uint32(nil), m.colliderTriangles...),
		}
	}

	m.consumed = true
	return render, collider, nil
}

// Clear очищает буфер для повторного использования внутри той же задачи
func (m *MeshData) Clear() {
	m.vertices = m.vertices[:0]
	m.uvs = m.uvs[:0]
	for i := range m.triangles {
		m.triangles[i] = m.triangles[i][:0]
	}
	m.colliderVertices = m.colliderVertices[:0]
	m.colliderTriangles = m.colliderTriangles[:0]
	m.consumed = false
}

// TriangleCount количество треугольников во всех сабмешах
func (r *RenderMesh) TriangleCount() int {
	n := 0
	for _, tris := range r.SubMeshes {
		n += len(tris) / 3
	}
	return n
}

func computeBounds(vertices []mgl32.Vec3) AABB {
	if len(vertices) == 0 {
		return AABB{}
	}
	b := AABB{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < b.Min[i] {
				b.Min[i] = v[i]
			}
			if v[i] > b.Max[i] {
				b.Max[i] = v[i]
			}
		}
	}
	return b
}

// computeNormals усредняет нормали треугольников в каждой вершине
func computeNormals(vertices []mgl32.Vec3, subMeshes [][]uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(vertices))
	for _, tris := range subMeshes {
		for i := 0; i+2 < len(tris); i += 3 {
			a, b, c := tris[i], tris[i+1], tris[i+2]
			n := vertices[b].Sub(vertices[a]).Cross(vertices[c].Sub(vertices[a]))
			normals[a] = normals[a].Add(n)
			normals[b] = normals[b].Add(n)
			normals[c] = normals[c].Add(n)
		}
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}
