package meshing

// wedgeFace одна грань клина в локальных единицах полуразмера.
// n = 4 - четырёхугольник, n = 3 - треугольник, n = 0 - грани нет.
// uv задаёт, какой угол текстуры получает каждая вершина.
type wedgeFace struct {
	n     int
	verts [4][3]float32
	uv    [4]int
}

// wedgeMeshMap[ориентация][поворот/90][глобальное направление].
// В ячейке [o][r][o] лежит скат.
var wedgeMeshMap = [6][4][6]wedgeFace{
	// Up
	{
		// 0
		{
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{}, // North: не используется
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 90
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{}, // East: не используется
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, -1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{}, // South: не используется
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 270
		{
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{}, // West: не используется
		},
	},
	// Down
	{
		// 0
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, 1, 1}, {-1, 1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down (скат)
			{}, // North: не используется
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 90
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down (скат)
			{n: 3, verts: [4][3]float32{{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{}, // East: не используется
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{n: 4, verts: [4][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down (скат)
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 3, verts: [4][3]float32{{1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{}, // South: не используется
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 270
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{n: 4, verts: [4][3]float32{{-1, 1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, 1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down (скат)
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 3, verts: [4][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{}, // West: не используется
		},
	},
	// North
	{
		// 0
		{
			{}, // Up: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North (скат)
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 90
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North (скат)
			{}, // East: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{}, // Down: не используется
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // North (скат)
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 270
		{
			{n: 3, verts: [4][3]float32{{1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // North (скат)
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{}, // West: не используется
		},
	},
	// East
	{
		// 0
		{
			{}, // Up: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East (скат)
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 90
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East (скат)
			{}, // South: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{}, // Down: не используется
			{n: 3, verts: [4][3]float32{{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East (скат)
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 270
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{}, // North: не используется
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
	},
	// South
	{
		// 0
		{
			{}, // Up: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South (скат)
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 90
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{}, // East: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // South (скат)
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{}, // Down: не используется
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 3, verts: [4][3]float32{{1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // South (скат)
			{n: 3, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // West
		},
		// 270
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South (скат)
			{}, // West: не используется
		},
	},
	// West
	{
		// 0
		{
			{}, // Up: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // Down
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West (скат)
		},
		// 90
		{
			{n: 3, verts: [4][3]float32{{1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{}, // North: не используется
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 4, verts: [4][3]float32{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // South
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West (скат)
		},
		// 180
		{
			{n: 4, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, uv: [4]int{0, 1, 2, 3}}, // Up
			{}, // Down: не используется
			{n: 3, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, uv: [4]int{0, 1, 2}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{n: 3, verts: [4][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2}}, // South
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West (скат)
		},
		// 270
		{
			{n: 3, verts: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}, uv: [4]int{0, 1, 2}}, // Up
			{n: 3, verts: [4][3]float32{{1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2}}, // Down
			{n: 4, verts: [4][3]float32{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // North
			{n: 4, verts: [4][3]float32{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}, uv: [4]int{0, 1, 2, 3}}, // East
			{}, // South: не используется
			{n: 4, verts: [4][3]float32{{-1, -1, 1}, {-1, 1, 1}, {1, 1, -1}, {1, -1, -1}}, uv: [4]int{0, 1, 2, 3}}, // West (скат)
		},
	},
}
