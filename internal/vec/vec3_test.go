package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(4, 5, -6)

	assert.Equal(t, NewVec3(5, 3, -3), a.Add(b), "сложение векторов")
	assert.Equal(t, NewVec3(-3, -7, 9), a.Sub(b), "вычитание векторов")
	assert.Equal(t, NewVec3(2, -4, 6), a.Mul(2), "умножение на скаляр")
	assert.Equal(t, NewVec3(2, 2, -3), b.Div(2), "деление к нулю")
	assert.True(t, a.Equals(NewVec3(1, -2, 3)))
}

func TestVec3ModKeepsSign(t *testing.T) {
	// Остаток повторяет знак делимого, как при усечении к нулю
	v := NewVec3(-1, -17, 17)
	assert.Equal(t, NewVec3(-1, -1, 1), v.Mod(16))
	assert.Equal(t, NewVec3(15, 15, 1), v.PosMod(16))
}

func TestVec3FloorDiv(t *testing.T) {
	cases := []struct {
		in   Vec3
		want Vec3
	}{
		{NewVec3(0, 15, 16), NewVec3(0, 0, 1)},
		{NewVec3(-1, -16, -17), NewVec3(-1, -1, -2)},
		{NewVec3(31, -32, 33), NewVec3(1, -2, 2)},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.in.FloorDiv(16), "FloorDiv(%v)", c.in)
	}
}

func TestVec3ToVec2(t *testing.T) {
	v := NewVec3(3, 7, -2)
	col := v.ToVec2()
	assert.Equal(t, Vec2{X: 3, Y: -2}, col)
	assert.Equal(t, v, col.ToVec3(7))
}
