package automaton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func frozenOf(ids ...int) *FrozenStateSet {
	s := NewStateSet(128)
	for _, id := range ids {
		s.Add(id)
	}
	return s.Freeze()
}

func TestHashMap(t *testing.T) {
	t.Run("insertAndGet", func(t *testing.T) {
		hm := NewHashMap[int](WithCapacity(8))
		hm.Set(frozenOf(0, 1), 7)

		val, ok := hm.Get(frozenOf(1, 0))
		assert.True(t, ok)
		assert.Equal(t, 7, val)

		_, ok = hm.Get(frozenOf(2))
		assert.False(t, ok)
	})

	t.Run("updateValue", func(t *testing.T) {
		hm := NewHashMap[int](WithCapacity(8))
		key := frozenOf(3)
		hm.Set(key, 1)
		hm.Set(key, 2)

		val, ok := hm.Get(key)
		assert.True(t, ok)
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("growsPastInitialCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(1))
		for i := 0; i < 100; i++ {
			hm.Set(frozenOf(i), fmt.Sprintf("v%d", i))
		}
		assert.Equal(t, 100, hm.Size())

		for i := 0; i < 100; i++ {
			val, ok := hm.Get(frozenOf(i))
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprintf("v%d", i), val)
		}
	})

	t.Run("loadFactorOption", func(t *testing.T) {
		hm := NewHashMap[int](WithCapacity(4), WithLoadFactor(0.5))
		for i := 0; i < 10; i++ {
			hm.Set(frozenOf(i, i+1), i)
		}
		for i := 0; i < 10; i++ {
			val, ok := hm.Get(frozenOf(i, i+1))
			assert.True(t, ok)
			assert.Equal(t, i, val)
		}
	})
}
