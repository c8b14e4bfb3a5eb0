package clist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := new(List[int])
		it := l.Iterator()
		for it.Next() {
			t.Fatal("no cycle for empty list")
		}
	})

	t.Run("step iteration", func(t *testing.T) {
		l := build(1, 2, 3)
		it := l.Iterator()
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 2, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 3, it.Current().Value)
		require.False(t, it.Next())
		require.False(t, it.Valid())
	})

	t.Run("copy iteration", func(t *testing.T) {
		testCases := [][]int{
			{1},
			{1, 2, 3},
			{4, 3, 2, 1},
		}
		for _, tc := range testCases {
			l := build(tc...)
			it := l.Iterator()
			result := []int{}
			for it.Next() {
				result = append(result, it.Current().Value)
			}
			require.Equal(t, tc, result)
		}
	})

	t.Run("consume iteration", func(t *testing.T) {
		testCases := [][]int{
			{1},
			{1, 2, 3},
			{4, 3, 2, 1},
		}
		for _, tc := range testCases {
			l := build(tc...)
			it := l.Iterator()
			result := []int{}
			for it.Next() {
				result = append(result, it.Current().Value)
				l.Unlink(it.Current())
			}
			require.True(t, l.IsEmpty())
			require.Equal(t, tc, result)
		}
	})

	t.Run("odd consume iteration", func(t *testing.T) {
		source := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		expect := []int{1, 3, 5, 7, 9}
		l := build(source...)
		it := l.Iterator()
		result := []int{}
		visited := []int{}
		for it.Next() {
			visited = append(visited, it.Current().Value)
			if it.Current().Value%2 == 1 {
				result = append(result, it.Current().Value)
				l.Unlink(it.Current())
			}
		}
		require.Equal(t, expect, result)
		require.Equal(t, source, visited)
		require.Equal(t, []int{2, 4, 6, 8, 10}, collect(l))
		requireRing(t, l)
	})

	t.Run("reset mid-iteration", func(t *testing.T) {
		l := build(1, 2, 3)
		it := l.Iterator()
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Value)
		l.Init()
		require.False(t, it.Next())
	})
}
