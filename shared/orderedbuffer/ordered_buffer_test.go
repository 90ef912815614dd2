package orderedbuffer_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/effect_bridge_go/shared/orderedbuffer"
	"github.com/stretchr/testify/assert"
)

func TestOrderedBuffer_DrainSorted(t *testing.T) {
	buf := orderedbuffer.New(5, func(a, b int) int {
		return a - b
	})

	inputs := []int{10, 5, 7, 3, 8}
	for _, v := range inputs {
		buf.Insert(v)
	}
	assert.Equal(t, len(inputs), buf.Len())

	got := buf.Drain()
	want := []int{3, 5, 7, 8, 10}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	assert.Equal(t, 0, buf.Len())
}

func TestOrderedBuffer_StableForDistinctKeys(t *testing.T) {
	type slot struct {
		index int
		value string
	}

	buf := orderedbuffer.New(3, func(a, b slot) int {
		return a.index - b.index
	})

	// completion order differs from submission order
	buf.Insert(slot{index: 2, value: "b"})
	buf.Insert(slot{index: 0, value: "a"})
	buf.Insert(slot{index: 1, value: "..."})

	var values []string
	for _, s := range buf.Drain() {
		values = append(values, s.value)
	}
	assert.Equal(t, []string{"a", "...", "b"}, values)
}
