package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostMemoryPeekPoke(t *testing.T) {
	hm := newHostMemory(16)
	require.NoError(t, hm.poke(3, 200))
	v, err := hm.peek(3)
	require.NoError(t, err)
	assert.Equal(t, int32(200), v)
}

func TestHostMemoryPeekPokeWord(t *testing.T) {
	hm := newHostMemory(16)
	require.NoError(t, hm.pokeWord(4, 1000))
	v, err := hm.peekWord(4)
	require.NoError(t, err)
	assert.Equal(t, int32(1000), v)
}

func TestHostMemoryOutOfRange(t *testing.T) {
	hm := newHostMemory(4)
	for _, tc := range []struct {
		name string
		fn   func() error
	}{
		{"peek negative", func() error { _, err := hm.peek(-1); return err }},
		{"peek past end", func() error { _, err := hm.peek(4); return err }},
		{"poke past end", func() error { return hm.poke(4, 1) }},
		{"peekw at last byte", func() error { _, err := hm.peekWord(3); return err }},
		{"pokew at last byte", func() error { return hm.pokeWord(3, 1) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			var rangeErr memRangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}
}
