package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityEncoding(t *testing.T) {
	e := NewEntity(12345, 67890)
	assert.Equal(t, uint32(12345), e.Index())
	assert.Equal(t, uint32(67890), e.Version())
}

func TestEntityEdgeCases(t *testing.T) {
	tests := []struct {
		index, version uint32
	}{
		{0, 0},
		{0xFFFFFFFE, 0xFFFFFFFD},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,version=%d", tt.index, tt.version), func(t *testing.T) {
			e := NewEntity(tt.index, tt.version)
			assert.Equal(t, tt.index, e.Index())
			assert.Equal(t, tt.version, e.Version())
		})
	}
}

func TestNullAndTombstoneAreDistinct(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.False(t, Tombstone.IsNull())
	assert.True(t, Tombstone.isTombstone())
	assert.False(t, Null.isTombstone())
	assert.NotEqual(t, Null, Tombstone)
	assert.Equal(t, Null.Index(), Tombstone.Index())
}

func TestFreeListEncodingRoundTrips(t *testing.T) {
	link := withFreeListNext(7)
	assert.True(t, link.isTombstone())
	assert.Equal(t, uint32(7), link.freeListNext())

	tail := withFreeListNext(nullIndex)
	assert.Equal(t, Tombstone, tail)
}
