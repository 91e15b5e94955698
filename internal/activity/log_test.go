package activity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDefaultsToSuccess(t *testing.T) {
	l := NewLog()
	l.Record("bulk_edit", "Updated 2 of 3 products")

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "bulk_edit", entries[0].Action)
	assert.Equal(t, StatusSuccess, entries[0].Status)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestRecordErrorStatus(t *testing.T) {
	l := NewLog()
	l.RecordError("title_optimization", "Failed to fetch products: boom")

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, StatusError, entries[0].Status)
}

func TestEntriesNewestFirst(t *testing.T) {
	l := NewLog()
	l.Record("a", "first")
	l.Record("b", "second")
	l.Record("c", "third")

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Details)
	assert.Equal(t, "first", entries[2].Details)
}

func TestCapacityEvictsOldest(t *testing.T) {
	l := NewLog()
	for i := 0; i < Capacity+1; i++ {
		l.Record("fill", fmt.Sprintf("entry %d", i))
	}

	entries := l.Entries()
	require.Len(t, entries, Capacity)
	assert.Equal(t, fmt.Sprintf("entry %d", Capacity), entries[0].Details)
	// entry 0 was evicted
	assert.Equal(t, "entry 1", entries[Capacity-1].Details)
}

func TestLenUnderHeavyInsertion(t *testing.T) {
	l := NewLog()
	for i := 0; i < 500; i++ {
		l.Record("fill", "x")
		require.LessOrEqual(t, l.Len(), Capacity)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Record("a", "original")

	entries := l.Entries()
	entries[0].Details = "mutated"

	assert.Equal(t, "original", l.Entries()[0].Details)
}
