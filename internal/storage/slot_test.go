package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daybook/daybook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_ReadMissing(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "events.json"))

	_, err := slot.Read()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlot_WriteThenRead(t *testing.T) {
	slot := NewSlot(filepath.Join(t.TempDir(), "events.json"))

	require.NoError(t, slot.Write([]byte(`[{"id":"1"}]`)))
	data, err := slot.Read()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	// Overwrite is wholesale.
	require.NoError(t, slot.Write([]byte(`[]`)))
	data, err = slot.Read()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestSlot_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	slot := NewSlot(filepath.Join(dir, "events.json"))
	require.NoError(t, slot.Write([]byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "events.json", entries[0].Name())
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	slot, err := Open(config.Storage{Dir: dir, File: "events.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "events.json"), slot.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
