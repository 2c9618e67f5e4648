package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateMissingFileIsZeroValue(t *testing.T) {
	dir := t.TempDir()
	s, err := loadState(dir)
	require.NoError(t, err)
	assert.Equal(t, State{}, s)
}

func TestSaveStateThenLoadStateRoundTrips(t *testing.T) {
	dir := t.TempDir()
	want := State{SpecVersion: 9370, LastBlock: 12345}
	require.NoError(t, saveState(dir, want))

	got, err := loadState(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteSidecarsNamesFilesByVersion(t *testing.T) {
	dir := t.TempDir()
	rv := RuntimeVersion{SpecName: "kusama", SpecVersion: 9280}
	require.NoError(t, writeSidecars(dir, rv, "0xdeadbeef"))

	metaData, err := os.ReadFile(filepath.Join(dir, "metadata_kusama_9280.hex"))
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", string(metaData))

	_, err = os.Stat(filepath.Join(dir, "version_kusama_9280.json"))
	require.NoError(t, err)
}

func TestWriteSidecarsIsIdempotentOnReplay(t *testing.T) {
	dir := t.TempDir()
	rv := RuntimeVersion{SpecName: "kusama", SpecVersion: 9280}
	require.NoError(t, writeSidecars(dir, rv, "0xdeadbeef"))
	first, err := os.ReadFile(filepath.Join(dir, "version_kusama_9280.json"))
	require.NoError(t, err)

	require.NoError(t, writeSidecars(dir, rv, "0xdeadbeef"))
	second, err := os.ReadFile(filepath.Join(dir, "version_kusama_9280.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
