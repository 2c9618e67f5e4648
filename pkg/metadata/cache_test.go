package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
)

func TestCacheReturnsSameDecodedValueForRepeatedBlob(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	blob := rawV13Blob(t)

	v1, err := c.ParseRaw(blob)
	require.NoError(t, err)
	v2, err := c.ParseRaw(blob)
	require.NoError(t, err)

	assert.Same(t, v1, v2)
}

func TestCacheDistinguishesDifferentBlobs(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	blobA := rawV13Blob(t)
	m := sampleV13()
	m.Modules = m.Modules[:1]
	withDifferentModules := Version{number: latestVersion, v13: &m}
	w := scale.NewWriter()
	withDifferentModules.EncodeScale(w)
	require.NoError(t, w.Err())

	vA, err := c.ParseRaw(blobA)
	require.NoError(t, err)
	vB, err := c.ParseRaw(w.Bytes())
	require.NoError(t, err)

	assert.NotSame(t, vA, vB)
}
