package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkByGenesisResolvesWellKnown(t *testing.T) {
	assert.Equal(t, Polkadot, NetworkByGenesis(Polkadot.Genesis()))
	assert.Equal(t, Kusama, NetworkByGenesis(Kusama.Genesis()))
	assert.Equal(t, Westend, NetworkByGenesis(Westend.Genesis()))
}

func TestNetworkByGenesisFallsBackToCustom(t *testing.T) {
	var g [32]byte
	g[0] = 0x01
	n := NetworkByGenesis(g)
	assert.Equal(t, "Custom", n.Name())
	assert.Equal(t, g, n.Genesis())
}

func TestDefaultSpecVersion(t *testing.T) {
	_, ok := Westend.DefaultSpecVersion()
	assert.False(t, ok, "westend has no stable default spec_version")

	v, ok := Polkadot.DefaultSpecVersion()
	assert.True(t, ok)
	assert.NotZero(t, v)
}

func TestGenesisHashesAre32Bytes(t *testing.T) {
	for _, n := range []Network{Polkadot, Kusama, Westend} {
		g := n.Genesis()
		assert.Len(t, g, 32)
	}
}
