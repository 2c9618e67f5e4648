package main

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/metadata"
)

func TestGoTypeMapsKnownSubstrateTypes(t *testing.T) {
	assert.Equal(t, "uint32", goType("Compact<u32>"))
	assert.Equal(t, "uint64", goType("u64"))
	assert.Equal(t, "bool", goType("bool"))
	assert.Equal(t, "primitives.AccountID", goType("T::AccountId"))
	assert.Equal(t, "primitives.Balance", goType("Compact<BalanceOf>"))
	assert.Equal(t, "[]byte", goType("SomeExoticType"))
}

func TestExportedNameTitleCasesSnakeCase(t *testing.T) {
	assert.Equal(t, "TransferKeepAlive", exportedName("transfer_keep_alive"))
	assert.Equal(t, "Dest", exportedName("dest"))
}

func TestGenerateProducesFormattableGoSource(t *testing.T) {
	calls := []metadata.ExtrinsicInfo{
		{
			ModuleID: 5, DispatchID: 0,
			ModuleName: "balances", ExtrinsicName: "transfer",
			Args: []metadata.FunctionArgumentMetadata{
				{Name: "dest", Type: "T::AccountId"},
				{Name: "value", Type: "Compact<BalanceOf>"},
			},
		},
	}

	src, err := generate("calls", calls)
	require.NoError(t, err)

	_, err = format.Source(src)
	require.NoError(t, err, "generated source must be valid Go: %s", src)
}
