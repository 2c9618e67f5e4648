package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
)

func sampleV13() V13 {
	calls := []FunctionMetadata{
		{
			Name: "transfer",
			Arguments: []FunctionArgumentMetadata{
				{Name: "dest", Type: "<T::Lookup as StaticLookup>::Source"},
				{Name: "value", Type: "Compact<T::Balance>"},
			},
			Documentation: []string{"Transfer some liquid free balance to another account."},
		},
		{
			Name: "transfer_keep_alive",
			Arguments: []FunctionArgumentMetadata{
				{Name: "dest", Type: "<T::Lookup as StaticLookup>::Source"},
				{Name: "value", Type: "Compact<T::Balance>"},
			},
		},
	}
	storage := StorageMetadata{
		Prefix: "Balances",
		Entries: []StorageEntryMetadata{
			{
				Name:     "TotalIssuance",
				Modifier: ModifierDefault,
				Type:     PlainStorageEntry("Balance"),
				Default:  []byte{0, 0, 0, 0, 0, 0, 0, 0},
			},
			{
				Name:     "Account",
				Modifier: ModifierDefault,
				Type:     MapStorageEntry(HasherBlake2_128Concat, "T::AccountId", "AccountData", false),
			},
		},
	}
	return V13{
		Modules: []ModuleMetadata{
			{Name: "System", Index: 0},
			{Name: "Timestamp", Index: 1},
			{Name: "Balances", Index: 4, Storage: &storage, Calls: &calls},
		},
		Extrinsics: ExtrinsicMetadata{
			Version:          4,
			SignedExtensions: []string{"CheckVersion", "CheckGenesis", "CheckEra", "CheckNonce"},
		},
	}
}

func TestV13EncodeDecodeRoundTrip(t *testing.T) {
	m := sampleV13()
	w := scale.NewWriter()
	m.EncodeScale(w)
	require.NoError(t, w.Err())

	var got V13
	r := scale.NewReader(w.Bytes())
	got.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.Equal(t, m, got)
}

func TestStorageEntryTypeAllShapesRoundTrip(t *testing.T) {
	shapes := []StorageEntryType{
		PlainStorageEntry("Balance"),
		MapStorageEntry(HasherTwox64Concat, "T::Hash", "T::BlockNumber", true),
		DoubleMapStorageEntry(HasherBlake2_128, "u32", "u32", "Vec<u8>", HasherTwox128),
		NMapStorageEntry("(T::AccountId, T::AccountId)", []StorageHasher{HasherBlake2_128Concat, HasherTwox64Concat}, "Balance"),
	}
	for _, shape := range shapes {
		w := scale.NewWriter()
		shape.EncodeScale(w)
		require.NoError(t, w.Err())

		var got StorageEntryType
		r := scale.NewReader(w.Bytes())
		got.DecodeScale(r)
		require.NoError(t, r.Err())
		assert.Equal(t, shape, got)
	}
}

func TestModuleWithoutStorageOrCallsRoundTrip(t *testing.T) {
	m := ModuleMetadata{Name: "Sudo", Index: 7}
	w := scale.NewWriter()
	m.EncodeScale(w)
	require.NoError(t, w.Err())

	var got ModuleMetadata
	r := scale.NewReader(w.Bytes())
	got.DecodeScale(r)
	require.NoError(t, r.Err())
	assert.Nil(t, got.Storage)
	assert.Nil(t, got.Calls)
	assert.Nil(t, got.Events)
	assert.Equal(t, m.Name, got.Name)
	assert.Equal(t, m.Index, got.Index)
}

func TestStorageHasherRejectsOutOfRange(t *testing.T) {
	r := scale.NewReader([]byte{200})
	var h StorageHasher
	h.DecodeScale(r)
	assert.ErrorIs(t, r.Err(), scale.ErrInvalidDiscriminant)
}
