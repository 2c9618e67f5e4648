// Package testserdes holds small round-trip helpers shared by this
// module's test files, mirroring the teacher's own internal/testserdes
// package: encode a value, decode it into a fresh zero value, and assert
// the two are equal.
package testserdes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// EncodeDecode checks that expected survives a SCALE encode/decode round
// trip into actual, which must be a pointer to a zero value of expected's
// type.
func EncodeDecode(t *testing.T, expected scale.Encodable, actual scale.Decodable) {
	t.Helper()
	data, err := scale.Encode(expected)
	require.NoError(t, err)
	require.NoError(t, scale.DecodeExact(data, actual))
	require.Equal(t, expected, actual, diff(expected, actual))
}

// Encode is a thin wrapper around scale.Encode for callers that only need
// the bytes, not the round trip assertion.
func Encode(t *testing.T, v scale.Encodable) []byte {
	t.Helper()
	data, err := scale.Encode(v)
	require.NoError(t, err)
	return data
}

// diff renders a unified diff between the spew dumps of want and got, for
// a more readable failure message than require.Equal's default output on
// large nested structs (metadata trees, transactions).
func diff(want, got interface{}) string {
	a := spew.Sdump(want)
	b := spew.Sdump(got)
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	return text
}
