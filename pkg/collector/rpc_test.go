package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCClientHeaderParsesHexNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.Equal(t, 1, req.ID)
		assert.Equal(t, "chain_getHeader", req.Method)

		_ = json.NewEncoder(w).Encode(response{
			JSONRPC: "2.0", ID: 1,
			Result: json.RawMessage(`{"number":"0x1a2b"}`),
		})
	}))
	defer srv.Close()

	c := NewRPCClient(srv.URL)
	n, err := c.Header(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1a2b), n)
}

func TestRPCClientSurfacesErrorObjectVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{
			JSONRPC: "2.0", ID: 1,
			Error: &rpcErrorObject{Code: -32000, Message: "boom"},
		})
	}))
	defer srv.Close()

	c := NewRPCClient(srv.URL)
	_, err := c.Header(context.Background())
	require.Error(t, err)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
	assert.Equal(t, "boom", rpcErr.Message)
}

func TestRPCClientRuntimeVersionParsesApis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{
			JSONRPC: "2.0", ID: 1,
			Result: json.RawMessage(`{
				"specName": "polkadot", "implName": "parity-polkadot",
				"authoringVersion": 0, "specVersion": 9370, "implVersion": 0,
				"apis": [["0xdf6acb689907609b", 4], ["0x37e397fc7c91f5e4", 1]]
			}`),
		})
	}))
	defer srv.Close()

	c := NewRPCClient(srv.URL)
	rv, err := c.RuntimeVersion(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "polkadot", rv.SpecName)
	assert.Equal(t, uint64(9370), rv.SpecVersion)
	require.Len(t, rv.Apis, 2)
	assert.Equal(t, "0xdf6acb689907609b", rv.Apis[0].Name)
	assert.Equal(t, int64(4), rv.Apis[0].Version)
}

func TestRPCClientBlockHashesBatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "chain_getBlockHash", req.Method)
		_ = json.NewEncoder(w).Encode(response{
			JSONRPC: "2.0", ID: 1,
			Result: json.RawMessage(`["0x01","0x02","0x03"]`),
		})
	}))
	defer srv.Close()

	c := NewRPCClient(srv.URL)
	hashes, err := c.BlockHashes(context.Background(), []uint64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x01", "0x02", "0x03"}, hashes)
}
