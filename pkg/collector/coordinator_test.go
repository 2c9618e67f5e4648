package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dotscale/substrate-go/config"
)

// jsonRPCServer builds an httptest server dispatching by JSON-RPC method
// name to a fixed set of canned results, so each chain in a coordinator
// test can be driven independently of the others.
func jsonRPCServer(t *testing.T, results map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result, ok := results[req.Method]
		if !ok {
			t.Fatalf("unexpected method %s", req.Method)
		}
		raw, err := json.Marshal(result)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(response{JSONRPC: "2.0", ID: 1, Result: raw})
	}))
}

func TestRunAllCancelsAllChainsOnOneFatalError(t *testing.T) {
	// "good" never sees a runtime upgrade after its first block, so it
	// falls into the real 10s poll sleep — it only stops because the
	// shared context gets cancelled by "bad" failing out from under it.
	good := jsonRPCServer(t, map[string]interface{}{
		"chain_getHeader":       map[string]string{"number": "0x0"},
		"chain_getBlockHash":    []string{"0x00"},
		"state_getRuntimeVersion": map[string]interface{}{"specName": "westend", "specVersion": 1},
		"state_getMetadata":     "0x00",
	})
	defer good.Close()

	bad := jsonRPCServer(t, map[string]interface{}{
		"chain_getHeader":         map[string]string{"number": "0x0"},
		"chain_getBlockHash":      []string{"0x01"},
		"state_getRuntimeVersion": map[string]interface{}{"specName": "polkadot", "specVersion": 1},
	})
	defer bad.Close()

	chains := []config.Chain{
		{ChainName: "westend", Endpoint: good.URL, Directory: t.TempDir()},
		{ChainName: "kusama", Endpoint: bad.URL, Directory: t.TempDir()},
	}

	done := make(chan error, 1)
	go func() {
		done <- RunAll(context.Background(), chains, zap.NewNop(), nil)
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		var mismatch *ErrSpecNameMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "kusama", mismatch.Chain)
	case <-time.After(5 * time.Second):
		t.Fatal("RunAll did not return after one chain's fatal error; cancellation did not propagate")
	}
}
