package metadata

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dotscale/substrate-go/pkg/scale"
)

// magic is the hard-coded 4-byte prefix ("meta" in ASCII) that
// state_getMetadata's hex blob starts with, ahead of the SCALE-encoded
// version union.
var magic = []byte("meta")

// jsonRPCResponse is the envelope state_getMetadata's JSON-RPC 2.0
// response is wrapped in.
type jsonRPCResponse struct {
	JSONRPC string `json:"jsonrpc"`
	Result  string `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrJSONRPCError is returned when the JSON-RPC envelope itself carries an
// error object rather than a result.
var ErrJSONRPCError = errors.New("metadata: JSON-RPC response carried an error")

// ParseJSONRPC parses a full JSON-RPC 2.0 response body as returned by
// state_getMetadata, hex-decodes its "result" field, and decodes the
// metadata version union inside.
func ParseJSONRPC(body []byte) (*Version, error) {
	var resp jsonRPCResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("metadata: parse JSON-RPC response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%w: %d %s", ErrJSONRPCError, resp.Error.Code, resp.Error.Message)
	}
	return ParseHex(resp.Result)
}

// ParseHex parses a hex string (with or without a leading "0x") into a
// metadata version union.
func ParseHex(s string) (*Version, error) {
	s = trimHexPrefix(s)
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("metadata: decode hex: %w", err)
	}
	return ParseRaw(raw)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ParseRaw strips the leading "meta" magic number, if present, and
// SCALE-decodes the remaining bytes as a metadata version union.
func ParseRaw(raw []byte) (*Version, error) {
	body := raw
	if bytes.HasPrefix(raw, magic) {
		body = raw[len(magic):]
	}
	var v Version
	r := scale.NewReader(body)
	v.DecodeScale(r)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("metadata: decode: %w", err)
	}
	return &v, nil
}
