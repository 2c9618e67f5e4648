package collector

import "fmt"

// ErrSpecNameMismatch is fatal: the chain answering at the configured
// endpoint is not the chain this collector was configured to track. The
// collector that returns it must stop, and per the concurrency model its
// caller treats this as a process-terminating event.
type ErrSpecNameMismatch struct {
	Chain     string
	SpecName  string
	BlockHash string
}

func (e *ErrSpecNameMismatch) Error() string {
	return fmt.Sprintf("collector: chain %q: endpoint reports spec_name %q at block %s", e.Chain, e.SpecName, e.BlockHash)
}

// RPCError wraps a JSON-RPC error object returned verbatim by the node.
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("collector: rpc %s: %s (code %d)", e.Method, e.Message, e.Code)
}
