package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// RPCClient is a minimal Ethereum JSON-RPC client. Only the handful of
// methods the anchoring flow needs are exposed, each as a typed call.
type RPCClient struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
	nextID     atomic.Uint64
}

// NewRPCClient creates a client for one RPC endpoint. A nil httpClient gets
// a 30s-timeout default; chain RPC endpoints are public infrastructure and
// must never hang a pipeline worker indefinitely.
func NewRPCClient(url string, httpClient *http.Client, log zerolog.Logger) *RPCClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &RPCClient{url: url, httpClient: httpClient, log: log}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *RPCClient) call(ctx context.Context, result any, method string, params ...any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%s: encoding request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var rr rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return fmt.Errorf("%s: decoding response: %w", method, err)
	}
	if rr.Error != nil {
		return fmt.Errorf("%s: %w", method, rr.Error)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(rr.Result, result)
}

// ChainID returns the chain's EIP-155 id.
func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	var q string
	if err := c.call(ctx, &q, "eth_chainId"); err != nil {
		return nil, err
	}
	return parseBig(q)
}

// BlockNumber returns the latest block height.
func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	var q string
	if err := c.call(ctx, &q, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return parseUint(q)
}

// PendingNonce returns the account's next nonce including pending txs.
func (c *RPCClient) PendingNonce(ctx context.Context, address string) (uint64, error) {
	var q string
	if err := c.call(ctx, &q, "eth_getTransactionCount", address, "pending"); err != nil {
		return 0, err
	}
	return parseUint(q)
}

// GasPrice returns the legacy gas price suggestion.
func (c *RPCClient) GasPrice(ctx context.Context) (*big.Int, error) {
	var q string
	if err := c.call(ctx, &q, "eth_gasPrice"); err != nil {
		return nil, err
	}
	return parseBig(q)
}

// FeeHistoryResult is the subset of eth_feeHistory the fee estimator reads.
type FeeHistoryResult struct {
	BaseFeePerGas []string   `json:"baseFeePerGas"`
	Reward        [][]string `json:"reward"`
}

// FeeHistory returns base fees and priority-fee rewards over recent blocks.
func (c *RPCClient) FeeHistory(ctx context.Context, blockCount uint64, percentiles []float64) (*FeeHistoryResult, error) {
	if percentiles == nil {
		percentiles = []float64{}
	}
	var res FeeHistoryResult
	if err := c.call(ctx, &res, "eth_feeHistory", formatUint(blockCount), "latest", percentiles); err != nil {
		return nil, err
	}
	return &res, nil
}

// CallMsg describes a transaction for gas estimation.
type CallMsg struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Data string `json:"data"`
}

// EstimateGas returns the node's gas estimate for msg.
func (c *RPCClient) EstimateGas(ctx context.Context, msg CallMsg) (uint64, error) {
	var q string
	if err := c.call(ctx, &q, "eth_estimateGas", msg); err != nil {
		return 0, err
	}
	return parseUint(q)
}

// SendRawTransaction submits a signed transaction and returns its hash.
func (c *RPCClient) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	var hash string
	if err := c.call(ctx, &hash, "eth_sendRawTransaction", "0x"+hexEncode(raw)); err != nil {
		return "", err
	}
	return hash, nil
}

// Log is one contract event log entry.
type Log struct {
	Address     string   `json:"address"`
	Topics      []string `json:"topics"`
	Data        string   `json:"data"`
	BlockNumber string   `json:"blockNumber"`
	TxHash      string   `json:"transactionHash"`
}

// TxReceipt is the subset of a transaction receipt the verifier reads.
type TxReceipt struct {
	Status      string `json:"status"`
	BlockNumber string `json:"blockNumber"`
	Logs        []Log  `json:"logs"`
}

// TransactionReceipt returns the receipt for hash, or nil while the
// transaction is still pending or unknown.
func (c *RPCClient) TransactionReceipt(ctx context.Context, hash string) (*TxReceipt, error) {
	var raw json.RawMessage
	if err := c.call(ctx, &raw, "eth_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var rcpt TxReceipt
	if err := json.Unmarshal(raw, &rcpt); err != nil {
		return nil, err
	}
	return &rcpt, nil
}

// FilterQuery selects contract logs by block range, address and topic0.
type FilterQuery struct {
	FromBlock uint64
	ToBlock   string // hex quantity or "latest"
	Address   string
	Topic0    string
}

// Logs returns event logs matching the query, oldest first.
func (c *RPCClient) Logs(ctx context.Context, q FilterQuery) ([]Log, error) {
	toBlock := q.ToBlock
	if toBlock == "" {
		toBlock = "latest"
	}
	filter := map[string]any{
		"fromBlock": formatUint(q.FromBlock),
		"toBlock":   toBlock,
		"address":   q.Address,
		"topics":    []any{q.Topic0},
	}
	var logs []Log
	if err := c.call(ctx, &logs, "eth_getLogs", filter); err != nil {
		return nil, err
	}
	return logs, nil
}

// BlockTimestamp returns the timestamp of the block at height number.
func (c *RPCClient) BlockTimestamp(ctx context.Context, number uint64) (time.Time, error) {
	var block struct {
		Timestamp string `json:"timestamp"`
	}
	if err := c.call(ctx, &block, "eth_getBlockByNumber", formatUint(number), false); err != nil {
		return time.Time{}, err
	}
	ts, err := parseUint(block.Timestamp)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(ts), 0).UTC(), nil
}

// parseBig decodes a 0x-prefixed hex quantity.
func parseBig(q string) (*big.Int, error) {
	s := strings.TrimPrefix(q, "0x")
	if s == "" {
		return nil, fmt.Errorf("empty hex quantity %q", q)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", q)
	}
	return n, nil
}

func parseUint(q string) (uint64, error) {
	n, err := parseBig(q)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("quantity %q overflows uint64", q)
	}
	return n.Uint64(), nil
}

func formatUint(v uint64) string {
	return fmt.Sprintf("0x%x", v)
}
