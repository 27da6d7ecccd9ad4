package ledger

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"
)

// rpcErrAccountMissing is the JSON-RPC error code the ledger returns for
// token balance queries against nonexistent accounts.
const rpcErrAccountMissing = -32602

// Client implements ports.LedgerReader against the ledger's JSON-RPC read
// endpoint. It never retries; transient failures surface as errors for the
// service layer to classify.
type Client struct {
	endpoint   string
	programID  domain.Address
	httpClient *http.Client
	log        zerolog.Logger
	nextID     atomic.Uint64
}

// NewClient creates a ledger read client.
func NewClient(endpoint string, programID domain.Address, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		programID:  programID,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
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

func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
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

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

type accountValue struct {
	Data []string `json:"data"` // [base64 payload, encoding]
}

type accountInfoResult struct {
	Value *accountValue `json:"value"`
}

// FetchRaw fetches a record's raw bytes. A null RPC result means the ledger
// explicitly reports absence.
func (c *Client) FetchRaw(ctx context.Context, addr domain.Address) ([]byte, error) {
	var result accountInfoResult
	params := []interface{}{
		addr.String(),
		map[string]string{"encoding": "base64", "commitment": "confirmed"},
	}
	if err := c.call(ctx, "getAccountInfo", params, &result); err != nil {
		return nil, err
	}
	if result.Value == nil {
		return nil, ports.ErrAccountNotFound
	}
	if len(result.Value.Data) == 0 {
		return nil, fmt.Errorf("account %s: empty data field", addr)
	}
	raw, err := base64.StdEncoding.DecodeString(result.Value.Data[0])
	if err != nil {
		return nil, fmt.Errorf("account %s: decoding data: %w", addr, err)
	}
	return raw, nil
}

// AccountExists checks whether a record exists on the ledger.
func (c *Client) AccountExists(ctx context.Context, addr domain.Address) (bool, error) {
	_, err := c.FetchRaw(ctx, addr)
	if err == ports.ErrAccountNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type programAccount struct {
	Pubkey  string       `json:"pubkey"`
	Account accountValue `json:"account"`
}

// FetchAllOfKind scans program-owned records of one kind, matching on the
// kind discriminator at offset 0 plus an optional caller filter.
func (c *Client) FetchAllOfKind(ctx context.Context, kind ports.AccountKind, filter *ports.MemcmpFilter) ([]ports.RawAccount, error) {
	filters := []interface{}{
		map[string]interface{}{
			"memcmp": map[string]interface{}{
				"offset": 0,
				"bytes":  base58.Encode(kindDiscriminator(kind)),
			},
		},
	}
	if filter != nil {
		filters = append(filters, map[string]interface{}{
			"memcmp": map[string]interface{}{
				"offset": filter.Offset,
				"bytes":  base58.Encode(filter.Bytes),
			},
		})
	}

	var result []programAccount
	params := []interface{}{
		c.programID.String(),
		map[string]interface{}{
			"encoding":   "base64",
			"commitment": "confirmed",
			"filters":    filters,
		},
	}
	if err := c.call(ctx, "getProgramAccounts", params, &result); err != nil {
		return nil, err
	}

	accounts := make([]ports.RawAccount, 0, len(result))
	for _, pa := range result {
		addr, err := domain.ParseAddress(pa.Pubkey)
		if err != nil {
			return nil, err
		}
		if len(pa.Account.Data) == 0 {
			c.log.Warn().Str("address", pa.Pubkey).Msg("program account without data, skipping")
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(pa.Account.Data[0])
		if err != nil {
			return nil, fmt.Errorf("account %s: decoding data: %w", pa.Pubkey, err)
		}
		accounts = append(accounts, ports.RawAccount{Address: addr, Data: raw})
	}
	return accounts, nil
}

type tokenBalanceResult struct {
	Value struct {
		Amount string `json:"amount"`
	} `json:"value"`
}

// TokenBalance returns the vault's balance in minor units, 0 when the vault
// record does not exist.
func (c *Client) TokenBalance(ctx context.Context, vault domain.Address) (uint64, error) {
	var result tokenBalanceResult
	params := []interface{}{vault.String(), map[string]string{"commitment": "confirmed"}}
	err := c.call(ctx, "getTokenAccountBalance", params, &result)
	if err != nil {
		var rpcErr *rpcError
		if asRPCError(err, &rpcErr) && rpcErr.Code == rpcErrAccountMissing {
			return 0, nil
		}
		return 0, err
	}
	amount, err := strconv.ParseUint(result.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("vault %s: parsing amount %q: %w", vault, result.Value.Amount, err)
	}
	return amount, nil
}

func asRPCError(err error, target **rpcError) bool {
	e, ok := err.(*rpcError)
	if ok {
		*target = e
	}
	return ok
}

// kindDiscriminator is the 8-byte prefix the ledger program stores at the
// start of every record of the given kind.
func kindDiscriminator(kind ports.AccountKind) []byte {
	sum := sha256.Sum256([]byte("account:" + string(kind)))
	return sum[:8]
}

// HealthCheck verifies the RPC endpoint is reachable.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a ledger health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Name() string { return "ledger" }

func (h *HealthCheck) Check(ctx context.Context) error {
	var status string
	return h.client.call(ctx, "getHealth", []interface{}{}, &status)
}
