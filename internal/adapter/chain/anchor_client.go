package chain

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"iso-evidence-gateway/config"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

const receiptPollInterval = 2 * time.Second

// AnchorClient implements ports.AnchorClient against one chain's anchoring
// contract. Submission signs locally and retries the whole submit-and-wait
// cycle; lookups are read-only and need no signer.
type AnchorClient struct {
	chain  domain.ChainConfig
	rpc    *RPCClient
	signer TxSigner
	cfg    config.AnchorConfig
	log    zerolog.Logger

	poll time.Duration
}

// NewAnchorClient creates a client. signer may be nil for read-only use.
func NewAnchorClient(chainCfg domain.ChainConfig, rpc *RPCClient, signer TxSigner, cfg config.AnchorConfig, log zerolog.Logger) *AnchorClient {
	return &AnchorClient{
		chain:  chainCfg,
		rpc:    rpc,
		signer: signer,
		cfg:    cfg,
		log:    log.With().Str("chain", chainCfg.Name).Logger(),
		poll:   receiptPollInterval,
	}
}

// Anchor submits the fingerprint to the anchoring contract and waits for
// inclusion. The full submit-and-wait cycle is retried with linear backoff;
// the last error surfaces when every attempt fails.
func (c *AnchorClient) Anchor(ctx context.Context, fingerprint string) (domain.AnchorResult, error) {
	if c.signer == nil {
		return domain.AnchorResult{}, fmt.Errorf("chain %s: no anchoring key configured", c.chain.Name)
	}
	fp, err := ParseFingerprint(fingerprint)
	if err != nil {
		return domain.AnchorResult{}, err
	}
	calldata := anchorCalldata(fp)

	attempts := c.cfg.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * time.Second
			select {
			case <-ctx.Done():
				return domain.AnchorResult{}, ctx.Err()
			case <-time.After(backoff):
			}
		}
		res, err := c.submitOnce(ctx, calldata)
		if err == nil {
			c.log.Info().Str("txid", res.TxID).Uint64("block", res.Block).
				Int("attempt", attempt).Msg("fingerprint anchored")
			return res, nil
		}
		lastErr = err
		c.log.Warn().Err(err).Int("attempt", attempt).Msg("anchor attempt failed")
	}
	return domain.AnchorResult{}, lastErr
}

func (c *AnchorClient) submitOnce(ctx context.Context, calldata []byte) (domain.AnchorResult, error) {
	chainID, err := c.rpc.ChainID(ctx)
	if err != nil {
		return domain.AnchorResult{}, fmt.Errorf("chain id: %w", err)
	}
	nonce, err := c.rpc.PendingNonce(ctx, c.signer.Address())
	if err != nil {
		return domain.AnchorResult{}, fmt.Errorf("nonce: %w", err)
	}

	tx := &UnsignedTx{
		ChainID: chainID,
		Nonce:   nonce,
		To:      c.chain.Contract,
		Value:   big.NewInt(0),
		Gas:     c.estimateGas(ctx, calldata),
		Data:    calldata,
	}
	c.fillFees(ctx, tx)

	raw, err := c.signer.SignTx(tx)
	if err != nil {
		return domain.AnchorResult{}, fmt.Errorf("signing: %w", err)
	}
	txid, err := c.rpc.SendRawTransaction(ctx, raw)
	if err != nil {
		return domain.AnchorResult{}, fmt.Errorf("submit: %w", err)
	}
	return c.waitMined(ctx, txid)
}

// fillFees prefers EIP-1559 pricing from fee history and falls back to a
// legacy gas price when the chain does not expose base fees.
func (c *AnchorClient) fillFees(ctx context.Context, tx *UnsignedTx) {
	hist, err := c.rpc.FeeHistory(ctx, 1, []float64{50})
	if err == nil && len(hist.BaseFeePerGas) > 0 {
		base, berr := parseBig(hist.BaseFeePerGas[len(hist.BaseFeePerGas)-1])
		if berr == nil && base.Sign() > 0 {
			tip := big.NewInt(1_500_000_000) // 1.5 gwei floor
			if len(hist.Reward) > 0 && len(hist.Reward[0]) > 0 {
				if r, rerr := parseBig(hist.Reward[0][0]); rerr == nil && r.Cmp(tip) > 0 {
					tip = r
				}
			}
			// feeCap = 2*base + tip leaves room for one base fee doubling.
			feeCap := new(big.Int).Mul(base, big.NewInt(2))
			feeCap.Add(feeCap, tip)
			tx.GasTipCap = tip
			tx.GasFeeCap = feeCap
			return
		}
	}

	price, err := c.rpc.GasPrice(ctx)
	if err != nil {
		price = big.NewInt(25_000_000_000) // 25 gwei last resort
		c.log.Warn().Err(err).Msg("gas price lookup failed, using static fallback")
	}
	tx.GasPrice = price
}

// estimateGas asks the node and adds a 20% margin; estimation failure falls
// back to the configured ceiling rather than aborting the attempt.
func (c *AnchorClient) estimateGas(ctx context.Context, calldata []byte) uint64 {
	ceiling := c.cfg.GasCeiling
	if ceiling == 0 {
		ceiling = 200_000
	}
	est, err := c.rpc.EstimateGas(ctx, CallMsg{
		From: c.signer.Address(),
		To:   c.chain.Contract,
		Data: "0x" + hexEncode(calldata),
	})
	if err != nil {
		c.log.Warn().Err(err).Uint64("ceiling", ceiling).Msg("gas estimation failed, using ceiling")
		return ceiling
	}
	withMargin := est + est/5
	if withMargin > ceiling {
		return ceiling
	}
	return withMargin
}

func (c *AnchorClient) waitMined(ctx context.Context, txid string) (domain.AnchorResult, error) {
	timeout := c.cfg.ReceiptTimeout
	if timeout <= 0 {
		timeout = 180 * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	for {
		rcpt, err := c.rpc.TransactionReceipt(waitCtx, txid)
		if err == nil && rcpt != nil {
			if rcpt.Status != "0x1" {
				return domain.AnchorResult{}, fmt.Errorf("transaction %s reverted", txid)
			}
			block, perr := parseUint(rcpt.BlockNumber)
			if perr != nil {
				block = 0
			}
			return domain.AnchorResult{TxID: txid, Block: block}, nil
		}
		select {
		case <-waitCtx.Done():
			return domain.AnchorResult{}, fmt.Errorf("transaction %s not mined within %s", txid, timeout)
		case <-ticker.C:
		}
	}
}

// FindAnchor scans recent contract logs for the fingerprint, newest first.
// The lookup is advisory: any failure, including an unreachable chain,
// yields a non-match rather than an error.
func (c *AnchorClient) FindAnchor(ctx context.Context, fingerprint string) domain.ChainMatch {
	fp, err := ParseFingerprint(fingerprint)
	if err != nil {
		return domain.ChainMatch{}
	}

	head, err := c.rpc.BlockNumber(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("anchor lookup skipped, chain unreachable")
		return domain.ChainMatch{}
	}
	lookback := c.cfg.LookbackBlocks
	if lookback == 0 {
		lookback = 50_000
	}
	from := uint64(0)
	if head > lookback {
		from = head - lookback
	}

	logs, err := c.rpc.Logs(ctx, FilterQuery{
		FromBlock: from,
		Address:   c.chain.Contract,
		Topic0:    AnchoredTopic0,
	})
	if err != nil {
		c.log.Debug().Err(err).Msg("anchor lookup skipped, log query failed")
		return domain.ChainMatch{}
	}

	for i := len(logs) - 1; i >= 0; i-- {
		got, err := fingerprintFromLogData(logs[i].Data)
		if err != nil || got != fp {
			continue
		}
		match := domain.ChainMatch{Matches: true, TxID: logs[i].TxHash}
		if block, perr := parseUint(logs[i].BlockNumber); perr == nil {
			if ts, terr := c.rpc.BlockTimestamp(ctx, block); terr == nil {
				match.AnchoredAt = &ts
			}
		}
		return match
	}
	return domain.ChainMatch{}
}

// VerifyTx checks that txid anchored the expected fingerprint on the
// configured contract. Returned errors mean the chain was unreachable;
// a reachable chain that disproves the claim yields Matches=false.
func (c *AnchorClient) VerifyTx(ctx context.Context, txid, fingerprint string) (domain.TxProof, error) {
	fp, err := ParseFingerprint(fingerprint)
	if err != nil {
		return domain.TxProof{}, err
	}

	rcpt, err := c.rpc.TransactionReceipt(ctx, txid)
	if err != nil {
		return domain.TxProof{}, fmt.Errorf("chain %s: %w", c.chain.Name, err)
	}
	if rcpt == nil || rcpt.Status != "0x1" {
		return domain.TxProof{}, nil
	}

	block, _ := parseUint(rcpt.BlockNumber)
	for _, lg := range rcpt.Logs {
		if !strings.EqualFold(lg.Address, c.chain.Contract) {
			continue
		}
		if len(lg.Topics) == 0 || !strings.EqualFold(lg.Topics[0], AnchoredTopic0) {
			continue
		}
		got, perr := fingerprintFromLogData(lg.Data)
		if perr != nil || got != fp {
			continue
		}
		proof := domain.TxProof{Matches: true, Block: block}
		if ts, terr := c.rpc.BlockTimestamp(ctx, block); terr == nil {
			proof.AnchoredAt = &ts
		}
		return proof, nil
	}
	return domain.TxProof{Block: block}, nil
}

// Factory builds anchor clients per resolved chain config.
type Factory struct {
	cfg        config.AnchorConfig
	httpClient *http.Client
	log        zerolog.Logger
}

// NewFactory creates a Factory. A nil httpClient uses the RPC default.
func NewFactory(cfg config.AnchorConfig, httpClient *http.Client, log zerolog.Logger) *Factory {
	return &Factory{cfg: cfg, httpClient: httpClient, log: log}
}

// ForChain builds a client for one chain. privateKeyHex may be empty for
// read-only (tenant verification) use.
func (f *Factory) ForChain(chainCfg domain.ChainConfig, privateKeyHex string) (ports.AnchorClient, error) {
	if chainCfg.RPCURL == "" {
		return nil, fmt.Errorf("chain %s has no rpc url", chainCfg.Name)
	}
	if chainCfg.Contract == "" {
		return nil, fmt.Errorf("chain %s has no contract address", chainCfg.Name)
	}
	var signer TxSigner
	if privateKeyHex != "" {
		var err error
		signer, err = NewKeySigner(privateKeyHex)
		if err != nil {
			return nil, err
		}
	}
	rpc := NewRPCClient(chainCfg.RPCURL, f.httpClient, f.log)
	return NewAnchorClient(chainCfg, rpc, signer, f.cfg, f.log), nil
}
