package chain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// UnsignedTx is a contract-call transaction before signing. GasTipCap and
// GasFeeCap set means EIP-1559; GasPrice set means legacy.
type UnsignedTx struct {
	ChainID   *big.Int
	Nonce     uint64
	To        string
	Value     *big.Int
	Gas       uint64
	GasPrice  *big.Int
	GasTipCap *big.Int
	GasFeeCap *big.Int
	Data      []byte
}

// TxSigner signs anchoring transactions. Platform mode uses a local key;
// tenant mode never needs one.
type TxSigner interface {
	// Address is the 0x-prefixed sender address.
	Address() string
	// SignTx returns the raw signed transaction ready for
	// eth_sendRawTransaction.
	SignTx(tx *UnsignedTx) ([]byte, error)
}

// KeySigner signs with an in-process secp256k1 private key.
type KeySigner struct {
	priv *secp256k1.PrivateKey
	addr string
}

// NewKeySigner parses a 32-byte hex private key.
func NewKeySigner(hexKey string) (*KeySigner, error) {
	cleaned := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hexKey)), "0x")
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("anchor key is not hex: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("anchor key must be 32 bytes, got %d", len(raw))
	}
	priv := secp256k1.PrivKeyFromBytes(raw)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("anchor key is zero")
	}

	// Address: keccak256 of the uncompressed public key sans prefix byte,
	// last 20 bytes.
	pub := priv.PubKey().SerializeUncompressed()
	sum := keccak256(pub[1:])
	return &KeySigner{
		priv: priv,
		addr: "0x" + hex.EncodeToString(sum[12:]),
	}, nil
}

func (s *KeySigner) Address() string { return s.addr }

// SignTx serializes, hashes and signs tx, returning the raw envelope.
func (s *KeySigner) SignTx(tx *UnsignedTx) ([]byte, error) {
	if tx.ChainID == nil || tx.ChainID.Sign() <= 0 {
		return nil, fmt.Errorf("transaction requires a positive chain id")
	}
	to, err := addressBytes(tx.To)
	if err != nil {
		return nil, err
	}
	if tx.GasTipCap != nil && tx.GasFeeCap != nil {
		return s.signDynamicFee(tx, to)
	}
	if tx.GasPrice != nil {
		return s.signLegacy(tx, to)
	}
	return nil, fmt.Errorf("transaction has neither legacy nor dynamic fees")
}

// signLegacy produces an EIP-155 protected legacy transaction.
func (s *KeySigner) signLegacy(tx *UnsignedTx, to []byte) ([]byte, error) {
	sighash := keccak256(rlpList(
		rlpUint64(tx.Nonce),
		rlpUint(tx.GasPrice),
		rlpUint64(tx.Gas),
		rlpBytes(to),
		rlpUint(tx.Value),
		rlpBytes(tx.Data),
		rlpUint(tx.ChainID),
		rlpUint(nil),
		rlpUint(nil),
	))
	recID, r, sv := s.sign(sighash)

	// v = chainID*2 + 35 + recovery id
	v := new(big.Int).Mul(tx.ChainID, big.NewInt(2))
	v.Add(v, big.NewInt(35+int64(recID)))

	return rlpList(
		rlpUint64(tx.Nonce),
		rlpUint(tx.GasPrice),
		rlpUint64(tx.Gas),
		rlpBytes(to),
		rlpUint(tx.Value),
		rlpBytes(tx.Data),
		rlpUint(v),
		rlpUint(r),
		rlpUint(sv),
	), nil
}

// signDynamicFee produces a typed EIP-1559 transaction (type 0x02).
func (s *KeySigner) signDynamicFee(tx *UnsignedTx, to []byte) ([]byte, error) {
	emptyAccessList := rlpList()
	unsigned := rlpList(
		rlpUint(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpUint(tx.GasTipCap),
		rlpUint(tx.GasFeeCap),
		rlpUint64(tx.Gas),
		rlpBytes(to),
		rlpUint(tx.Value),
		rlpBytes(tx.Data),
		emptyAccessList,
	)
	sighash := keccak256([]byte{0x02}, unsigned)
	recID, r, sv := s.sign(sighash)

	signed := rlpList(
		rlpUint(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpUint(tx.GasTipCap),
		rlpUint(tx.GasFeeCap),
		rlpUint64(tx.Gas),
		rlpBytes(to),
		rlpUint(tx.Value),
		rlpBytes(tx.Data),
		emptyAccessList,
		rlpUint(big.NewInt(int64(recID))),
		rlpUint(r),
		rlpUint(sv),
	)
	return append([]byte{0x02}, signed...), nil
}

// sign returns the recovery id and the r/s pair for hash. SignCompact yields
// a low-s signature with the recovery flag in front.
func (s *KeySigner) sign(hash []byte) (byte, *big.Int, *big.Int) {
	sig := secpecdsa.SignCompact(s.priv, hash, false)
	recID := sig[0] - 27
	r := new(big.Int).SetBytes(sig[1:33])
	sv := new(big.Int).SetBytes(sig[33:65])
	return recID, r, sv
}

func addressBytes(addr string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(addr), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid contract address %q: %w", addr, err)
	}
	if len(raw) != 20 {
		return nil, fmt.Errorf("contract address must be 20 bytes, got %d", len(raw))
	}
	return raw, nil
}
