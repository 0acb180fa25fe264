// Package helius speaks to Helius: it decodes webhook deliveries and keeps
// the webhook subscribed to the watched addresses.
package helius

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/swapclassifier"
	"github.com/gabapcia/swapwatch/internal/swapnotify"
)

type (
	// Payload is the body of one webhook delivery.
	Payload []TransactionPayload

	// TransactionPayload is one transaction of a delivery. It carries the raw
	// transaction and meta sections together with the enhanced summaries.
	TransactionPayload struct {
		Signature      string                 `json:"signature"`
		Slot           uint64                 `json:"slot"`
		Transaction    RawTransaction         `json:"transaction"`
		Meta           *Meta                  `json:"meta"`
		AccountData    []AccountDataPayload   `json:"accountData"`
		TokenTransfers []TokenTransferPayload `json:"tokenTransfers"`
	}

	// RawTransaction is the signed transaction section.
	RawTransaction struct {
		Signatures []string `json:"signatures"`
		Message    struct {
			AccountKeys []AccountKey `json:"accountKeys"`
		} `json:"message"`
	}

	// Meta holds the balance snapshots around the transaction.
	Meta struct {
		Err               json.RawMessage       `json:"err"`
		Fee               uint64                `json:"fee"`
		PreBalances       []uint64              `json:"preBalances"`
		PostBalances      []uint64              `json:"postBalances"`
		PreTokenBalances  []TokenBalancePayload `json:"preTokenBalances"`
		PostTokenBalances []TokenBalancePayload `json:"postTokenBalances"`
	}

	// TokenBalancePayload is one token account balance.
	TokenBalancePayload struct {
		AccountIndex  int    `json:"accountIndex"`
		Mint          string `json:"mint"`
		Owner         string `json:"owner"`
		UITokenAmount struct {
			Amount         string `json:"amount"`
			Decimals       int32  `json:"decimals"`
			UIAmountString string `json:"uiAmountString"`
		} `json:"uiTokenAmount"`
	}

	// AccountDataPayload is the enhanced per-account summary.
	AccountDataPayload struct {
		Account             string `json:"account"`
		NativeBalanceChange int64  `json:"nativeBalanceChange"`
	}

	// TokenTransferPayload is the enhanced token movement summary.
	TokenTransferPayload struct {
		FromUserAccount string  `json:"fromUserAccount"`
		ToUserAccount   string  `json:"toUserAccount"`
		Mint            string  `json:"mint"`
		TokenAmount     float64 `json:"tokenAmount"`
	}
)

// AccountKey is an account address. Raw payloads list plain strings while
// parsed payloads list {"pubkey": ...} objects; both decode.
type AccountKey string

// UnmarshalJSON implements json.Unmarshaler.
func (k *AccountKey) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var parsed struct {
			Pubkey string `json:"pubkey"`
		}
		if err := json.Unmarshal(data, &parsed); err != nil {
			return err
		}

		*k = AccountKey(parsed.Pubkey)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("account key: %w", err)
	}

	*k = AccountKey(s)
	return nil
}

// signature returns the first transaction signature, falling back to the
// enhanced top-level one.
func (p TransactionPayload) signature() string {
	if len(p.Transaction.Signatures) > 0 {
		return p.Transaction.Signatures[0]
	}

	return p.Signature
}

// toTokenBalances keeps a nil input nil so absent snapshots stay detectable.
func toTokenBalances(in []TokenBalancePayload) []swapclassifier.TokenBalance {
	if in == nil {
		return nil
	}

	out := make([]swapclassifier.TokenBalance, len(in))
	for i, b := range in {
		out[i] = swapclassifier.TokenBalance{
			Owner:    b.Owner,
			Mint:     b.Mint,
			Amount:   b.UITokenAmount.Amount,
			Decimals: b.UITokenAmount.Decimals,
			UIAmount: b.UITokenAmount.UIAmountString,
		}
	}

	return out
}

// ToTransaction maps the payload to the pipeline transaction.
func (p TransactionPayload) ToTransaction() swapnotify.Transaction {
	keys := make([]string, len(p.Transaction.Message.AccountKeys))
	for i, k := range p.Transaction.Message.AccountKeys {
		keys[i] = string(k)
	}

	tx := swapnotify.Transaction{
		Transaction: swapclassifier.Transaction{
			Signature:   p.signature(),
			AccountKeys: keys,
		},
	}

	if p.Meta != nil {
		tx.PreBalances = p.Meta.PreBalances
		tx.PostBalances = p.Meta.PostBalances
		tx.PreTokenBalances = toTokenBalances(p.Meta.PreTokenBalances)
		tx.PostTokenBalances = toTokenBalances(p.Meta.PostTokenBalances)
	}

	for _, d := range p.AccountData {
		tx.AccountData = append(tx.AccountData, swapnotify.AccountData{
			Account:             d.Account,
			NativeBalanceChange: d.NativeBalanceChange,
		})
	}

	for _, t := range p.TokenTransfers {
		tx.TokenTransfers = append(tx.TokenTransfers, swapnotify.TokenTransfer(t))
	}

	return tx
}

// Transactions maps every entry of the delivery, keeping their order.
func (p Payload) Transactions() []swapnotify.Transaction {
	txs := make([]swapnotify.Transaction, len(p))
	for i, tx := range p {
		txs[i] = tx.ToTransaction()
	}

	return txs
}
