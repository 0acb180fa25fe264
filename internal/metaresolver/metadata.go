package metaresolver

import (
	"context"
	"errors"
)

// MetadataProgram is the Metaplex token metadata program.
const MetadataProgram = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

var (
	// ErrResolutionFailed wraps every failure returned by Resolve.
	ErrResolutionFailed = errors.New("metadata resolution failed")

	// ErrAccountNotFound is returned by an AccountFetcher when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAddress is returned by an AccountFetcher when the ledger rejects the address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrTokenNotIndexed is returned by a TokenIndex that has no entry for the mint.
	ErrTokenNotIndexed = errors.New("token not indexed")
)

// DisplayMetadata is the presentation data of a token. Empty strings mean unknown.
type DisplayMetadata struct {
	Name      string
	Symbol    string
	Logo      string
	CreatedOn string // launch source, e.g. "https://pump.fun"
	Twitter   string
	Telegram  string
	Website   string
}

// IndexEntry is the off-chain index record of a token.
type IndexEntry struct {
	Logo      string
	CreatedOn string
	Twitter   string
	Telegram  string
	Website   string
}

// Document is the JSON body referenced by a metadata record URI.
type Document struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Image     string `json:"image"`
	CreatedOn string `json:"createdOn"`
	Twitter   string `json:"twitter"`
	Telegram  string `json:"telegram"`
	Website   string `json:"website"`
}

// AddressDeriver computes the metadata account of a mint.
type AddressDeriver interface {
	// DeriveMetadataAddress returns the program derived address for the
	// seeds ["metadata", program, mint] under program.
	DeriveMetadataAddress(program, mint string) (string, error)
}

// AccountFetcher reads raw account data from the ledger.
type AccountFetcher interface {
	// FetchAccount returns the decoded account bytes. It returns
	// ErrAccountNotFound or ErrInvalidAddress for the expected misses.
	FetchAccount(ctx context.Context, address string) ([]byte, error)
}

// TokenIndex looks tokens up in an off-chain list.
type TokenIndex interface {
	// LookupByMint returns the first index entry for mint or ErrTokenNotIndexed.
	LookupByMint(ctx context.Context, mint string) (IndexEntry, error)
}

// DocumentFetcher dereferences a metadata URI.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, uri string) (Document, error)
}
