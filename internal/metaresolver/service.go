// Package metaresolver turns a token mint into display metadata by reading
// its on-chain metadata account and the off-chain data it points to.
package metaresolver

import (
	"context"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/tokenmetadata"
)

// Service resolves display metadata for token mints.
type Service interface {
	// Resolve returns the display metadata of mint. On any failure it returns
	// a zero DisplayMetadata and an error wrapping ErrResolutionFailed.
	// It never retries.
	Resolve(ctx context.Context, mint string) (DisplayMetadata, error)
}

type service struct {
	deriver   AddressDeriver
	accounts  AccountFetcher
	index     TokenIndex
	documents DocumentFetcher
}

var _ Service = (*service)(nil)

// New creates a resolver backed by the given collaborators.
func New(deriver AddressDeriver, accounts AccountFetcher, index TokenIndex, documents DocumentFetcher) *service {
	return &service{
		deriver:   deriver,
		accounts:  accounts,
		index:     index,
		documents: documents,
	}
}

func (s *service) Resolve(ctx context.Context, mint string) (DisplayMetadata, error) {
	md, err := s.resolve(ctx, mint)
	if err != nil {
		return DisplayMetadata{}, fmt.Errorf("%w: mint %s: %w", ErrResolutionFailed, mint, err)
	}

	return md, nil
}

func (s *service) resolve(ctx context.Context, mint string) (DisplayMetadata, error) {
	address, err := s.deriver.DeriveMetadataAddress(MetadataProgram, mint)
	if err != nil {
		return DisplayMetadata{}, fmt.Errorf("derive metadata address: %w", err)
	}

	data, err := s.accounts.FetchAccount(ctx, address)
	if err != nil {
		return DisplayMetadata{}, fmt.Errorf("fetch metadata account %s: %w", address, err)
	}

	record, err := tokenmetadata.Decode(data)
	if err != nil {
		return DisplayMetadata{}, err
	}

	if record.URI == "" {
		return s.fromIndex(ctx, mint, record)
	}

	return s.fromDocument(ctx, record.URI)
}

// fromIndex keeps name and symbol from the on-chain record.
func (s *service) fromIndex(ctx context.Context, mint string, record tokenmetadata.Record) (DisplayMetadata, error) {
	entry, err := s.index.LookupByMint(ctx, mint)
	if err != nil {
		return DisplayMetadata{}, fmt.Errorf("token index lookup: %w", err)
	}

	return DisplayMetadata{
		Name:      record.Name,
		Symbol:    record.Symbol,
		Logo:      entry.Logo,
		CreatedOn: entry.CreatedOn,
		Twitter:   entry.Twitter,
		Telegram:  entry.Telegram,
		Website:   entry.Website,
	}, nil
}

func (s *service) fromDocument(ctx context.Context, uri string) (DisplayMetadata, error) {
	doc, err := s.documents.FetchDocument(ctx, uri)
	if err != nil {
		return DisplayMetadata{}, fmt.Errorf("fetch metadata document %s: %w", uri, err)
	}

	return DisplayMetadata{
		Name:      doc.Name,
		Symbol:    doc.Symbol,
		Logo:      doc.Image,
		CreatedOn: doc.CreatedOn,
		Twitter:   doc.Twitter,
		Telegram:  doc.Telegram,
		Website:   doc.Website,
	}, nil
}
