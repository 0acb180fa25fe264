// Package tokenmetadata decodes Metaplex token metadata accounts.
package tokenmetadata

import "errors"

// Discriminant is the leading byte of a metadata account (MetadataV1 key).
const Discriminant = 4

// ErrMalformedRecord is returned when the bytes are not a well-formed metadata record.
var ErrMalformedRecord = errors.New("malformed metadata record")

// Creator is one entry of the record's creator list.
type Creator struct {
	Address  string // base58 public key
	Verified bool
	Share    uint8 // percentage of royalties
}

// Record is the decoded metadata account.
type Record struct {
	UpdateAuthority      string // base58 public key
	Mint                 string // base58 public key
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints int16
	Creators             []Creator // nil when the record has no creators
	PrimarySaleHappened  bool
	IsMutable            bool
}
