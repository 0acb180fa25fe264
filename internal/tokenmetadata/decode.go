package tokenmetadata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

const (
	publicKeyLen = 32
	creatorLen   = publicKeyLen + 2 // address, verified, share
)

// reader walks a byte slice and fails instead of reading past its end.
type reader struct {
	buf []byte
	off int
}

func (r *reader) take(field string, n int) ([]byte, error) {
	if n < 0 || len(r.buf)-r.off < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d remaining", ErrMalformedRecord, field, n, len(r.buf)-r.off)
	}

	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) byte(field string) (byte, error) {
	b, err := r.take(field, 1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *reader) bool(field string) (bool, error) {
	b, err := r.byte(field)
	return b != 0, err
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.take(field, 4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) publicKey(field string) (string, error) {
	b, err := r.take(field, publicKeyLen)
	if err != nil {
		return "", err
	}

	return base58.Encode(b), nil
}

// string reads a u32 length prefixed UTF-8 string and strips the trailing NUL padding.
func (r *reader) string(field string) (string, error) {
	n, err := r.uint32(field + " length")
	if err != nil {
		return "", err
	}

	b, err := r.take(field, int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s is not valid utf-8", ErrMalformedRecord, field)
	}

	return string(bytes.TrimRight(b, "\x00")), nil
}

// Decode parses a metadata account. The discriminant is checked before
// anything else is read. Bytes after is_mutable are ignored.
func Decode(data []byte) (Record, error) {
	if len(data) == 0 {
		return Record{}, fmt.Errorf("%w: empty input", ErrMalformedRecord)
	}

	if data[0] != Discriminant {
		return Record{}, fmt.Errorf("%w: discriminant %d, expected %d", ErrMalformedRecord, data[0], Discriminant)
	}

	var (
		r   = &reader{buf: data, off: 1}
		rec Record
		err error
	)

	if rec.UpdateAuthority, err = r.publicKey("update_authority"); err != nil {
		return Record{}, err
	}

	if rec.Mint, err = r.publicKey("mint"); err != nil {
		return Record{}, err
	}

	if rec.Name, err = r.string("name"); err != nil {
		return Record{}, err
	}

	if rec.Symbol, err = r.string("symbol"); err != nil {
		return Record{}, err
	}

	if rec.URI, err = r.string("uri"); err != nil {
		return Record{}, err
	}

	fee, err := r.take("seller_fee_basis_points", 2)
	if err != nil {
		return Record{}, err
	}
	rec.SellerFeeBasisPoints = int16(binary.LittleEndian.Uint16(fee))

	hasCreators, err := r.bool("has_creators")
	if err != nil {
		return Record{}, err
	}

	if hasCreators {
		if rec.Creators, err = decodeCreators(r); err != nil {
			return Record{}, err
		}
	}

	if rec.PrimarySaleHappened, err = r.bool("primary_sale_happened"); err != nil {
		return Record{}, err
	}

	if rec.IsMutable, err = r.bool("is_mutable"); err != nil {
		return Record{}, err
	}

	return rec, nil
}

func decodeCreators(r *reader) ([]Creator, error) {
	count, err := r.uint32("creators length")
	if err != nil {
		return nil, err
	}

	// reject counts the buffer cannot hold before allocating
	if uint64(count)*creatorLen > uint64(len(r.buf)-r.off) {
		return nil, fmt.Errorf("%w: %d creators do not fit in %d bytes", ErrMalformedRecord, count, len(r.buf)-r.off)
	}

	creators := make([]Creator, 0, count)
	for i := range count {
		var c Creator
		if c.Address, err = r.publicKey(fmt.Sprintf("creators[%d].address", i)); err != nil {
			return nil, err
		}

		if c.Verified, err = r.bool(fmt.Sprintf("creators[%d].verified", i)); err != nil {
			return nil, err
		}

		if c.Share, err = r.byte(fmt.Sprintf("creators[%d].share", i)); err != nil {
			return nil, err
		}

		creators = append(creators, c)
	}

	return creators, nil
}
