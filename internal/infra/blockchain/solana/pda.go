package solana

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
	"github.com/gabapcia/swapwatch/internal/pkg/validator"
)

// metadataSeed is the fixed first seed of every metadata account.
var metadataSeed = []byte("metadata")

// DeriveMetadataAddress finds the off-curve address seeded by
// ["metadata", program, mint] with the highest valid bump.
func (c *client) DeriveMetadataAddress(program, mint string) (string, error) {
	for _, address := range []string{program, mint} {
		if !validator.IsSolanaAddress(address) {
			return "", fmt.Errorf("%w: %q", metaresolver.ErrInvalidAddress, address)
		}
	}

	programKey := common.PublicKeyFromString(program)
	mintKey := common.PublicKeyFromString(mint)

	pda, _, err := common.FindProgramAddress([][]byte{metadataSeed, programKey.Bytes(), mintKey.Bytes()}, programKey)
	if err != nil {
		return "", fmt.Errorf("derive metadata address of %s: %w", mint, err)
	}

	return pda.ToBase58(), nil
}
