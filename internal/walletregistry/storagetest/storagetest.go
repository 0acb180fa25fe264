// Package storagetest checks walletregistry.WalletStorage implementations
// against the behavior the registry relies on.
package storagetest

import (
	"testing"

	"github.com/gabapcia/swapwatch/internal/walletregistry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addressA = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	addressB = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	target   = "https://discord.com/api/webhooks/1/token"
)

// Run exercises a storage. newStorage must return an empty storage on every call.
func Run(t *testing.T, newStorage func(t *testing.T) walletregistry.WalletStorage) {
	t.Run("should register and list wallets", func(t *testing.T) {
		s := newStorage(t)
		a := walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}
		b := walletregistry.TrackedWallet{Group: "g1", Address: addressB, Nickname: "shrimp", Target: target}

		require.NoError(t, s.RegisterWallet(t.Context(), a))
		require.NoError(t, s.RegisterWallet(t.Context(), b))

		wallets, err := s.ListWallets(t.Context(), "g1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []walletregistry.TrackedWallet{a, b}, wallets)

		other, err := s.ListWallets(t.Context(), "g2")
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("should check the nickname before the address", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}))

		err := s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target})
		assert.ErrorIs(t, err, walletregistry.ErrNicknameInUse)

		err = s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressB, Nickname: "whale", Target: target})
		assert.ErrorIs(t, err, walletregistry.ErrNicknameInUse)

		err = s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "other", Target: target})
		assert.ErrorIs(t, err, walletregistry.ErrWalletAlreadyRegistered)
	})

	t.Run("should scope conflicts to the group", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}))
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g2", Address: addressA, Nickname: "whale", Target: target}))
	})

	t.Run("should count the remaining groups on unregister", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}))
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g2", Address: addressA, Nickname: "big", Target: target}))

		remaining, err := s.UnregisterWallet(t.Context(), "g1", addressA)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		remaining, err = s.UnregisterWallet(t.Context(), "g2", addressA)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		_, err = s.UnregisterWallet(t.Context(), "g2", addressA)
		assert.ErrorIs(t, err, walletregistry.ErrWalletNotFound)
	})

	t.Run("should free the nickname on unregister", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}))

		_, err := s.UnregisterWallet(t.Context(), "g1", addressA)
		require.NoError(t, err)

		require.NoError(t, s.RegisterWallet(t.Context(), walletregistry.TrackedWallet{Group: "g1", Address: addressB, Nickname: "whale", Target: target}))
	})

	t.Run("should look up every registration of the tracked addresses", func(t *testing.T) {
		s := newStorage(t)
		g1 := walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "whale", Target: target}
		g2 := walletregistry.TrackedWallet{Group: "g2", Address: addressA, Nickname: "big", Target: "https://discord.com/api/webhooks/2/token"}
		require.NoError(t, s.RegisterWallet(t.Context(), g1))
		require.NoError(t, s.RegisterWallet(t.Context(), g2))

		tracked, err := s.LookupTrackedWallets(t.Context(), []string{addressB, addressA, addressA})
		require.NoError(t, err)

		require.Len(t, tracked, 1)
		assert.ElementsMatch(t, []walletregistry.TrackedWallet{g1, g2}, tracked[addressA])
	})

	t.Run("should group registrations per address", func(t *testing.T) {
		s := newStorage(t)
		a1 := walletregistry.TrackedWallet{Group: "g1", Address: addressA, Nickname: "a", Target: target}
		a2 := walletregistry.TrackedWallet{Group: "g2", Address: addressA, Nickname: "a", Target: target}
		b1 := walletregistry.TrackedWallet{Group: "g1", Address: addressB, Nickname: "b", Target: target}
		for _, w := range []walletregistry.TrackedWallet{a1, a2, b1} {
			require.NoError(t, s.RegisterWallet(t.Context(), w))
		}

		tracked, err := s.LookupTrackedWallets(t.Context(), []string{addressA, addressB})
		require.NoError(t, err)

		require.Len(t, tracked, 2)
		assert.ElementsMatch(t, []walletregistry.TrackedWallet{a1, a2}, tracked[addressA])
		assert.Equal(t, []walletregistry.TrackedWallet{b1}, tracked[addressB])
	})

	t.Run("should return nothing for untracked addresses", func(t *testing.T) {
		s := newStorage(t)

		tracked, err := s.LookupTrackedWallets(t.Context(), []string{addressA})
		require.NoError(t, err)
		assert.Empty(t, tracked)
	})
}
