package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/walletregistry"
)

// walletStoragePrefix is the base of every registry key.
const walletStoragePrefix = "wallet"

// groupWalletsKey holds the registrations of a group, address -> storedWallet.
//
// Format: "wallet:group:{group}:wallets"
func groupWalletsKey(group string) string {
	return fmt.Sprintf("%s:group:%s:wallets", walletStoragePrefix, group)
}

// groupNicknamesKey maps the nicknames of a group to their address.
//
// Format: "wallet:group:{group}:nicknames"
func groupNicknamesKey(group string) string {
	return fmt.Sprintf("%s:group:%s:nicknames", walletStoragePrefix, group)
}

// addressGroupsKey is the set of groups watching an address.
//
// Format: "wallet:address:{address}:groups"
func addressGroupsKey(address string) string {
	return fmt.Sprintf("%s:address:%s:groups", walletStoragePrefix, address)
}

// storedWallet is the hash value of one registration.
type storedWallet struct {
	Nickname string `json:"nickname"`
	Target   string `json:"target"`
}

// Script results of registerScript.
const (
	registered        = 0
	nicknameInUse     = 1
	alreadyRegistered = 2
)

// registerScript stores a registration unless the nickname or the address is
// taken in the group.
//
// KEYS: wallets, nicknames, address groups. ARGV: address, nickname, payload, group.
var registerScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[2], ARGV[2]) == 1 then
	return 1
end
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return 2
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[3])
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('SADD', KEYS[3], ARGV[4])
return 0
`)

// unregisterScript deletes a registration and returns how many groups still
// watch the address, or -1 when it was not registered.
//
// KEYS: wallets, nicknames, address groups. ARGV: address, group.
var unregisterScript = redis.NewScript(`
local payload = redis.call('HGET', KEYS[1], ARGV[1])
if not payload then
	return -1
end
local wallet = cjson.decode(payload)
redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('HDEL', KEYS[2], wallet['nickname'])
redis.call('SREM', KEYS[3], ARGV[2])
return redis.call('SCARD', KEYS[3])
`)

func (c *client) RegisterWallet(ctx context.Context, wallet walletregistry.TrackedWallet) error {
	payload, err := json.Marshal(storedWallet{Nickname: wallet.Nickname, Target: wallet.Target})
	if err != nil {
		return err
	}

	keys := []string{groupWalletsKey(wallet.Group), groupNicknamesKey(wallet.Group), addressGroupsKey(wallet.Address)}
	result, err := registerScript.Run(ctx, c.conn, keys, wallet.Address, wallet.Nickname, payload, wallet.Group).Int()
	if err != nil {
		return fmt.Errorf("register wallet: %w", err)
	}

	switch result {
	case registered:
		return nil
	case nicknameInUse:
		return walletregistry.ErrNicknameInUse
	case alreadyRegistered:
		return walletregistry.ErrWalletAlreadyRegistered
	default:
		return fmt.Errorf("register wallet: unexpected script result %d", result)
	}
}

func (c *client) UnregisterWallet(ctx context.Context, group, address string) (int, error) {
	keys := []string{groupWalletsKey(group), groupNicknamesKey(group), addressGroupsKey(address)}
	remaining, err := unregisterScript.Run(ctx, c.conn, keys, address, group).Int()
	if err != nil {
		return 0, fmt.Errorf("unregister wallet: %w", err)
	}

	if remaining < 0 {
		return 0, walletregistry.ErrWalletNotFound
	}

	return remaining, nil
}

func decodeWallet(group, address, payload string) (walletregistry.TrackedWallet, error) {
	var stored storedWallet
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return walletregistry.TrackedWallet{}, fmt.Errorf("decode wallet %s of group %s: %w", address, group, err)
	}

	return walletregistry.TrackedWallet{
		Group:    group,
		Address:  address,
		Nickname: stored.Nickname,
		Target:   stored.Target,
	}, nil
}

func (c *client) ListWallets(ctx context.Context, group string) ([]walletregistry.TrackedWallet, error) {
	entries, err := c.conn.HGetAll(ctx, groupWalletsKey(group)).Result()
	if err != nil {
		return nil, err
	}

	wallets := make([]walletregistry.TrackedWallet, 0, len(entries))
	for address, payload := range entries {
		w, err := decodeWallet(group, address, payload)
		if err != nil {
			return nil, err
		}

		wallets = append(wallets, w)
	}

	return wallets, nil
}

// LookupTrackedWallets resolves the watching groups of every address, then
// their registrations, in two pipelined round trips.
func (c *client) LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]walletregistry.TrackedWallet, error) {
	addresses = types.Unique(addresses)

	groupCmds := make([]*redis.StringSliceCmd, len(addresses))
	if _, err := c.conn.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, address := range addresses {
			groupCmds[i] = p.SMembers(ctx, addressGroupsKey(address))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	type lookup struct {
		group, address string
		cmd            *redis.StringCmd
	}

	var lookups []lookup
	if _, err := c.conn.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, address := range addresses {
			for _, group := range groupCmds[i].Val() {
				lookups = append(lookups, lookup{group: group, address: address, cmd: p.HGet(ctx, groupWalletsKey(group), address)})
			}
		}
		return nil
	}); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	tracked := types.NewDefaultMap[string](func() []walletregistry.TrackedWallet { return nil })
	for _, l := range lookups {
		payload, err := l.cmd.Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}

		w, err := decodeWallet(l.group, l.address, payload)
		if err != nil {
			return nil, err
		}

		tracked.Update(l.address, func(ws []walletregistry.TrackedWallet) []walletregistry.TrackedWallet {
			return append(ws, w)
		})
	}

	return tracked.ToMap(), nil
}

// Compile-time assertion to ensure *client satisfies the walletregistry.WalletStorage interface
var _ walletregistry.WalletStorage = new(client)
