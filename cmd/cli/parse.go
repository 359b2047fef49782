package cli

// Argument parsing helpers, generalized from liquidity_pools.go's
// mustAddr (hex decode with a length check) into ones that return an
// error instead of silently zeroing, and extended to the batched
// id/amount lists every idswap command takes.

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"idswap/core"
	"idswap/pkg/utils"
)

func parseAddr(s string) (core.Address, error) {
	var a core.Address
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(b) != len(a) {
		return core.Address{}, fmt.Errorf("invalid address %q", s)
	}
	copy(a[:], b)
	return a, nil
}

func parseHandle(s string) (core.Handle, error) {
	var h core.Handle
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(b) != len(h) {
		return core.Handle{}, fmt.Errorf("invalid handle %q", s)
	}
	copy(h[:], b)
	return h, nil
}

func parseIds(s string) ([]core.TokenId, error) {
	parts := strings.Split(s, ",")
	out := make([]core.TokenId, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("invalid token id %q", p))
		}
		out[i] = core.TokenId(n)
	}
	return out, nil
}

func parseBalances(s string) ([]core.Balance, error) {
	parts := strings.Split(s, ",")
	out := make([]core.Balance, len(parts))
	for i, p := range parts {
		b, err := core.ParseBalance(strings.TrimSpace(p))
		if err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("invalid amount %q", p))
		}
		out[i] = b
	}
	return out, nil
}
