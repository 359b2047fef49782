// Package controllers holds the read-only HTTP handlers for the
// apiserver, adapted from walletserver/controllers/wallet_controller.go
// and from cmd/dexserver/main.go's poolsHandler — generalized from one
// flat JSON array to the per-id reserve views core.AMM.Snapshot now
// returns. No handler here can mutate engine state: every write path
// (swap, liquidity, pool creation) is reachable only through the CLI or
// an embedding host, never over HTTP (spec.md's dispatch/transaction
// boundary is out of scope for this read surface).
package controllers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"idswap/core"
)

var errInvalidPoolAccount = errors.New("invalid pool account")

// PoolsController serves the current engine state as JSON.
type PoolsController struct{}

func NewPoolsController() *PoolsController { return &PoolsController{} }

// List returns every pool and its per-id reserve state.
func (c *PoolsController) List(w http.ResponseWriter, _ *http.Request) {
	views := core.Manager().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// PoolCount returns the monotonically increasing pool counter.
func (c *PoolsController) PoolCount(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]uint32{"pool_count": uint32(core.Manager().PoolCount())})
}

// parsePoolAccount decodes the {account} path variable into a core.Address.
func parsePoolAccount(r *http.Request) (core.Address, error) {
	raw := mux.Vars(r)["account"]
	var addr core.Address
	b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil || len(b) != len(addr) {
		return core.Address{}, errInvalidPoolAccount
	}
	copy(addr[:], b)
	return addr, nil
}

// Get returns the single pool registered at the {account} path variable.
func (c *PoolsController) Get(w http.ResponseWriter, r *http.Request) {
	addr, err := parsePoolAccount(r)
	if err != nil {
		http.Error(w, "invalid pool account", http.StatusBadRequest)
		return
	}
	for _, v := range core.Manager().Snapshot() {
		if v.Account == addr {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(v)
			return
		}
	}
	http.Error(w, core.ErrInvalidPoolAccount.Error(), http.StatusNotFound)
}

// Reserve returns the (currencyReserve, totalSupply) pair for one
// (pool, tokenId) slot at the {account}/reserves/{tokenId} path.
func (c *PoolsController) Reserve(w http.ResponseWriter, r *http.Request) {
	addr, err := parsePoolAccount(r)
	if err != nil {
		http.Error(w, "invalid pool account", http.StatusBadRequest)
		return
	}
	idRaw := mux.Vars(r)["tokenId"]
	id, err := strconv.ParseUint(idRaw, 10, 64)
	if err != nil {
		http.Error(w, "invalid token id", http.StatusBadRequest)
		return
	}

	view := core.IdReserveView{
		Id:              core.TokenId(id),
		CurrencyReserve: core.Manager().CurrencyReserveOf(addr, core.TokenId(id)),
		TotalSupply:     core.Manager().TotalSupplyOf(addr, core.TokenId(id)),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}
