package core

// Read-only views (C8 supporting infra), adapted from
// core/liquidity_views.go's PoolView/AMM.Snapshot, generalized from one
// reserve pair per pool to a per-id reserve view list. Consumed by the
// CLI's "pools" command and the apiserver's /api/pools endpoint.

// IdReserveView describes one (pool, id) slot's bookkeeping state.
type IdReserveView struct {
	Id              TokenId
	CurrencyReserve Balance
	TotalSupply     Balance
}

// PoolView exposes read-only information about one pool.
type PoolView struct {
	Account        Address
	Owner          Address
	CurrencyHandle Handle
	TokenHandle    Handle
	LPHandle       Handle
	Vault          Address
	Reserves       []IdReserveView
}

// Snapshot returns a view of every pool the AMM has registered, each
// carrying the reserve state of every id that pool has ever traded.
func (a *AMM) Snapshot() []PoolView {
	all := a.pools.All()
	out := make([]PoolView, 0, len(all))
	for account, p := range all {
		ids := a.reserves.AllIds(account)
		reserves := make([]IdReserveView, len(ids))
		for i, id := range ids {
			reserves[i] = IdReserveView{
				Id:              id,
				CurrencyReserve: a.reserves.CurrencyReserve(account, id),
				TotalSupply:     a.reserves.TotalSupply(account, id),
			}
		}
		out = append(out, PoolView{
			Account:        account,
			Owner:          p.Owner,
			CurrencyHandle: p.CurrencyHandle,
			TokenHandle:    p.TokenHandle,
			LPHandle:       p.LPHandle,
			Vault:          p.Vault,
			Reserves:       reserves,
		})
	}
	return out
}

// PoolCount returns the number of pools created so far (spec.md §6
// persisted-state PoolCount, exposed as a supplemented query getter).
func (a *AMM) PoolCount() PoolIndex { return a.pools.PoolCount() }

// CurrencyReserveOf and TotalSupplyOf expose the original pallet's
// #[pallet::getter] storage accessors (currency_reserves/total_supplies)
// as read-only AMM methods, supplementing spec.md's engine surface.
func (a *AMM) CurrencyReserveOf(pool Address, id TokenId) Balance {
	return a.reserves.CurrencyReserve(pool, id)
}

func (a *AMM) TotalSupplyOf(pool Address, id TokenId) Balance {
	return a.reserves.TotalSupply(pool, id)
}
