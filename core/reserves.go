package core

// Reserve store (spec.md §4.2, C2): per-(pool, id) currency reserve and
// LP total-supply bookkeeping. Grounded on the pallet's
// CurrencyReserves/TotalSupplies StorageDoubleMaps; all mutations are
// checked adds/subs via Balance.Add/Sub.

import "sync"

type reserveKey struct {
	pool Address
	id   TokenId
}

// ReserveStore holds the two maps spec.md §3/§4.2 names. Read-modify-
// write pairs within a single engine call are serialized by the
// caller's mutex (see AMM.mu in ledgers.go); ReserveStore itself only
// guards against concurrent calls touching disjoint pools.
type ReserveStore struct {
	mu              sync.Mutex
	currencyReserves map[reserveKey]Balance
	totalSupplies    map[reserveKey]Balance
	ids              map[Address]map[TokenId]struct{}
}

func newReserveStore() *ReserveStore {
	return &ReserveStore{
		currencyReserves: make(map[reserveKey]Balance),
		totalSupplies:    make(map[reserveKey]Balance),
		ids:              make(map[Address]map[TokenId]struct{}),
	}
}

// touch records that id has been seen for pool, for read views (C4
// callers already know their ids; this is only for AllIds).
func (s *ReserveStore) touch(pool Address, id TokenId) {
	m, ok := s.ids[pool]
	if !ok {
		m = make(map[TokenId]struct{})
		s.ids[pool] = m
	}
	m[id] = struct{}{}
}

// AllIds returns every id ever touched for pool, for read-only views.
func (s *ReserveStore) AllIds(pool Address) []TokenId {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TokenId, 0, len(s.ids[pool]))
	for id := range s.ids[pool] {
		out = append(out, id)
	}
	return out
}

func (s *ReserveStore) CurrencyReserve(pool Address, id TokenId) Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currencyReserves[reserveKey{pool, id}]
}

func (s *ReserveStore) TotalSupply(pool Address, id TokenId) Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSupplies[reserveKey{pool, id}]
}

func (s *ReserveStore) SetCurrencyReserve(pool Address, id TokenId, v Balance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(pool, id)
	s.currencyReserves[reserveKey{pool, id}] = v
}

func (s *ReserveStore) SetTotalSupply(pool Address, id TokenId, v Balance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(pool, id)
	s.totalSupplies[reserveKey{pool, id}] = v
}

// AddCurrencyReserve performs a checked add, failing ErrOverflow on a
// 128-bit wrap.
func (s *ReserveStore) AddCurrencyReserve(pool Address, id TokenId, delta Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(pool, id)
	k := reserveKey{pool, id}
	next, err := s.currencyReserves[k].Add(delta)
	if err != nil {
		return err
	}
	s.currencyReserves[k] = next
	return nil
}

// SubCurrencyReserve performs a checked sub, failing ErrOverflow if
// delta exceeds the current reserve.
func (s *ReserveStore) SubCurrencyReserve(pool Address, id TokenId, delta Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := reserveKey{pool, id}
	next, err := s.currencyReserves[k].Sub(delta)
	if err != nil {
		return err
	}
	s.currencyReserves[k] = next
	return nil
}

func (s *ReserveStore) AddTotalSupply(pool Address, id TokenId, delta Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(pool, id)
	k := reserveKey{pool, id}
	next, err := s.totalSupplies[k].Add(delta)
	if err != nil {
		return err
	}
	s.totalSupplies[k] = next
	return nil
}

func (s *ReserveStore) SubTotalSupply(pool Address, id TokenId, delta Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := reserveKey{pool, id}
	next, err := s.totalSupplies[k].Sub(delta)
	if err != nil {
		return err
	}
	s.totalSupplies[k] = next
	return nil
}

// reserveSnapshot is a deep copy of both maps, taken before a batch
// runs and restored verbatim if the batch fails partway through
// (spec.md §5 atomicity — see AMM.withStaged in ledgers.go).
type reserveSnapshot struct {
	currencyReserves map[reserveKey]Balance
	totalSupplies    map[reserveKey]Balance
	ids              map[Address]map[TokenId]struct{}
}

func (s *ReserveStore) snapshot() reserveSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := reserveSnapshot{
		currencyReserves: make(map[reserveKey]Balance, len(s.currencyReserves)),
		totalSupplies:    make(map[reserveKey]Balance, len(s.totalSupplies)),
		ids:              make(map[Address]map[TokenId]struct{}, len(s.ids)),
	}
	for k, v := range s.currencyReserves {
		snap.currencyReserves[k] = v
	}
	for k, v := range s.totalSupplies {
		snap.totalSupplies[k] = v
	}
	for pool, set := range s.ids {
		cp := make(map[TokenId]struct{}, len(set))
		for id := range set {
			cp[id] = struct{}{}
		}
		snap.ids[pool] = cp
	}
	return snap
}

func (s *ReserveStore) restore(snap reserveSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencyReserves = snap.currencyReserves
	s.totalSupplies = snap.totalSupplies
	s.ids = snap.ids
}
