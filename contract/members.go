package contract

import "okinoko_treasury/sdk"

// Registry holds the voting members of an org, its golden share and the purchase whitelist.
// Enumeration order is not stable across removals: Remove swaps the last member into the gap.
type Registry struct {
	members     []sdk.Address
	index       map[sdk.Address]int
	goldenShare sdk.Address
	whitelist   map[sdk.Address]struct{}
	wlOrder     []sdk.Address
}

// NewRegistry seeds the member sequence. Duplicates in the seed are rejected.
func NewRegistry(seed []sdk.Address) (*Registry, error) {
	r := &Registry{
		index:     make(map[sdk.Address]int, len(seed)),
		whitelist: map[sdk.Address]struct{}{},
	}
	for _, m := range seed {
		if err := r.Add(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends m, keeping existing order.
func (r *Registry) Add(m sdk.Address) error {
	if !m.IsValid() {
		return newError(EInvalidConfiguration, "invalid member identity %q", m)
	}
	if _, ok := r.index[m]; ok {
		return newError(EDuplicateMember, "%s is already a member", m)
	}
	r.index[m] = len(r.members)
	r.members = append(r.members, m)
	return nil
}

// Remove drops m by moving the last member into its slot.
func (r *Registry) Remove(m sdk.Address) error {
	i, ok := r.index[m]
	if !ok {
		return newError(EMemberNotFound, "%s is not a member", m)
	}
	if m == r.goldenShare {
		return newError(EGoldenShareRequired, "golden share %s cannot be removed", m)
	}
	last := len(r.members) - 1
	if i != last {
		moved := r.members[last]
		r.members[i] = moved
		r.index[moved] = i
	}
	r.members = r.members[:last]
	delete(r.index, m)
	return nil
}

// TransferMembership replaces from with to at the same position. A transferred golden share
// follows its holder.
func (r *Registry) TransferMembership(from, to sdk.Address) error {
	i, ok := r.index[from]
	if !ok {
		return newError(EMemberNotFound, "%s is not a member", from)
	}
	if !to.IsValid() {
		return newError(EInvalidConfiguration, "invalid member identity %q", to)
	}
	if _, ok := r.index[to]; ok {
		return newError(EDuplicateMember, "%s is already a member", to)
	}
	r.members[i] = to
	delete(r.index, from)
	r.index[to] = i
	if r.goldenShare == from {
		r.goldenShare = to
	}
	return nil
}

func (r *Registry) IsMember(m sdk.Address) bool {
	_, ok := r.index[m]
	return ok
}

func (r *Registry) Count() int { return len(r.members) }

// All returns a snapshot of the member sequence.
func (r *Registry) All() []sdk.Address {
	out := make([]sdk.Address, len(r.members))
	copy(out, r.members)
	return out
}

// SetGoldenShare marks an existing member as the mandatory signer.
func (r *Registry) SetGoldenShare(m sdk.Address) error {
	if !r.IsMember(m) {
		return newError(EInvalidConfiguration, "golden share %s must be a member", m)
	}
	r.goldenShare = m
	return nil
}

// GoldenShare returns the mandatory signer, empty when the org has none.
func (r *Registry) GoldenShare() sdk.Address { return r.goldenShare }

func (r *Registry) clone() *Registry {
	cp := &Registry{
		members:     append([]sdk.Address(nil), r.members...),
		index:       make(map[sdk.Address]int, len(r.index)),
		goldenShare: r.goldenShare,
		whitelist:   make(map[sdk.Address]struct{}, len(r.whitelist)),
		wlOrder:     append([]sdk.Address(nil), r.wlOrder...),
	}
	for k, v := range r.index {
		cp.index[k] = v
	}
	for k := range r.whitelist {
		cp.whitelist[k] = struct{}{}
	}
	return cp
}
