package contract

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
	"okinoko_treasury/store"
)

func TestPercentCeil(t *testing.T) {
	cases := []struct {
		pct  uint64
		base sdk.Amount
		want sdk.Amount
	}{
		{0, 400, 0},
		{50, 0, 0},
		{50, 400, 200},
		{50, 401, 201},
		{33, 10, 4},
		{100, 7, 7},
		{1, 1, 1},
		{100, math.MaxUint64, math.MaxUint64},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, percentCeil(tc.pct, tc.base), "%d%% of %d", tc.pct, tc.base)
	}
}

func TestVaultShare(t *testing.T) {
	v := Vault{balance: 200_000_000}
	assert.Equal(t, sdk.Amount(50_000_000), v.Share(5, 20))
	assert.Equal(t, sdk.Amount(0), v.Share(5, 0))
	assert.Equal(t, sdk.Amount(66_666_666), v.Share(1, 3))

	big := Vault{balance: math.MaxUint64}
	assert.Equal(t, sdk.Amount(math.MaxUint64/2), big.Share(1<<62, 1<<63))

	require.NoError(t, v.Withdraw(200_000_000))
	assert.ErrorIs(t, v.Withdraw(1), ErrInsufficientBalance)
	assert.ErrorIs(t, (&Vault{balance: math.MaxUint64}).Deposit(1), ErrInvalidConfiguration)
}

func TestSaveDropsStaleBalances(t *testing.T) {
	ctx := context.Background()
	host := sdk.NewMockHost(1)
	o, err := NewOrg(sdk.OrgAddress("acme"), InstanceArgs{
		Variant:  dao.VariantCompany,
		Creator:  "hive:alice",
		Name:     "Acme",
		Symbol:   "ACME",
		Currency: "native",
		Supply:   100,
		Price:    1,
	}, host)
	require.NoError(t, err)
	_, err = o.Purchase("hive:alice", 10, 10)
	require.NoError(t, err)

	st := store.NewMockState()
	require.NoError(t, o.Save(ctx, st))
	keys, err := st.Keys(ctx, orgScope(kOrgBalance, o.ID()))
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	require.NoError(t, o.Transfer("hive:alice", "hive:bob", 10))
	require.NoError(t, o.Save(ctx, st))
	keys, err = st.Keys(ctx, orgScope(kOrgBalance, o.ID()))
	require.NoError(t, err)
	assert.Equal(t, []string{balanceKey(o.ID(), "hive:bob"), balanceKey(o.ID(), o.ID())}, keys)
}

func TestProposalKeysSortById(t *testing.T) {
	org := sdk.OrgAddress("acme")
	assert.Less(t, proposalKey(kProposal, org, 9), proposalKey(kProposal, org, 10))
	assert.Less(t, proposalKey(kProposal, org, 255), proposalKey(kProposal, org, 256))
}

var errRefused = errors.New("disk full")

type refusingState struct{ *store.MockState }

func (refusingState) Apply(context.Context, *store.Batch) error { return errRefused }

func TestCommitRewindsProposals(t *testing.T) {
	ctx := context.Background()
	o, err := NewOrg(sdk.OrgAddress("acme"), InstanceArgs{
		Variant:  dao.VariantCompany,
		Creator:  "hive:alice",
		Name:     "Acme",
		Symbol:   "ACME",
		Currency: "native",
		Members:  []sdk.Address{"hive:alice", "hive:bob"},
		Supply:   100,
		Price:    1,
	}, sdk.NewMockHost(1))
	require.NoError(t, err)
	id, err := o.CreateProposal("hive:alice", "contract:vendor", []byte{0x01}, 0, "ping")
	require.NoError(t, err)
	require.NoError(t, o.Sign("hive:alice", id))
	held, err := o.engine.get(id)
	require.NoError(t, err)
	assert.Empty(t, o.engine.journal)

	err = o.Commit(ctx, refusingState{store.NewMockState()}, func() error {
		if err := o.Sign("hive:bob", id); err != nil {
			return err
		}
		_, err := o.CreateProposal("hive:bob", "contract:vendor", []byte{0x02}, 0, "second")
		return err
	})
	require.ErrorIs(t, err, errRefused)
	assert.Equal(t, []sdk.Address{"hive:alice"}, held.Signers)
	assert.Equal(t, uint64(1), o.engine.Len())
	assert.Empty(t, o.engine.journal)

	boom := errors.New("boom")
	err = o.Commit(ctx, nil, func() error {
		require.NoError(t, o.Sign("hive:bob", id))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []sdk.Address{"hive:alice"}, held.Signers)

	st := store.NewMockState()
	require.NoError(t, o.Commit(ctx, st, func() error { return o.Sign("hive:bob", id) }))
	assert.Equal(t, []sdk.Address{"hive:alice", "hive:bob"}, held.Signers)
	assert.Empty(t, o.engine.journal)

	loaded, err := LoadOrg(ctx, st, o.ID(), sdk.NewMockHost(1))
	require.NoError(t, err)
	p, err := loaded.Proposal(id)
	require.NoError(t, err)
	assert.Equal(t, []sdk.Address{"hive:alice", "hive:bob"}, p.Signers)
}

func TestSettingsSupports(t *testing.T) {
	company, err := NewSettings(dao.VariantCompany, nil)
	require.NoError(t, err)
	service, err := NewSettings(dao.VariantService, nil)
	require.NoError(t, err)
	assert.True(t, company.Supports(dao.SettingMintable))
	assert.False(t, service.Supports(dao.SettingMintable))
	assert.ErrorIs(t, service.Freeze(dao.SettingMintable), ErrInvalidConfiguration)
	assert.NotContains(t, service.List(), dao.SettingMintable)
}
