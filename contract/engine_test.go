package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

func TestProposalLifecycle(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, companyArgs(alice, bob))

	requireCode(t, o.Sign(alice, 0), contract.ErrProposalNotFound)
	requireCode(t, o.Activate(alice, 0), contract.ErrProposalNotFound)

	id, err := o.Propose(alice, dao.AddMember{Member: carol}, "  hire   carol ")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	p, err := o.Proposal(id)
	require.NoError(t, err)
	assert.Equal(t, alice, p.Creator)
	assert.Equal(t, o.ID(), p.Target)
	assert.Equal(t, defaultTimestamp, p.CreatedAt)
	assert.Empty(t, p.Signers)

	require.NoError(t, o.Sign(alice, id))
	requireCode(t, o.Sign(alice, id), contract.ErrAlreadySigned)
	requireCode(t, o.Activate(carol, id), contract.ErrNotAMember)
	require.NoError(t, o.Sign(bob, id))
	require.NoError(t, o.Activate(bob, id))

	state, err := o.ProposalState(id)
	require.NoError(t, err)
	assert.Equal(t, dao.ProposalExecuted, state)
	requireCode(t, o.Activate(alice, id), contract.ErrAlreadyExecuted)
	requireCode(t, o.Sign(carol, id), contract.ErrAlreadyExecuted)

	next, err := o.Propose(carol, dao.RemoveMember{Member: bob}, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next, "ids keep counting")
	assert.Len(t, o.Proposals(), 2)
}

// TestReentrantActivate re-enters Activate from inside the host call.
func TestReentrantActivate(t *testing.T) {
	f, host := setup(t)
	o := create(t, f, companyArgs(alice))

	id, err := o.CreateProposal(alice, "contract:vendor", []byte{0x01}, 0, "ping")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))

	var nested error
	host.OnExecute = func(sdk.Call) bool {
		nested = o.Activate(alice, id)
		return true
	}
	require.NoError(t, o.Activate(alice, id))
	requireCode(t, nested, contract.ErrAlreadyExecuted)
	assert.Len(t, host.Calls, 1)

	p, err := o.Proposal(id)
	require.NoError(t, err)
	assert.True(t, p.Executed)
}

func TestExecutionFailureRollsBack(t *testing.T) {
	f, host := setup(t)
	o := create(t, f, companyArgs(alice))
	require.NoError(t, o.Deposit(bob, 1_000))
	host.Logs = nil

	id, err := o.CreateProposal(alice, "contract:vendor", []byte("invoice-7"), 400, "pay vendor")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))

	host.OnExecute = func(sdk.Call) bool { return false }
	err = o.Activate(alice, id)
	requireCode(t, err, contract.ErrExecutionFailed)
	assert.Equal(t, contract.ClassState, contract.GetClass(err))
	assert.Equal(t, sdk.Amount(1_000), o.VaultBalance())
	p, err := o.Proposal(id)
	require.NoError(t, err)
	assert.False(t, p.Executed)
	for _, line := range host.Logs {
		assert.NotContains(t, line, "fr|", "no payout event for a reverted call")
	}

	host.OnExecute = nil
	require.NoError(t, o.Activate(alice, id))
	assert.Equal(t, sdk.Amount(600), o.VaultBalance())
	assert.Len(t, host.Calls, 2)
	assert.Equal(t, sdk.Amount(400), host.Calls[1].Value)
}

func TestExternalValueNeedsFunds(t *testing.T) {
	f, host := setup(t)
	o := create(t, f, companyArgs(alice))
	require.NoError(t, o.Deposit(bob, 100))

	id, err := o.CreateProposal(alice, "contract:vendor", nil, 101, "")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))
	requireCode(t, o.Activate(alice, id), contract.ErrInsufficientBalance)
	assert.Empty(t, host.Calls)
}

func TestVotingWindow(t *testing.T) {
	f, host := setup(t)
	args := companyArgs(alice, bob)
	args.VotingDuration = 100
	o := create(t, f, args)

	id, err := o.Propose(alice, dao.AddMember{Member: carol}, "")
	require.NoError(t, err)
	require.NoError(t, o.Sign(alice, id))

	host.Advance(100)
	require.NoError(t, o.Sign(bob, id), "the last second of the window still counts")

	host.Advance(1)
	requireCode(t, o.Sign(carol, id), contract.ErrProposalExpired)
	requireCode(t, o.Activate(alice, id), contract.ErrProposalExpired)
	state, err := o.ProposalState(id)
	require.NoError(t, err)
	assert.Equal(t, dao.ProposalExpired, state)
	assert.False(t, o.IsMember(carol))
}

func TestCreateProposalValidation(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, companyArgs(alice))

	_, err := o.CreateProposal(alice, "", nil, 0, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)
	_, err = o.CreateProposal(alice, o.ID(), []byte{0xff}, 0, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)
	_, err = o.CreateProposal(alice, o.ID(), dao.EncodeCommand(dao.Mint{Amount: 1}), 5, "")
	requireCode(t, err, contract.ErrInvalidConfiguration)

	id, err := o.CreateProposal(alice, o.ID(), dao.EncodeCommand(dao.Mint{Amount: 1}), 0, "")
	require.NoError(t, err)
	p, err := o.Proposal(id)
	require.NoError(t, err)
	assert.Equal(t, dao.Mint{Amount: 1}, p.Command)
}

func TestQuorumReport(t *testing.T) {
	f, _ := setup(t)
	o := create(t, f, companyArgs(alice, bob))

	id, err := o.Propose(alice, dao.FreezeSetting{Setting: dao.SettingMintable}, "")
	require.NoError(t, err)
	requireCode(t, o.Quorum(id), contract.ErrQuorumNotMet)
	require.NoError(t, o.Sign(alice, id))
	require.NoError(t, o.Sign(bob, id))
	require.NoError(t, o.Quorum(id))
	requireCode(t, o.Quorum(99), contract.ErrProposalNotFound)
}
