package api

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"okinoko_treasury/contract"
	"okinoko_treasury/contract/dao"
	"okinoko_treasury/sdk"
)

var (
	errMissingCaller = errors.New("missing " + CallerHeader + " header")
	errNoAction      = errors.New("either command or target is required")
)

// Native currency amounts travel as decimal strings ("0.01"), token units as integers.

type createInstanceRequest struct {
	Variant        string   `json:"variant" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Symbol         string   `json:"symbol"`
	Currency       string   `json:"currency" binding:"required"`
	Members        []string `json:"members"`
	GoldenShare    string   `json:"golden_share"`
	Supply         uint64   `json:"supply"`
	Price          string   `json:"price"`
	PurchasePublic bool     `json:"purchase_public"`
	Mintable       bool     `json:"mintable"`
	Burnable       bool     `json:"burnable"`
	HalfToVote     bool     `json:"half_to_vote"`
	PercentToVote  uint64   `json:"percent_to_vote"`
	LimitToBuy     uint64   `json:"limit_to_buy"`
	VotingDuration uint64   `json:"voting_duration"`
}

func (r createInstanceRequest) args(creator sdk.Address) (contract.InstanceArgs, error) {
	variant, ok := dao.ParseVariant(r.Variant)
	if !ok {
		return contract.InstanceArgs{}, fmt.Errorf("unknown variant %q", r.Variant)
	}
	var price sdk.Amount
	if strings.TrimSpace(r.Price) != "" {
		var err error
		if price, err = sdk.ParseAmount(r.Price, sdk.NativeDecimals); err != nil {
			return contract.InstanceArgs{}, err
		}
	}
	members := make([]sdk.Address, len(r.Members))
	for i, m := range r.Members {
		members[i] = sdk.Address(strings.TrimSpace(m))
	}
	return contract.InstanceArgs{
		Variant:        variant,
		Creator:        creator,
		Name:           r.Name,
		Symbol:         r.Symbol,
		Currency:       sdk.Asset(strings.TrimSpace(r.Currency)),
		Members:        members,
		GoldenShare:    sdk.Address(strings.TrimSpace(r.GoldenShare)),
		Supply:         sdk.Amount(r.Supply),
		Price:          price,
		PurchasePublic: r.PurchasePublic,
		Mintable:       r.Mintable,
		Burnable:       r.Burnable,
		HalfToVote:     r.HalfToVote,
		PercentToVote:  r.PercentToVote,
		LimitToBuy:     sdk.Amount(r.LimitToBuy),
		VotingDuration: r.VotingDuration,
	}, nil
}

// commandRequest is the JSON form of a self command.
// Example payload: {"op":"freeze_setting","setting":"mintable"}
type commandRequest struct {
	Op      string `json:"op" binding:"required"`
	Member  string `json:"member"`
	From    string `json:"from"`
	To      string `json:"to"`
	Setting string `json:"setting"`
	Value   uint64 `json:"value"`
	Amount  uint64 `json:"amount"`
}

func (r commandRequest) command() (dao.Command, error) {
	setting := func() (dao.Setting, error) {
		s, ok := dao.ParseSetting(r.Setting)
		if !ok {
			return 0, fmt.Errorf("unknown setting %q", r.Setting)
		}
		return s, nil
	}
	switch r.Op {
	case dao.OpAddMember.String():
		return dao.AddMember{Member: sdk.Address(r.Member)}, nil
	case dao.OpRemoveMember.String():
		return dao.RemoveMember{Member: sdk.Address(r.Member)}, nil
	case dao.OpTransferMembership.String():
		return dao.TransferMembership{From: sdk.Address(r.From), To: sdk.Address(r.To)}, nil
	case dao.OpSetSetting.String():
		s, err := setting()
		if err != nil {
			return nil, err
		}
		return dao.SetSetting{Setting: s, Value: r.Value}, nil
	case dao.OpFreezeSetting.String():
		s, err := setting()
		if err != nil {
			return nil, err
		}
		return dao.FreezeSetting{Setting: s}, nil
	case dao.OpMint.String():
		return dao.Mint{Amount: sdk.Amount(r.Amount)}, nil
	case dao.OpTransferTokens.String():
		return dao.TransferTokens{To: sdk.Address(r.To), Amount: sdk.Amount(r.Amount)}, nil
	}
	return nil, fmt.Errorf("unknown command %q", r.Op)
}

// createProposalRequest carries either a typed command or a raw external call.
type createProposalRequest struct {
	Command     *commandRequest `json:"command"`
	Target      string          `json:"target"`
	Payload     string          `json:"payload"` // hex
	Value       string          `json:"value"`
	Description string          `json:"description"`
}

type proposalDraft struct {
	target  sdk.Address
	payload []byte
	value   sdk.Amount
}

func (r createProposalRequest) draft(self sdk.Address) (proposalDraft, error) {
	if r.Command != nil {
		cmd, err := r.Command.command()
		if err != nil {
			return proposalDraft{}, err
		}
		return proposalDraft{target: self, payload: dao.EncodeCommand(cmd)}, nil
	}
	if strings.TrimSpace(r.Target) == "" {
		return proposalDraft{}, errNoAction
	}
	payload, err := hex.DecodeString(strings.TrimPrefix(r.Payload, "0x"))
	if err != nil {
		return proposalDraft{}, fmt.Errorf("payload: %w", err)
	}
	d := proposalDraft{target: sdk.Address(strings.TrimSpace(r.Target)), payload: payload}
	if strings.TrimSpace(r.Value) != "" {
		if d.value, err = sdk.ParseAmount(r.Value, sdk.NativeDecimals); err != nil {
			return proposalDraft{}, err
		}
	}
	return d, nil
}

type purchaseRequest struct {
	Units   uint64 `json:"units" binding:"required"`
	Payment string `json:"payment" binding:"required"`
}

type redeemRequest struct {
	Units uint64 `json:"units" binding:"required"`
}

type transferRequest struct {
	To    string `json:"to" binding:"required"`
	Units uint64 `json:"units" binding:"required"`
}

type depositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type whitelistRequest struct {
	Threshold   uint64 `json:"threshold" binding:"required"`
	Description string `json:"description"`
}
