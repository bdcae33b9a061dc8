package dao

import (
	"errors"
	"fmt"

	"okinoko_treasury/sdk"
)

// Opcode tags a self-governance command in its binary payload.
type Opcode byte

const (
	OpAddMember          Opcode = 0x01
	OpRemoveMember       Opcode = 0x02
	OpTransferMembership Opcode = 0x03
	OpSetSetting         Opcode = 0x10
	OpFreezeSetting      Opcode = 0x11
	OpMint               Opcode = 0x20
	OpTransferTokens     Opcode = 0x21
	OpAddToWhitelist     Opcode = 0x30
)

func (op Opcode) String() string {
	switch op {
	case OpAddMember:
		return "add_member"
	case OpRemoveMember:
		return "remove_member"
	case OpTransferMembership:
		return "transfer_membership"
	case OpSetSetting:
		return "set_setting"
	case OpFreezeSetting:
		return "freeze_setting"
	case OpMint:
		return "mint"
	case OpTransferTokens:
		return "transfer_tokens"
	case OpAddToWhitelist:
		return "add_to_whitelist"
	default:
		return fmt.Sprintf("op_%#x", byte(op))
	}
}

// Command is the closed set of actions a proposal can apply to its own org.
// Anything aimed at another target is an opaque external call instead.
type Command interface {
	Op() Opcode
	encode(w *binWriter)
}

type AddMember struct{ Member sdk.Address }

type RemoveMember struct{ Member sdk.Address }

type TransferMembership struct{ From, To sdk.Address }

// SetSetting changes a flag (0/1) or a numeric parameter.
type SetSetting struct {
	Setting Setting
	Value   uint64
}

// FreezeSetting flips the frozen companion of a setting for good.
type FreezeSetting struct{ Setting Setting }

// Mint issues new tokens into the treasury.
type Mint struct{ Amount sdk.Amount }

// TransferTokens moves tokens out of the treasury.
type TransferTokens struct {
	To     sdk.Address
	Amount sdk.Amount
}

type AddToWhitelist struct{ Member sdk.Address }

func (AddMember) Op() Opcode          { return OpAddMember }
func (RemoveMember) Op() Opcode       { return OpRemoveMember }
func (TransferMembership) Op() Opcode { return OpTransferMembership }
func (SetSetting) Op() Opcode         { return OpSetSetting }
func (FreezeSetting) Op() Opcode      { return OpFreezeSetting }
func (Mint) Op() Opcode               { return OpMint }
func (TransferTokens) Op() Opcode     { return OpTransferTokens }
func (AddToWhitelist) Op() Opcode     { return OpAddToWhitelist }

func (c AddMember) encode(w *binWriter)    { w.writeAddress(c.Member) }
func (c RemoveMember) encode(w *binWriter) { w.writeAddress(c.Member) }
func (c TransferMembership) encode(w *binWriter) {
	w.writeAddress(c.From)
	w.writeAddress(c.To)
}
func (c SetSetting) encode(w *binWriter) {
	w.buf.WriteByte(byte(c.Setting))
	w.writeUint64(c.Value)
}
func (c FreezeSetting) encode(w *binWriter) { w.buf.WriteByte(byte(c.Setting)) }
func (c Mint) encode(w *binWriter)          { w.writeAmount(c.Amount) }
func (c TransferTokens) encode(w *binWriter) {
	w.writeAddress(c.To)
	w.writeAmount(c.Amount)
}
func (c AddToWhitelist) encode(w *binWriter) { w.writeAddress(c.Member) }

var (
	ErrEmptyPayload   = errors.New("empty command payload")
	ErrUnknownOpcode  = errors.New("unknown command opcode")
	ErrTrailingBytes  = errors.New("trailing bytes after command")
	ErrUnknownSetting = errors.New("unknown setting")
)

// EncodeCommand packs a command as opcode byte + fields, the payload of a self-call proposal.
// Example payload: EncodeCommand(FreezeSetting{Setting: SettingMintable})
func EncodeCommand(c Command) []byte {
	w := newWriter()
	w.buf.WriteByte(byte(c.Op()))
	c.encode(w)
	return w.bytes()
}

// DecodeCommand parses a self-call payload back into its command.
func DecodeCommand(data []byte) (Command, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	r := newReader(data)
	op, _ := r.readByte()
	var (
		cmd Command
		err error
	)
	switch Opcode(op) {
	case OpAddMember:
		var c AddMember
		c.Member, err = r.readAddress()
		cmd = c
	case OpRemoveMember:
		var c RemoveMember
		c.Member, err = r.readAddress()
		cmd = c
	case OpTransferMembership:
		var c TransferMembership
		if c.From, err = r.readAddress(); err == nil {
			c.To, err = r.readAddress()
		}
		cmd = c
	case OpSetSetting:
		var c SetSetting
		if c.Setting, err = r.readSetting(); err == nil {
			c.Value, err = r.readUint64()
		}
		cmd = c
	case OpFreezeSetting:
		var c FreezeSetting
		c.Setting, err = r.readSetting()
		cmd = c
	case OpMint:
		var c Mint
		c.Amount, err = r.readAmount()
		cmd = c
	case OpTransferTokens:
		var c TransferTokens
		if c.To, err = r.readAddress(); err == nil {
			c.Amount, err = r.readAmount()
		}
		cmd = c
	case OpAddToWhitelist:
		var c AddToWhitelist
		c.Member, err = r.readAddress()
		cmd = c
	default:
		return nil, fmt.Errorf("%w: %#x", ErrUnknownOpcode, op)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", Opcode(op), err)
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("decode %s: %w", Opcode(op), ErrTrailingBytes)
	}
	return cmd, nil
}

// DescribeCommand renders a command as a short text for events and views.
func DescribeCommand(c Command) string {
	switch c := c.(type) {
	case AddMember:
		return "add_member:" + c.Member.String()
	case RemoveMember:
		return "remove_member:" + c.Member.String()
	case TransferMembership:
		return "transfer_membership:" + c.From.String() + ">" + c.To.String()
	case SetSetting:
		return fmt.Sprintf("set_setting:%s=%d", c.Setting, c.Value)
	case FreezeSetting:
		return "freeze_setting:" + c.Setting.String()
	case Mint:
		return fmt.Sprintf("mint:%d", c.Amount)
	case TransferTokens:
		return fmt.Sprintf("transfer_tokens:%s:%d", c.To, c.Amount)
	case AddToWhitelist:
		return "add_to_whitelist:" + c.Member.String()
	case nil:
		return "external"
	default:
		return c.Op().String()
	}
}
