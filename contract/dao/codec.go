package dao

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"okinoko_treasury/sdk"
)

var ErrUnexpectedEOF = errors.New("unexpected EOF")

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeAmount(v sdk.Amount) {
	w.writeUint64(uint64(v))
}

// writeBytes prefixes its length then dumps the raw bytes.
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

func (w *binWriter) writeAddressList(list []sdk.Address) {
	w.writeVarUint(uint64(len(list)))
	for _, a := range list {
		w.writeAddress(a)
	}
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) remaining() int { return len(r.data) - r.pos }

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (sdk.Amount, error) {
	v, err := r.readUint64()
	return sdk.Amount(v), err
}

func (r *binReader) readBytes() ([]byte, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if l > uint64(r.remaining()) {
		return nil, ErrUnexpectedEOF
	}
	out := make([]byte, l)
	copy(out, r.data[r.pos:r.pos+int(l)])
	r.pos += int(l)
	return out, nil
}

func (r *binReader) readString() (string, error) {
	b, err := r.readBytes()
	return string(b), err
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Address(s), nil
}

func (r *binReader) readAddressList() ([]sdk.Address, error) {
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.remaining()) {
		return nil, ErrUnexpectedEOF
	}
	out := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *binReader) readSetting() (Setting, error) {
	b, err := r.readByte()
	if err != nil {
		return SettingUnspecified, err
	}
	s := Setting(b)
	if _, ok := settingNames[s]; !ok {
		return SettingUnspecified, fmt.Errorf("%w: %d", ErrUnknownSetting, b)
	}
	return s, nil
}

// EncodeProposal turns a Proposal into bytes for the state store. The command is not written,
// it is re-derived from the payload on decode.
// Example payload: EncodeProposal(&Proposal{ID: 3, Description: "add bob"})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Creator)
	w.writeAddress(p.Target)
	w.writeBytes(p.Payload)
	w.writeBool(p.Command != nil)
	w.writeAmount(p.Value)
	w.writeString(p.Description)
	w.writeAddressList(p.Signers)
	w.writeBool(p.Executed)
	w.writeInt64(p.CreatedAt)
	w.writeAmount(p.Threshold)
	return w.bytes()
}

// DecodeProposal is the inverse of EncodeProposal.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	p := &Proposal{}
	var (
		err     error
		selfCmd bool
	)
	if p.ID, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("proposal id: %w", err)
	}
	if p.Creator, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("proposal creator: %w", err)
	}
	if p.Target, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("proposal target: %w", err)
	}
	if p.Payload, err = r.readBytes(); err != nil {
		return nil, fmt.Errorf("proposal payload: %w", err)
	}
	if selfCmd, err = r.readBool(); err != nil {
		return nil, fmt.Errorf("proposal kind: %w", err)
	}
	if p.Value, err = r.readAmount(); err != nil {
		return nil, fmt.Errorf("proposal value: %w", err)
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, fmt.Errorf("proposal description: %w", err)
	}
	if p.Signers, err = r.readAddressList(); err != nil {
		return nil, fmt.Errorf("proposal signers: %w", err)
	}
	if p.Executed, err = r.readBool(); err != nil {
		return nil, fmt.Errorf("proposal executed: %w", err)
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, fmt.Errorf("proposal created_at: %w", err)
	}
	if p.Threshold, err = r.readAmount(); err != nil {
		return nil, fmt.Errorf("proposal threshold: %w", err)
	}
	if selfCmd {
		if p.Command, err = DecodeCommand(p.Payload); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// EncodeOrgMeta packs the construction record.
func EncodeOrgMeta(m *OrgMeta) []byte {
	w := newWriter()
	w.buf.WriteByte(byte(m.Variant))
	w.writeAddress(m.ID)
	w.writeString(m.Name)
	w.writeString(m.Symbol)
	w.writeString(m.Currency.String())
	w.writeAmount(m.Price)
	w.writeAddress(m.GoldenShare)
	w.writeInt64(m.CreatedAt)
	return w.bytes()
}

// DecodeOrgMeta is the inverse of EncodeOrgMeta.
func DecodeOrgMeta(data []byte) (*OrgMeta, error) {
	r := newReader(data)
	m := &OrgMeta{}
	v, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("org variant: %w", err)
	}
	m.Variant = Variant(v)
	if m.ID, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("org id: %w", err)
	}
	if m.Name, err = r.readString(); err != nil {
		return nil, fmt.Errorf("org name: %w", err)
	}
	if m.Symbol, err = r.readString(); err != nil {
		return nil, fmt.Errorf("org symbol: %w", err)
	}
	cur, err := r.readString()
	if err != nil {
		return nil, fmt.Errorf("org currency: %w", err)
	}
	m.Currency = sdk.Asset(cur)
	if m.Price, err = r.readAmount(); err != nil {
		return nil, fmt.Errorf("org price: %w", err)
	}
	if m.GoldenShare, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("org golden share: %w", err)
	}
	if m.CreatedAt, err = r.readInt64(); err != nil {
		return nil, fmt.Errorf("org created_at: %w", err)
	}
	return m, nil
}

// EncodeAddressList packs an ordered identity sequence (members, instance registry).
func EncodeAddressList(list []sdk.Address) []byte {
	w := newWriter()
	w.writeAddressList(list)
	return w.bytes()
}

func DecodeAddressList(data []byte) ([]sdk.Address, error) {
	return newReader(data).readAddressList()
}

// EncodeAmount stores balances and counters as 8 big endian bytes.
func EncodeAmount(v sdk.Amount) []byte {
	w := newWriter()
	w.writeAmount(v)
	return w.bytes()
}

func DecodeAmount(data []byte) (sdk.Amount, error) {
	return newReader(data).readAmount()
}

// EncodeSettingRecord stores one setting value with its frozen companion.
func EncodeSettingRecord(value uint64, frozen bool) []byte {
	w := newWriter()
	w.writeUint64(value)
	w.writeBool(frozen)
	return w.bytes()
}

func DecodeSettingRecord(data []byte) (uint64, bool, error) {
	r := newReader(data)
	v, err := r.readUint64()
	if err != nil {
		return 0, false, err
	}
	frozen, err := r.readBool()
	if err != nil {
		return 0, false, err
	}
	return v, frozen, nil
}

// EncodeLedgerHeader stores the supply next to the holder order so balances reload in
// first-credit order.
func EncodeLedgerHeader(supply sdk.Amount, holders []sdk.Address) []byte {
	w := newWriter()
	w.writeAmount(supply)
	w.writeAddressList(holders)
	return w.bytes()
}

func DecodeLedgerHeader(data []byte) (sdk.Amount, []sdk.Address, error) {
	r := newReader(data)
	supply, err := r.readAmount()
	if err != nil {
		return 0, nil, err
	}
	holders, err := r.readAddressList()
	if err != nil {
		return 0, nil, err
	}
	return supply, holders, nil
}
