package contract

import "okinoko_treasury/sdk"

const (
	// kOrgMeta stores the encoded OrgMeta construction record.
	kOrgMeta byte = 0x01
	// kOrgMembers holds the ordered member sequence in one blob, order is part of the state.
	kOrgMembers byte = 0x02
	// kOrgSetting stores value + frozen per setting, keyed by the setting byte.
	kOrgSetting byte = 0x03
	// kOrgLedger keeps supply and holder order.
	kOrgLedger byte = 0x04
	// kOrgBalance stores one balance per holder.
	kOrgBalance byte = 0x05
	// kOrgVault is the native currency held by the org.
	kOrgVault byte = 0x06
	// kOrgWhitelist flags pending purchase approvals (fund).
	kOrgWhitelist byte = 0x07
	// kProposal contains encoded governance proposals.
	kProposal byte = 0x10
	// kWhitelistProposal contains encoded fund whitelist proposals.
	kWhitelistProposal byte = 0x11
	// kFactoryInstances is the append-only instance registry.
	kFactoryInstances byte = 0x20
	// kFactoryCurrencies is the accepted currency list.
	kFactoryCurrencies byte = 0x21
)

// sep splits the org id from the trailing part of a key. Identities never contain it.
const sep = '|'

// packU64BE appends x big endian so prefix scans come back in id order.
func packU64BE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x>>56),
		byte(x>>48),
		byte(x>>40),
		byte(x>>32),
		byte(x>>24),
		byte(x>>16),
		byte(x>>8),
		byte(x),
	)
}

// orgKey is prefix + org id, the shape of every single record key.
func orgKey(prefix byte, org sdk.Address) string {
	buf := make([]byte, 0, 1+len(org))
	buf = append(buf, prefix)
	buf = append(buf, org...)
	return string(buf)
}

// orgScope is the prefix shared by every multi record key of an org.
func orgScope(prefix byte, org sdk.Address) string {
	return orgKey(prefix, org) + string(sep)
}

func settingKey(org sdk.Address, b byte) string {
	return orgScope(kOrgSetting, org) + string([]byte{b})
}

// balanceKey mixes org id plus holder address to avoid nested maps in storage.
func balanceKey(org, holder sdk.Address) string {
	return orgScope(kOrgBalance, org) + holder.String()
}

func proposalKey(prefix byte, org sdk.Address, id uint64) string {
	return string(packU64BE(id, []byte(orgScope(prefix, org))))
}

func factoryKey(prefix byte) string { return string([]byte{prefix}) }
