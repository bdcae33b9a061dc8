package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser AddressDomain = "user"
	AddressDomainOrg  AddressDomain = "org"
)

// OrgPrefix marks identities minted by the factory for org instances.
const OrgPrefix = "org:"

type Address string

// String returns the literal representation (like evm:0xabc or org:<uuid>) of the address.
// Example payload: sdk.Address("evm:0xabc").String()
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell org identities apart from user identities.
// Example payload: sdk.Address("org:1b4e").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), OrgPrefix) {
		return AddressDomainOrg
	}
	return AddressDomainUser
}

// IsValid is a light sanity check: non-empty and free of whitespace or the '|' event separator.
// Example payload: sdk.Address("evm:0xabc").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n|")
}

// OrgAddress builds the identity for an org from its instance id.
func OrgAddress(id string) Address {
	return Address(OrgPrefix + id)
}
