package dao

// Views are the read-only shapes handed to inspection tooling and the HTTP API.
// Run `tinyjson -all views.go` after changing them.

//tinyjson:json
type ProposalView struct {
	ID          uint64   `json:"id"`
	Creator     string   `json:"creator"`
	Target      string   `json:"target"`
	Payload     string   `json:"payload"`
	Action      string   `json:"action"`
	Value       uint64   `json:"value"`
	Description string   `json:"description"`
	Signers     []string `json:"signers"`
	Executed    bool     `json:"executed"`
	State       string   `json:"state"`
	CreatedAt   int64    `json:"created_at"`
	Threshold   uint64   `json:"threshold,omitempty"`
}

//tinyjson:json
type SettingView struct {
	Name   string `json:"name"`
	Value  uint64 `json:"value"`
	Frozen bool   `json:"frozen"`
}

//tinyjson:json
type OrgView struct {
	ID                 string        `json:"id"`
	Variant            string        `json:"variant"`
	Name               string        `json:"name"`
	Symbol             string        `json:"symbol"`
	Currency           string        `json:"currency"`
	Price              uint64        `json:"price"`
	TotalSupply        uint64        `json:"total_supply"`
	Treasury           uint64        `json:"treasury"`
	Vault              uint64        `json:"vault"`
	Members            []string      `json:"members"`
	GoldenShare        string        `json:"golden_share,omitempty"`
	Whitelist          []string      `json:"whitelist,omitempty"`
	Settings           []SettingView `json:"settings"`
	Proposals          uint64        `json:"proposals"`
	WhitelistProposals uint64        `json:"whitelist_proposals"`
}

//tinyjson:json
type InstanceList struct {
	Instances  []string `json:"instances"`
	Currencies []string `json:"currencies"`
}

//tinyjson:json
type ProposalList struct {
	Org       string         `json:"org"`
	Store     string         `json:"store"`
	Proposals []ProposalView `json:"proposals"`
}
