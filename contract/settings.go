package contract

import (
	"okinoko_treasury/contract/dao"
)

// Settings holds an org's flags and numeric parameters. Each setting has a frozen companion
// and freezing is one way: a frozen setting never changes again, nor does its frozen bit.
type Settings struct {
	supported map[dao.Setting]bool
	values    map[dao.Setting]uint64
	frozen    map[dao.Setting]bool
}

// variantSettings lists the settings each variant carries.
var variantSettings = map[dao.Variant][]dao.Setting{
	dao.VariantCompany: {
		dao.SettingPurchasePublic,
		dao.SettingMintable,
		dao.SettingBurnable,
		dao.SettingHalfToVote,
		dao.SettingVotingDuration,
	},
	dao.VariantFund: {
		dao.SettingMintable,
		dao.SettingBurnable,
		dao.SettingVotingDuration,
		dao.SettingPercentToVote,
		dao.SettingLimitToBuy,
	},
	dao.VariantService: {
		dao.SettingVotingDuration,
	},
}

// NewSettings builds the settings of a variant from construction values. Unknown or
// unsupported keys are rejected.
func NewSettings(v dao.Variant, initial map[dao.Setting]uint64) (*Settings, error) {
	list, ok := variantSettings[v]
	if !ok {
		return nil, newError(EInvalidConfiguration, "unknown variant %d", v)
	}
	s := &Settings{
		supported: make(map[dao.Setting]bool, len(list)),
		values:    make(map[dao.Setting]uint64, len(list)),
		frozen:    map[dao.Setting]bool{},
	}
	for _, k := range list {
		s.supported[k] = true
		s.values[k] = 0
	}
	for k, val := range initial {
		if err := s.validate(k, val); err != nil {
			return nil, err
		}
		s.values[k] = val
	}
	return s, nil
}

// Supports reports whether the variant carries setting k at all.
func (s *Settings) Supports(k dao.Setting) bool { return s.supported[k] }

func (s *Settings) Value(k dao.Setting) uint64 { return s.values[k] }

func (s *Settings) Enabled(k dao.Setting) bool { return s.values[k] != 0 }

func (s *Settings) Frozen(k dao.Setting) bool { return s.frozen[k] }

// Set changes a setting unless it is frozen.
func (s *Settings) Set(k dao.Setting, val uint64) error {
	if err := s.validate(k, val); err != nil {
		return err
	}
	if s.frozen[k] {
		return newError(EFeatureFrozen, "%s is frozen", k)
	}
	s.values[k] = val
	return nil
}

// Freeze locks a setting. Freezing twice is rejected because the frozen bit is itself governed.
func (s *Settings) Freeze(k dao.Setting) error {
	if !s.Supports(k) {
		return newError(EInvalidConfiguration, "setting %s is not available", k)
	}
	if s.frozen[k] {
		return newError(EFeatureFrozen, "%s is already frozen", k)
	}
	s.frozen[k] = true
	return nil
}

// List returns every supported setting in storage order.
func (s *Settings) List() []dao.Setting {
	out := make([]dao.Setting, 0, len(s.supported))
	for _, k := range dao.AllSettings {
		if s.Supports(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s *Settings) validate(k dao.Setting, val uint64) error {
	if !s.Supports(k) {
		return newError(EInvalidConfiguration, "setting %s is not available", k)
	}
	if k.IsFlag() && val > 1 {
		return newError(EInvalidConfiguration, "%s is a flag, got %d", k, val)
	}
	if k == dao.SettingPercentToVote && val > 100 {
		return newError(EInvalidConfiguration, "percent_to_vote %d above 100", val)
	}
	return nil
}

func (s *Settings) clone() *Settings {
	cp := &Settings{
		supported: s.supported,
		values:    make(map[dao.Setting]uint64, len(s.values)),
		frozen:    make(map[dao.Setting]bool, len(s.frozen)),
	}
	for k, v := range s.values {
		cp.values[k] = v
	}
	for k, v := range s.frozen {
		cp.frozen[k] = v
	}
	return cp
}
