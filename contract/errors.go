package contract

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Class groups codes the way callers usually react to them.
type Class string

const (
	ClassAuthorization Class = "authorization"
	ClassState         Class = "state"
	ClassValidation    Class = "validation"
	ClassQuorum        Class = "quorum"
)

const (
	// authorization
	ENotAMember          Code = "E_NOT_A_MEMBER"
	ENotWhitelisted      Code = "E_NOT_WHITELISTED"
	EGoldenShareRequired Code = "E_GOLDEN_SHARE_REQUIRED"

	// state
	EAlreadyExecuted    Code = "E_ALREADY_EXECUTED"
	EAlreadySigned      Code = "E_ALREADY_SIGNED"
	EProposalExpired    Code = "E_PROPOSAL_EXPIRED"
	EFeatureFrozen      Code = "E_FEATURE_FROZEN"
	EIssuanceDisabled   Code = "E_ISSUANCE_DISABLED"
	ERedemptionDisabled Code = "E_REDEMPTION_DISABLED"
	EPurchaseDisabled   Code = "E_PURCHASE_DISABLED"
	EExecutionFailed    Code = "E_EXECUTION_FAILED"

	// validation
	EDuplicateMember       Code = "E_DUPLICATE_MEMBER"
	EMemberNotFound        Code = "E_MEMBER_NOT_FOUND"
	EInvalidConfiguration  Code = "E_INVALID_CONFIGURATION"
	EInsufficientPayment   Code = "E_INSUFFICIENT_PAYMENT"
	EInsufficientBalance   Code = "E_INSUFFICIENT_BALANCE"
	EPurchaseLimitExceeded Code = "E_PURCHASE_LIMIT_EXCEEDED"
	EProposalNotFound      Code = "E_PROPOSAL_NOT_FOUND"

	// quorum
	EQuorumNotMet Code = "E_QUORUM_NOT_MET"
)

var codeClasses = map[Code]Class{
	ENotAMember:            ClassAuthorization,
	ENotWhitelisted:        ClassAuthorization,
	EGoldenShareRequired:   ClassAuthorization,
	EAlreadyExecuted:       ClassState,
	EAlreadySigned:         ClassState,
	EProposalExpired:       ClassState,
	EFeatureFrozen:         ClassState,
	EIssuanceDisabled:      ClassState,
	ERedemptionDisabled:    ClassState,
	EPurchaseDisabled:      ClassState,
	EExecutionFailed:       ClassState,
	EDuplicateMember:       ClassValidation,
	EMemberNotFound:        ClassValidation,
	EInvalidConfiguration:  ClassValidation,
	EInsufficientPayment:   ClassValidation,
	EInsufficientBalance:   ClassValidation,
	EPurchaseLimitExceeded: ClassValidation,
	EProposalNotFound:      ClassValidation,
	EQuorumNotMet:          ClassQuorum,
}

// Sentinels for errors.Is. Every *Error with the same code matches its sentinel.
var (
	ErrNotAMember            = &Error{Code: ENotAMember}
	ErrNotWhitelisted        = &Error{Code: ENotWhitelisted}
	ErrGoldenShareRequired   = &Error{Code: EGoldenShareRequired}
	ErrAlreadyExecuted       = &Error{Code: EAlreadyExecuted}
	ErrAlreadySigned         = &Error{Code: EAlreadySigned}
	ErrProposalExpired       = &Error{Code: EProposalExpired}
	ErrFeatureFrozen         = &Error{Code: EFeatureFrozen}
	ErrIssuanceDisabled      = &Error{Code: EIssuanceDisabled}
	ErrRedemptionDisabled    = &Error{Code: ERedemptionDisabled}
	ErrPurchaseDisabled      = &Error{Code: EPurchaseDisabled}
	ErrExecutionFailed       = &Error{Code: EExecutionFailed}
	ErrDuplicateMember       = &Error{Code: EDuplicateMember}
	ErrMemberNotFound        = &Error{Code: EMemberNotFound}
	ErrInvalidConfiguration  = &Error{Code: EInvalidConfiguration}
	ErrInsufficientPayment   = &Error{Code: EInsufficientPayment}
	ErrInsufficientBalance   = &Error{Code: EInsufficientBalance}
	ErrPurchaseLimitExceeded = &Error{Code: EPurchaseLimitExceeded}
	ErrProposalNotFound      = &Error{Code: EProposalNotFound}
	ErrQuorumNotMet          = &Error{Code: EQuorumNotMet}
)

// Error is returned by every org operation. It never leaves partial state behind.
type Error struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string
}

// Error returns the stable error format: "CODE: message".
func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches on code so callers can compare against the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Class reports the taxonomy bucket of the code.
func (e *Error) Class() Class { return codeClasses[e.Code] }

func newError(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func newErrorWithDetails(code Code, msg string, details map[string]string) error {
	return &Error{Code: code, Msg: msg, Details: details}
}

func wrapError(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetClass extracts the taxonomy class from an error, or empty string if not an *Error.
func GetClass(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class()
	}
	return ""
}
