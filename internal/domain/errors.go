package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrContractLocked  = errors.New("contract terms are not editable in the current status")
	ErrBookingNotLinked = errors.New("contract has no linked booking")
)

// ConflictField tags duplicate-detection conflicts raised by the contact
// directory. The engine never performs duplicate detection itself; it only
// propagates these tags untouched so form-level error mapping can consume
// them.
type ConflictField string

const (
	ConflictCivilID                ConflictField = "civil_id"
	ConflictPassport               ConflictField = "passport"
	ConflictPhone                  ConflictField = "phone"
	ConflictCommercialRegistration ConflictField = "commercial_registration"
)

type ConflictError struct {
	Field ConflictField
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Field, e.Value)
}

// InvalidTransitionError rejects an approval transition attempted from a
// status that does not allow it. The contract is left unchanged.
type InvalidTransitionError struct {
	From   ContractStatus
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a contract in status %s", e.Action, e.From)
}

// Gate failure reasons, kept distinct so callers can tell "documents not
// approved" from "cheques not approved".
const (
	GateReasonPartyIncomplete     = "party data incomplete"
	GateReasonDocumentsUnapproved = "documents not approved"
	GateReasonChequesUnapproved   = "cheques not approved"
)

// GateError rejects an approval transition whose completeness precondition
// failed. Reasons holds the specific failing predicates.
type GateError struct {
	Reasons []string
}

func (e *GateError) Error() string {
	if len(e.Reasons) == 0 {
		return "completeness gate failed"
	}
	msg := "completeness gate failed: " + e.Reasons[0]
	for _, r := range e.Reasons[1:] {
		msg += ", " + r
	}
	return msg
}
