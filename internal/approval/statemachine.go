package approval

import (
	"time"

	"propdesk-backend/internal/domain"
)

// Transition functions mutate the contract only when the transition is
// legal and its guard passes; on rejection the contract is untouched
// (guards fail closed). Completeness is evaluated by the caller and handed
// in as a GateResult so these functions stay pure over their inputs.

// AdminApprove moves DRAFT to ADMIN_APPROVED behind the full completeness
// gate and stamps the admin approval time.
func AdminApprove(c *domain.Contract, gate GateResult, now time.Time) error {
	if c.Status != domain.ContractStatusDraft {
		return &domain.InvalidTransitionError{From: c.Status, Action: "admin-approve"}
	}
	if err := gate.Err(); err != nil {
		return err
	}
	c.Status = domain.ContractStatusAdminApproved
	c.AdminApprovedAt = &now
	return nil
}

// TenantApprove stamps the tenant approval time. The status tracks
// whichever single-party approval happened most recently; the two
// timestamps are what the final approval guard reads.
func TenantApprove(c *domain.Contract, now time.Time) error {
	if !partyApprovalAllowed(c.Status) {
		return &domain.InvalidTransitionError{From: c.Status, Action: "tenant-approve"}
	}
	c.TenantApprovedAt = &now
	c.Status = domain.ContractStatusTenantApproved
	return nil
}

// LandlordApprove is the landlord counterpart of TenantApprove.
func LandlordApprove(c *domain.Contract, now time.Time) error {
	if !partyApprovalAllowed(c.Status) {
		return &domain.InvalidTransitionError{From: c.Status, Action: "landlord-approve"}
	}
	c.LandlordApprovedAt = &now
	c.Status = domain.ContractStatusLandlordApproved
	return nil
}

func partyApprovalAllowed(s domain.ContractStatus) bool {
	switch s {
	case domain.ContractStatusAdminApproved,
		domain.ContractStatusTenantApproved,
		domain.ContractStatusLandlordApproved:
		return true
	}
	return false
}

// FinalApprove moves the contract to APPROVED. Both party timestamps must
// be present and the document/cheque gates are re-checked, since approvals
// may have been revoked since admin approval. The caller converts the
// linked booking to rented after this succeeds; the transition itself is
// irreversible.
func FinalApprove(c *domain.Contract, gate GateResult, now time.Time) error {
	switch c.Status {
	case domain.ContractStatusTenantApproved, domain.ContractStatusLandlordApproved:
	default:
		return &domain.InvalidTransitionError{From: c.Status, Action: "final-approve"}
	}
	if c.TenantApprovedAt == nil || c.LandlordApprovedAt == nil {
		return &domain.InvalidTransitionError{From: c.Status, Action: "final-approve"}
	}
	if !gate.DocumentsApproved || !gate.ChequesApproved {
		partial := GateResult{
			DocumentsApproved: gate.DocumentsApproved,
			ChequesApproved:   gate.ChequesApproved,
		}
		return &domain.GateError{Reasons: partial.Reasons()}
	}
	c.Status = domain.ContractStatusApproved
	return nil
}

// RevertToDraft re-enables terms editing. Only legal from ADMIN_APPROVED;
// approval timestamps are deliberately left in place.
func RevertToDraft(c *domain.Contract) error {
	if c.Status != domain.ContractStatusAdminApproved {
		return &domain.InvalidTransitionError{From: c.Status, Action: "revert"}
	}
	c.Status = domain.ContractStatusDraft
	return nil
}

// Cancel is terminal and reachable only from the intermediate approval
// states, never from DRAFT, APPROVED or CANCELLED.
func Cancel(c *domain.Contract) error {
	switch c.Status {
	case domain.ContractStatusAdminApproved,
		domain.ContractStatusTenantApproved,
		domain.ContractStatusLandlordApproved:
		c.Status = domain.ContractStatusCancelled
		return nil
	}
	return &domain.InvalidTransitionError{From: c.Status, Action: "cancel"}
}
