package approval

import "propdesk-backend/internal/domain"

// GateResult is the structured outcome of the completeness gate. Each
// predicate is independently reportable so callers can present specific
// remediation guidance instead of a single pass/fail.
type GateResult struct {
	MissingTenantFields   []string `json:"missing_tenant_fields"`
	MissingLandlordFields []string `json:"missing_landlord_fields"`
	DocumentsApproved     bool     `json:"documents_approved"`
	ChequesApproved       bool     `json:"cheques_approved"`
}

func (g GateResult) PartyComplete() bool {
	return len(g.MissingTenantFields) == 0 && len(g.MissingLandlordFields) == 0
}

func (g GateResult) Complete() bool {
	return g.PartyComplete() && g.DocumentsApproved && g.ChequesApproved
}

// Reasons lists the failing predicates using the shared gate reason tags.
func (g GateResult) Reasons() []string {
	var reasons []string
	if !g.PartyComplete() {
		reasons = append(reasons, domain.GateReasonPartyIncomplete)
	}
	if !g.DocumentsApproved {
		reasons = append(reasons, domain.GateReasonDocumentsUnapproved)
	}
	if !g.ChequesApproved {
		reasons = append(reasons, domain.GateReasonChequesUnapproved)
	}
	return reasons
}

// Err converts a failed result into a GateError, nil when complete.
func (g GateResult) Err() error {
	if g.Complete() {
		return nil
	}
	return &domain.GateError{Reasons: g.Reasons()}
}

// MissingPartyFields lists the required identity fields a party has not
// filled in. Citizens need a national ID; foreign nationals need a passport
// number with an expiry date.
func MissingPartyFields(p domain.Party, citizenNationality string) []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Nationality == "" {
		missing = append(missing, "nationality")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}
	if p.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}

	if p.Nationality != "" && p.Nationality == citizenNationality {
		if p.NationalID == "" {
			missing = append(missing, "national_id")
		}
	} else {
		if p.PassportNumber == "" {
			missing = append(missing, "passport_number")
		}
		if p.PassportExpiry == "" {
			missing = append(missing, "passport_expiry")
		}
	}
	return missing
}
