package approval

import (
	"testing"

	"propdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func completeParty() domain.Party {
	return domain.Party{
		Name:        "Sara Al-Mutairi",
		Nationality: "Kuwait",
		Gender:      "female",
		PhoneNumber: "+96550001234",
		Email:       "sara@example.com",
		NationalID:  "288010112345",
	}
}

func TestMissingPartyFields(t *testing.T) {
	t.Run("Complete citizen", func(t *testing.T) {
		assert.Empty(t, MissingPartyFields(completeParty(), "Kuwait"))
	})

	t.Run("Citizen without national ID", func(t *testing.T) {
		p := completeParty()
		p.NationalID = ""
		assert.Equal(t, []string{"national_id"}, MissingPartyFields(p, "Kuwait"))
	})

	t.Run("Foreign national needs passport with expiry", func(t *testing.T) {
		p := completeParty()
		p.Nationality = "India"
		p.NationalID = ""
		missing := MissingPartyFields(p, "Kuwait")
		assert.Contains(t, missing, "passport_number")
		assert.Contains(t, missing, "passport_expiry")

		p.PassportNumber = "N1234567"
		p.PassportExpiry = "2030-01-01"
		assert.Empty(t, MissingPartyFields(p, "Kuwait"))
	})

	t.Run("Everything missing", func(t *testing.T) {
		missing := MissingPartyFields(domain.Party{}, "Kuwait")
		assert.Contains(t, missing, "name")
		assert.Contains(t, missing, "nationality")
		assert.Contains(t, missing, "gender")
		assert.Contains(t, missing, "phone_number")
		assert.Contains(t, missing, "email")
	})
}

func TestGateResult(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		g := GateResult{DocumentsApproved: true, ChequesApproved: true}
		assert.True(t, g.Complete())
		assert.NoError(t, g.Err())
		assert.Empty(t, g.Reasons())
	})

	t.Run("Reasons are distinct per predicate", func(t *testing.T) {
		g := GateResult{
			MissingTenantFields: []string{"email"},
			DocumentsApproved:   true,
			ChequesApproved:     false,
		}
		assert.Equal(t, []string{
			domain.GateReasonPartyIncomplete,
			domain.GateReasonChequesUnapproved,
		}, g.Reasons())

		var gateErr *domain.GateError
		assert.ErrorAs(t, g.Err(), &gateErr)
	})
}
