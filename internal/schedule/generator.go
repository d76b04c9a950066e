package schedule

import (
	"fmt"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/utils"
)

// Terms are the commercial inputs the generator derives the required
// payment instruments from. The base catalog list is fetched by the caller
// so generation itself stays a pure function.
type Terms struct {
	MonthlyRent                 float64
	DurationMonths              int
	StartDate                   string
	RentDueDay                  int
	RentPaymentMethod           domain.PaymentMethod
	RentPaymentFrequency        domain.PaymentFrequency
	CustomMonthlyRents          []float64
	DepositChequeRequired       bool
	DepositChequeDurationMonths int
}

// TermsFromContract extracts the generator inputs from a contract.
func TermsFromContract(c *domain.Contract) Terms {
	return Terms{
		MonthlyRent:                 c.MonthlyRent,
		DurationMonths:              c.DurationMonths,
		StartDate:                   c.StartDate,
		RentDueDay:                  c.RentDueDay,
		RentPaymentMethod:           c.RentPaymentMethod,
		RentPaymentFrequency:        c.RentPaymentFrequency,
		CustomMonthlyRents:          c.CustomMonthlyRents,
		DepositChequeRequired:       c.DepositChequeRequired,
		DepositChequeDurationMonths: c.DepositChequeDurationMonths,
	}
}

const (
	rentChequeNameEn     = "Rent Cheque"
	rentChequeNameAr     = "شيك إيجار"
	securityChequeNameEn = "Security Cheque"
	securityChequeNameAr = "شيك ضمان"
)

// Generate produces the ordered required-instrument list for the given
// terms: catalog extras first, then security cheques, then rent cheques.
// Order is significant; the reconciler aligns stored records to it. Rent
// and security entries present in the catalog base list are discarded
// because they are computed here.
func Generate(base []domain.RequiredCheck, t Terms) []domain.RequiredCheck {
	out := make([]domain.RequiredCheck, 0, len(base))
	for _, rc := range base {
		if rc.TypeID == domain.CheckTypeRentCheque || rc.TypeID == domain.CheckTypeSecurityCheque {
			continue
		}
		out = append(out, rc)
	}

	out = append(out, securityCheques(t)...)
	out = append(out, rentCheques(t)...)
	return out
}

// securityCheques builds the deposit cheque slots. Deposit cheques are
// undated; the due date stays empty no matter what the terms say.
func securityCheques(t Terms) []domain.RequiredCheck {
	if !t.DepositChequeRequired {
		return nil
	}
	n := t.DepositChequeDurationMonths
	if n < 1 || n > 6 {
		return nil
	}

	cheques := make([]domain.RequiredCheck, 0, n)
	for i := 1; i <= n; i++ {
		cheques = append(cheques, domain.RequiredCheck{
			TypeID:  domain.CheckTypeSecurityCheque,
			NameEn:  numberedLabel(securityChequeNameEn, i, n),
			NameAr:  numberedLabel(securityChequeNameAr, i, n),
			Ordinal: i,
		})
	}
	return cheques
}

// rentCheques builds the dated rent cheque slots. The cheque count is the
// ceiling of the effective duration over the payment period, so a term not
// evenly divisible by the period still ends with a full-length final
// cheque.
func rentCheques(t Terms) []domain.RequiredCheck {
	if t.RentPaymentMethod != domain.PaymentMethodCheck {
		return nil
	}

	effective := t.DurationMonths
	if len(t.CustomMonthlyRents) > 0 {
		effective = len(t.CustomMonthlyRents)
	}
	if effective < 1 {
		return nil
	}

	period := t.RentPaymentFrequency.PeriodMonths()
	count := (effective + period - 1) / period

	cheques := make([]domain.RequiredCheck, 0, count)
	for i := 0; i < count; i++ {
		cheques = append(cheques, domain.RequiredCheck{
			TypeID:  domain.CheckTypeRentCheque,
			NameEn:  numberedLabel(rentChequeNameEn, i+1, count),
			NameAr:  numberedLabel(rentChequeNameAr, i+1, count),
			Ordinal: i + 1,
			Amount:  periodAmount(t, i, period),
			DueDate: utils.DueDateForPeriod(t.StartDate, i*period, t.RentDueDay),
		})
	}
	return cheques
}

// periodAmount sums the custom monthly rents covered by period i, falling
// back to the uniform monthly rent for months the custom list does not
// cover. Without custom rents it is simply rent times period length.
func periodAmount(t Terms, periodIndex, periodMonths int) float64 {
	if len(t.CustomMonthlyRents) == 0 {
		return utils.Round3(t.MonthlyRent * float64(periodMonths))
	}

	var amount float64
	startMonth := periodIndex * periodMonths
	for m := startMonth; m < startMonth+periodMonths; m++ {
		if m < len(t.CustomMonthlyRents) {
			amount += t.CustomMonthlyRents[m]
		} else {
			amount += t.MonthlyRent
		}
	}
	return utils.Round3(amount)
}

func numberedLabel(name string, ordinal, total int) string {
	if total <= 1 {
		return name
	}
	return fmt.Sprintf("%s #%d", name, ordinal)
}
