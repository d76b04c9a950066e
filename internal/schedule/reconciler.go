package schedule

import (
	"strconv"

	"propdesk-backend/internal/domain"
)

// Options control how a reconciliation pass treats stored values.
type Options struct {
	// PreserveStoredAmounts keeps stored amounts and dates instead of
	// recomputing them. Used on first load, where the stored record is the
	// source of truth; a terms edit always recomputes.
	PreserveStoredAmounts bool
}

// Reconcile merges the freshly generated required list with the previously
// stored records. Records are matched by slot key first and stored position
// second, so user-entered check numbers and images survive a terms edit
// while identity and type always follow the generator.
func Reconcile(contractID int32, required []domain.RequiredCheck, stored []domain.CheckRecord, payee domain.PayeeInfo, opts Options) []domain.CheckRecord {
	byKey := make(map[string]*domain.CheckRecord, len(stored))
	for i := range stored {
		if stored[i].SlotKey != "" {
			byKey[stored[i].SlotKey] = &stored[i]
		}
	}

	out := make([]domain.CheckRecord, 0, len(required))
	for pos, req := range required {
		rec := domain.CheckRecord{
			ContractID: contractID,
			Position:   int32(pos),
			SlotKey:    req.SlotKey(),
			TypeID:     req.TypeID,
			NameEn:     req.NameEn,
			NameAr:     req.NameAr,
			Amount:     req.Amount,
			Date:       req.DueDate,
		}

		prev := byKey[req.SlotKey()]
		if prev == nil && pos < len(stored) && stored[pos].TypeID == req.TypeID {
			// Legacy rows predating slot keys align by position.
			prev = &stored[pos]
		}
		if prev != nil {
			rec.ID = prev.ID
			rec.CheckNumber = prev.CheckNumber
			rec.ImageURL = prev.ImageURL
			rec.Approved = prev.Approved
			rec.ApprovedAt = prev.ApprovedAt
			if opts.PreserveStoredAmounts {
				rec.Amount = prev.Amount
				rec.Date = prev.Date
			}
		}

		// Security cheques are undated regardless of what was stored.
		if rec.TypeID == domain.CheckTypeSecurityCheque {
			rec.Date = ""
		}

		rec.AccountNumber = payee.AccountNumber
		rec.AccountName = payee.AccountName

		out = append(out, rec)
	}
	return out
}

// AutoFillCheckNumbers fills every record after the first with an
// increasing sequence when the first record's check number parses as an
// integer. It applies only within the edit event that changed the first
// number, not on every reconciliation pass.
func AutoFillCheckNumbers(records []domain.CheckRecord) {
	if len(records) < 2 {
		return
	}
	first, err := strconv.Atoi(records[0].CheckNumber)
	if err != nil {
		return
	}
	for i := 1; i < len(records); i++ {
		records[i].CheckNumber = strconv.Itoa(first + i)
	}
}
