package jobs

import (
	"context"
	"time"

	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/utils"
)

// SendChequeDueReminders emails the tenant for every cheque whose due date
// falls within the configured look-ahead window.
func (jr *JobRunner) SendChequeDueReminders() {
	jr.runWithRecovery("SendChequeDueReminders", func() {
		ctx := context.Background()
		days := jr.config.Scheduler.ChequeDueSoonDays

		due, err := jr.store.ListDueWithin(ctx, days)
		if err != nil {
			logger.Error("Failed to list due cheques", "error", err)
			return
		}

		sent := 0
		for _, rec := range due {
			contract, err := jr.store.ContractRepository.GetByID(ctx, rec.ContractID)
			if err != nil {
				logger.Error("Failed to load contract for due cheque", "contract_id", rec.ContractID, "error", err)
				continue
			}
			if contract.Tenant.Email == "" {
				continue
			}
			if err := jr.email.SendChequeDueReminder(ctx, contract.Tenant.Email, rec.CheckNumber, rec.Date, rec.Amount); err != nil {
				logger.Error("Failed to send cheque due reminder", "contract_id", rec.ContractID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Cheque due reminders sent", "window_days", days, "due", len(due), "sent", sent)
	})
}

// EscalateStaleDrafts notifies the admin mailbox about contracts stuck in
// draft beyond the configured age.
func (jr *JobRunner) EscalateStaleDrafts() {
	jr.runWithRecovery("EscalateStaleDrafts", func() {
		ctx := context.Background()
		maxAge := jr.config.Scheduler.StaleDraftDays
		adminEmail := jr.config.SMTP.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping stale draft escalation")
			return
		}

		drafts, err := jr.store.ListDraftsOlderThan(ctx, maxAge)
		if err != nil {
			logger.Error("Failed to list stale drafts", "error", err)
			return
		}

		today := time.Now().Format(utils.DateLayout)
		for _, c := range drafts {
			ageDays := maxAge
			if c.CreatedOn != "" {
				if d := utils.DateDiffInDays(c.CreatedOn, today); d > 0 {
					ageDays = d
				}
			}
			if err := jr.email.SendStaleDraftNotice(ctx, adminEmail, c.ID, ageDays); err != nil {
				logger.Error("Failed to send stale draft notice", "contract_id", c.ID, "error", err)
			}
		}

		logger.Info("Stale draft escalation finished", "count", len(drafts))
	})
}
