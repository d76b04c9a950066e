package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"propdesk-backend/internal/approval"
	"propdesk-backend/internal/config"
	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/schedule"
	"propdesk-backend/internal/security"
	"propdesk-backend/internal/utils"
)

type contractService struct {
	contractRepo repository.ContractRepository
	checkRepo    repository.CheckRecordRepository
	bookingRepo  repository.BookingRepository
	catalogRepo  repository.CatalogRepository
	bankRepo     repository.BankAccountRepository
	noteRepo     repository.NotificationRepository
	contactDir   repository.ContactDirectory
	emailSvc     EmailService
	tokens       security.TokenManager
	finance      config.FinanceConfig
	portalURL    string
}

func NewContractService(
	contractRepo repository.ContractRepository,
	checkRepo repository.CheckRecordRepository,
	bookingRepo repository.BookingRepository,
	catalogRepo repository.CatalogRepository,
	bankRepo repository.BankAccountRepository,
	noteRepo repository.NotificationRepository,
	contactDir repository.ContactDirectory,
	emailSvc EmailService,
	tokens security.TokenManager,
	finance config.FinanceConfig,
	portalURL string,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		checkRepo:    checkRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		bankRepo:     bankRepo,
		noteRepo:     noteRepo,
		contactDir:   contactDir,
		emailSvc:     emailSvc,
		tokens:       tokens,
		finance:      finance,
		portalURL:    portalURL,
	}
}

func (s *contractService) CreateContract(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	c.Status = domain.ContractStatusDraft
	s.recomputeDerived(c)
	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	if _, err := s.rebuildSchedule(ctx, c, schedule.TermsFromContract(c), schedule.Options{}); err != nil {
		return nil, err
	}
	logger.Info("Contract created", "contract_id", c.ID, "property_id", c.PropertyID)
	return c, nil
}

func (s *contractService) CreateFromBooking(ctx context.Context, bookingID int32) (*domain.Contract, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	c := &domain.Contract{
		BookingID:  &booking.ID,
		PropertyID: booking.PropertyID,
		UnitType:   booking.UnitType,
		Status:     domain.ContractStatusDraft,
		Tenant: domain.Party{
			Name:        booking.TenantName,
			PhoneNumber: booking.TenantPhone,
			Email:       booking.TenantEmail,
		},
		RentPaymentMethod:    domain.PaymentMethodCash,
		RentPaymentFrequency: domain.PaymentFrequencyMonthly,
		RentDueDay:           1,
	}

	// Best effort: enrich the tenant from the contact directory. Conflict
	// tags from the directory are surfaced, not swallowed.
	if booking.TenantPhone != "" {
		contact, err := s.contactDir.FindByIdentifier(ctx, booking.TenantPhone)
		switch {
		case err == nil:
			c.Tenant = contact.AsParty()
		case isConflict(err):
			return nil, err
		}
	}

	s.recomputeDerived(c)
	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	booking.ContractID = &c.ID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Contract created from booking", "contract_id", c.ID, "booking_id", booking.ID)
	return c, nil
}

func isConflict(err error) bool {
	var conflict *domain.ConflictError
	return errors.As(err, &conflict)
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, []domain.CheckRecord, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.checkRepo.ListByContract(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	// The stored list must always match the generator output for the
	// current terms. A mismatch (count or per-slot type) triggers a
	// regeneration that keeps only user-entered values.
	required, err := s.requiredChecks(ctx, c, schedule.TermsFromContract(c))
	if err != nil {
		return nil, nil, err
	}
	if !aligned(required, records) {
		records, err = s.persistReconciled(ctx, c, required, records, schedule.Options{PreserveStoredAmounts: true})
		if err != nil {
			return nil, nil, err
		}
	}

	return c, records, nil
}

func aligned(required []domain.RequiredCheck, stored []domain.CheckRecord) bool {
	if len(required) != len(stored) {
		return false
	}
	for i, req := range required {
		if stored[i].SlotKey != req.SlotKey() {
			return false
		}
	}
	return true
}

func (s *contractService) ListContracts(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.Contract, int32, error) {
	return s.contractRepo.ListByStatus(ctx, status, page, pageSize)
}

func (s *contractService) UpdateTerms(ctx context.Context, id int32, terms TermsUpdate, editMode bool) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Editable(editMode) {
		return nil, domain.ErrContractLocked
	}

	c.MonthlyRent = terms.MonthlyRent
	c.DurationMonths = terms.DurationMonths
	c.StartDate = terms.StartDate
	c.ActualRentalDate = terms.ActualRentalDate
	c.RentDueDay = terms.RentDueDay
	c.RentPaymentMethod = terms.RentPaymentMethod
	c.RentPaymentFrequency = terms.RentPaymentFrequency
	c.CustomMonthlyRents = terms.CustomMonthlyRents
	c.DiscountAmount = terms.DiscountAmount
	c.DepositAmount = terms.DepositAmount
	c.DepositChequeRequired = terms.DepositChequeRequired
	c.DepositChequeDurationMonths = terms.DepositChequeDurationMonths
	c.Payee = terms.Payee

	if terms.BankAccountID != nil {
		account, err := s.bankRepo.GetByID(ctx, *terms.BankAccountID)
		if err != nil {
			return nil, err
		}
		c.Payee.BankName = account.BankName
		c.Payee.BankBranch = account.BankBranch
		c.Payee.AccountNumber = account.AccountNumber
		c.Payee.AccountName = account.AccountName
	}

	// Derived fields and the schedule are both recomputed and persisted in
	// this single pass; the completeness gate reads the persisted results.
	s.recomputeDerived(c)
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	if _, err := s.rebuildSchedule(ctx, c, schedule.TermsFromContract(c), schedule.Options{}); err != nil {
		return nil, err
	}

	logger.Info("Contract terms updated", "contract_id", c.ID)
	return c, nil
}

func (s *contractService) AutoCreateCheques(ctx context.Context, id int32, editMode bool) ([]domain.CheckRecord, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Editable(editMode) {
		return nil, domain.ErrContractLocked
	}

	terms := schedule.TermsFromContract(c)
	if terms.StartDate == "" {
		terms.StartDate = time.Now().Format(utils.DateLayout)
	}
	return s.rebuildSchedule(ctx, c, terms, schedule.Options{})
}

func (s *contractService) UpdateCheckRecord(ctx context.Context, id, position int32, upd CheckUpdate, editMode bool) ([]domain.CheckRecord, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Editable(editMode) {
		return nil, domain.ErrContractLocked
	}

	records, err := s.checkRepo.ListByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if position < 0 || int(position) >= len(records) {
		return nil, domain.ErrNotFound
	}

	rec := &records[position]
	checkNumberChanged := false
	if upd.CheckNumber != nil && *upd.CheckNumber != rec.CheckNumber {
		rec.CheckNumber = *upd.CheckNumber
		checkNumberChanged = true
	}
	if upd.Amount != nil {
		rec.Amount = utils.Round3(*upd.Amount)
	}
	if upd.Date != nil && rec.TypeID != domain.CheckTypeSecurityCheque {
		rec.Date = *upd.Date
	}
	if upd.ImageURL != nil {
		rec.ImageURL = *upd.ImageURL
	}

	// Editing the first cheque's number seeds a sequential fill of the
	// rest, only within this edit event.
	if position == 0 && checkNumberChanged {
		schedule.AutoFillCheckNumbers(records)
	}

	if err := s.checkRepo.ReplaceForContract(ctx, id, records); err != nil {
		return nil, err
	}
	if err := s.mirrorToBooking(ctx, c, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *contractService) Completeness(ctx context.Context, id int32) (approval.GateResult, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return approval.GateResult{}, err
	}
	return s.evaluateGate(ctx, c)
}

func (s *contractService) ApproveByAdmin(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	gate, err := s.evaluateGate(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := approval.AdminApprove(c, gate, time.Now()); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	// Notify the tenant with a document-upload link. Delivery failures do
	// not roll back the approval.
	if c.Tenant.Email != "" && c.BookingID != nil {
		token, err := s.tokens.GenerateDocumentUploadToken(c.ID, *c.BookingID, c.Tenant.Email)
		if err == nil {
			link := fmt.Sprintf("%s/documents/upload?token=%s", s.portalURL, token)
			if err := s.emailSvc.SendDocumentUploadLink(ctx, c.Tenant.Email, c.Tenant.Name, link); err != nil {
				logger.Warn("Failed to send document upload link", "contract_id", c.ID, "error", err)
			}
		}
	}
	s.notify(ctx, c, "Contract approved by admin", fmt.Sprintf("Contract %d was approved by the administrator", c.ID))

	logger.Info("Contract admin-approved", "contract_id", c.ID)
	return c, nil
}

func (s *contractService) ApproveByTenant(ctx context.Context, id int32) (*domain.Contract, error) {
	return s.partyApprove(ctx, id, approval.TenantApprove, "Contract approved by tenant")
}

func (s *contractService) ApproveByLandlord(ctx context.Context, id int32) (*domain.Contract, error) {
	return s.partyApprove(ctx, id, approval.LandlordApprove, "Contract approved by landlord")
}

func (s *contractService) partyApprove(ctx context.Context, id int32, transition func(*domain.Contract, time.Time) error, title string) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(c, time.Now()); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, c, title, fmt.Sprintf("Contract %d is now %s", c.ID, c.Status))
	return c, nil
}

func (s *contractService) FinalApprove(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Documents or cheques may have been unapproved since admin approval;
	// the gate is re-checked rather than trusted from last time.
	gate, err := s.evaluateGate(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := approval.FinalApprove(c, gate, time.Now()); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	// Converting the booking to rented is the external effect of final
	// approval.
	if c.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *c.BookingID)
		if err == nil {
			booking.Status = domain.BookingStatusRented
			booking.ContractID = &c.ID
			if err := s.bookingRepo.Update(ctx, booking); err != nil {
				logger.Error("Failed to convert booking to rented", "booking_id", booking.ID, "error", err)
			}
		}
	}

	for _, p := range []domain.Party{c.Tenant, c.Landlord} {
		if p.Email != "" {
			_ = s.emailSvc.SendApprovalNotification(ctx, p.Email, p.Name, c.ID, c.Status)
		}
	}
	s.notify(ctx, c, "Contract fully approved", fmt.Sprintf("Contract %d is active", c.ID))

	logger.Info("Contract fully approved", "contract_id", c.ID)
	return c, nil
}

func (s *contractService) RevertToDraft(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := approval.RevertToDraft(c); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	logger.Info("Contract reverted to draft", "contract_id", c.ID)
	return c, nil
}

func (s *contractService) Cancel(ctx context.Context, id int32) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := approval.Cancel(c); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, c, "Contract cancelled", fmt.Sprintf("Contract %d was cancelled", c.ID))
	logger.Info("Contract cancelled", "contract_id", c.ID)
	return c, nil
}

// recomputeDerived refreshes every derived monetary field from the current
// terms. All functions involved are pure, so repeated invocation with
// unchanged terms is a no-op.
func (s *contractService) recomputeDerived(c *domain.Contract) {
	c.EndDate = utils.CalcEndDate(c.StartDate, c.DurationMonths)
	base := utils.CalcRentBase(c.TotalRent(), c.DiscountAmount)
	c.MunicipalityFees = utils.CalcMunicipalityFees(base)
	c.TotalVATAmount = utils.CalcTotalVAT(base, s.finance.VATRate)
	c.MonthlyVATAmount = utils.CalcMonthlyVAT(c.TotalVATAmount, c.DurationMonths)
	c.TotalOtherTaxAmount, c.MonthlyOtherTaxAmount = utils.CalcOtherTax(base, s.finance.OtherTaxEnabled, s.finance.OtherTaxRate, c.DurationMonths)
	c.GracePeriodDays = utils.CalcGracePeriodDays(c.ActualRentalDate, c.StartDate)
	c.GracePeriodAmount = utils.CalcGracePeriodAmount(c.MonthlyRent, c.GracePeriodDays)
	c.DepositCashAmount = c.DepositAmount
}

func (s *contractService) requiredChecks(ctx context.Context, c *domain.Contract, terms schedule.Terms) ([]domain.RequiredCheck, error) {
	base, err := s.catalogRepo.RequiredChecks(ctx, c.PropertyID, c.UnitType)
	if err != nil {
		return nil, err
	}
	return schedule.Generate(base, terms), nil
}

func (s *contractService) rebuildSchedule(ctx context.Context, c *domain.Contract, terms schedule.Terms, opts schedule.Options) ([]domain.CheckRecord, error) {
	required, err := s.requiredChecks(ctx, c, terms)
	if err != nil {
		return nil, err
	}
	stored, err := s.checkRepo.ListByContract(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return s.persistReconciled(ctx, c, required, stored, opts)
}

func (s *contractService) persistReconciled(ctx context.Context, c *domain.Contract, required []domain.RequiredCheck, stored []domain.CheckRecord, opts schedule.Options) ([]domain.CheckRecord, error) {
	records := schedule.Reconcile(c.ID, required, stored, c.Payee, opts)
	if err := s.checkRepo.ReplaceForContract(ctx, c.ID, records); err != nil {
		return nil, err
	}
	if err := s.mirrorToBooking(ctx, c, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *contractService) mirrorToBooking(ctx context.Context, c *domain.Contract, records []domain.CheckRecord) error {
	if c.BookingID == nil {
		return nil
	}
	return s.bookingRepo.SaveBookingChecks(ctx, *c.BookingID, records)
}

// evaluateGate runs the three completeness predicates against persisted
// state. Without a linked booking there is no document or cheque approval
// workflow, so those predicates hold vacuously.
func (s *contractService) evaluateGate(ctx context.Context, c *domain.Contract) (approval.GateResult, error) {
	gate := approval.GateResult{
		MissingTenantFields:   approval.MissingPartyFields(c.Tenant, s.finance.CitizenNationality),
		MissingLandlordFields: approval.MissingPartyFields(c.Landlord, s.finance.CitizenNationality),
		DocumentsApproved:     true,
		ChequesApproved:       true,
	}
	if c.BookingID == nil {
		return gate, nil
	}

	docsOK, err := s.bookingRepo.AllRequiredDocumentsApproved(ctx, *c.BookingID)
	if err != nil {
		return approval.GateResult{}, err
	}
	gate.DocumentsApproved = docsOK

	required, err := s.requiredChecks(ctx, c, schedule.TermsFromContract(c))
	if err != nil {
		return approval.GateResult{}, err
	}
	if len(required) > 0 {
		checksOK, err := s.bookingRepo.AllChecksApproved(ctx, *c.BookingID)
		if err != nil {
			return approval.GateResult{}, err
		}
		gate.ChequesApproved = checksOK
	}
	return gate, nil
}

func (s *contractService) notify(ctx context.Context, c *domain.Contract, title, message string) {
	note := &domain.Notification{
		ContractID: c.ID,
		Recipient:  c.Tenant.Email,
		Title:      title,
		Message:    message,
		Attributes: map[string]string{
			"status": string(c.Status),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to record notification", "contract_id", c.ID, "error", err)
	}
}
