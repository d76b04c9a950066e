package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propdesk-backend/internal/config"
	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/security"
)

type serviceMocks struct {
	contractRepo *MockContractRepo
	checkRepo    *MockCheckRepo
	bookingRepo  *MockBookingRepo
	catalogRepo  *MockCatalogRepo
	bankRepo     *MockBankAccountRepo
	noteRepo     *MockNotificationRepo
	contactDir   *MockContactDirectory
	emailSvc     *MockEmailService
}

func newTestService(finance config.FinanceConfig) (ContractService, *serviceMocks) {
	m := &serviceMocks{
		contractRepo: new(MockContractRepo),
		checkRepo:    new(MockCheckRepo),
		bookingRepo:  new(MockBookingRepo),
		catalogRepo:  new(MockCatalogRepo),
		bankRepo:     new(MockBankAccountRepo),
		noteRepo:     new(MockNotificationRepo),
		contactDir:   new(MockContactDirectory),
		emailSvc:     new(MockEmailService),
	}
	if finance.CitizenNationality == "" {
		finance.CitizenNationality = "Kuwait"
	}
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef")
	svc := NewContractService(
		m.contractRepo, m.checkRepo, m.bookingRepo, m.catalogRepo,
		m.bankRepo, m.noteRepo, m.contactDir, m.emailSvc, tokens,
		finance, "https://portal.example.com",
	)
	return svc, m
}

func completeParty(name string) domain.Party {
	return domain.Party{
		Name:        name,
		Nationality: "Kuwait",
		Gender:      "female",
		PhoneNumber: "99000001",
		Email:       name + "@example.com",
		NationalID:  "288010112345",
	}
}

func draftContract() *domain.Contract {
	return &domain.Contract{
		ID:                   7,
		PropertyID:           3,
		UnitType:             "apartment",
		Status:               domain.ContractStatusDraft,
		Tenant:               completeParty("tenant"),
		Landlord:             completeParty("landlord"),
		MonthlyRent:          300,
		DurationMonths:       12,
		StartDate:            "2024-01-01",
		RentDueDay:           1,
		RentPaymentMethod:    domain.PaymentMethodCash,
		RentPaymentFrequency: domain.PaymentFrequencyMonthly,
	}
}

func TestUpdateTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes derived fields and rebuilds schedule", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return([]domain.CheckRecord{}, nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		updated, err := svc.UpdateTerms(ctx, 7, TermsUpdate{
			MonthlyRent:          500,
			DurationMonths:       12,
			StartDate:            "2024-03-01",
			RentDueDay:           5,
			RentPaymentMethod:    domain.PaymentMethodCash,
			RentPaymentFrequency: domain.PaymentFrequencyMonthly,
		}, false)
		require.NoError(t, err)

		assert.Equal(t, "2025-02-28", updated.EndDate)
		assert.Equal(t, 180.0, updated.MunicipalityFees) // 6000 * 0.03
		assert.Equal(t, 0.0, updated.TotalVATAmount)
		m.contractRepo.AssertCalled(t, "Update", ctx, mock.Anything)
		m.checkRepo.AssertCalled(t, "ReplaceForContract", ctx, int32(7), mock.Anything)
	})

	t.Run("rejects edits outside draft without edit mode", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Status = domain.ContractStatusAdminApproved

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		_, err := svc.UpdateTerms(ctx, 7, TermsUpdate{MonthlyRent: 100, DurationMonths: 12}, false)
		assert.ErrorIs(t, err, domain.ErrContractLocked)
		m.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("edit mode unlocks admin-approved contracts", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Status = domain.ContractStatusAdminApproved

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return([]domain.CheckRecord{}, nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		_, err := svc.UpdateTerms(ctx, 7, TermsUpdate{
			MonthlyRent:          300,
			DurationMonths:       12,
			StartDate:            "2024-01-01",
			RentPaymentMethod:    domain.PaymentMethodCash,
			RentPaymentFrequency: domain.PaymentFrequencyMonthly,
		}, true)
		assert.NoError(t, err)
	})

	t.Run("prefills payee from selected bank account", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		accountID := int32(11)

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.bankRepo.On("GetByID", ctx, accountID).Return(&domain.BankAccount{
			ID:            accountID,
			BankName:      "Gulf Bank",
			BankBranch:    "Salmiya",
			AccountNumber: "123456789",
			AccountName:   "PropDesk Real Estate",
		}, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return([]domain.CheckRecord{}, nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		updated, err := svc.UpdateTerms(ctx, 7, TermsUpdate{
			MonthlyRent:          300,
			DurationMonths:       12,
			StartDate:            "2024-01-01",
			RentPaymentMethod:    domain.PaymentMethodCheck,
			RentPaymentFrequency: domain.PaymentFrequencyMonthly,
			BankAccountID:        &accountID,
		}, false)
		require.NoError(t, err)
		assert.Equal(t, "Gulf Bank", updated.Payee.BankName)
		assert.Equal(t, "123456789", updated.Payee.AccountNumber)
	})
}

func TestApproveByAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a complete draft and emails the upload link", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		bookingID := int32(21)
		c.BookingID = &bookingID

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.bookingRepo.On("AllRequiredDocumentsApproved", ctx, bookingID).Return(true, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.emailSvc.On("SendDocumentUploadLink", ctx, "tenant@example.com", "tenant", mock.Anything).Return(nil)
		m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		updated, err := svc.ApproveByAdmin(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusAdminApproved, updated.Status)
		require.NotNil(t, updated.AdminApprovedAt)
		assert.WithinDuration(t, time.Now(), *updated.AdminApprovedAt, time.Minute)
		m.emailSvc.AssertCalled(t, "SendDocumentUploadLink", ctx, "tenant@example.com", "tenant", mock.Anything)
	})

	t.Run("incomplete party blocks approval without state change", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Tenant.NationalID = "" // citizen without national id

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		_, err := svc.ApproveByAdmin(ctx, 7)
		var gateErr *domain.GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, domain.ContractStatusDraft, c.Status)
		m.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unapproved cheques block approval when instruments exist", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.RentPaymentMethod = domain.PaymentMethodCheck
		bookingID := int32(21)
		c.BookingID = &bookingID

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.bookingRepo.On("AllRequiredDocumentsApproved", ctx, bookingID).Return(true, nil)
		m.bookingRepo.On("AllChecksApproved", ctx, bookingID).Return(false, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)

		_, err := svc.ApproveByAdmin(ctx, 7)
		var gateErr *domain.GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Contains(t, gateErr.Reasons, domain.GateReasonChequesUnapproved)
	})

	t.Run("email failure does not roll back the approval", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		bookingID := int32(21)
		c.BookingID = &bookingID

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.bookingRepo.On("AllRequiredDocumentsApproved", ctx, bookingID).Return(true, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.emailSvc.On("SendDocumentUploadLink", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
		m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		updated, err := svc.ApproveByAdmin(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusAdminApproved, updated.Status)
	})
}

func TestFinalApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("converts the linked booking to rented", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		bookingID := int32(21)
		c.BookingID = &bookingID
		c.Status = domain.ContractStatusTenantApproved
		now := time.Now()
		c.AdminApprovedAt = &now
		c.TenantApprovedAt = &now
		c.LandlordApprovedAt = &now

		booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusBooked}

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.bookingRepo.On("AllRequiredDocumentsApproved", ctx, bookingID).Return(true, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)
		m.bookingRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.emailSvc.On("SendApprovalNotification", ctx, mock.Anything, mock.Anything, int32(7), domain.ContractStatusApproved).Return(nil)
		m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		updated, err := svc.FinalApprove(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusApproved, updated.Status)
		assert.Equal(t, domain.BookingStatusRented, booking.Status)
		require.NotNil(t, booking.ContractID)
		assert.Equal(t, int32(7), *booking.ContractID)
	})

	t.Run("missing party approval blocks finalization", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Status = domain.ContractStatusTenantApproved
		now := time.Now()
		c.TenantApprovedAt = &now
		// landlord never approved

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		_, err := svc.FinalApprove(ctx, 7)
		var transitionErr *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		m.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCompleteness(t *testing.T) {
	ctx := context.Background()

	t.Run("no linked booking leaves document and cheque gates satisfied", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Tenant.NationalID = ""

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		gate, err := svc.Completeness(ctx, 7)
		require.NoError(t, err)
		assert.True(t, gate.DocumentsApproved)
		assert.True(t, gate.ChequesApproved)
		assert.Contains(t, gate.MissingTenantFields, "national_id")
	})

	t.Run("foreigner party requires passport fields", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Tenant.Nationality = "India"
		c.Tenant.NationalID = ""

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		gate, err := svc.Completeness(ctx, 7)
		require.NoError(t, err)
		assert.Contains(t, gate.MissingTenantFields, "passport_number")
		assert.Contains(t, gate.MissingTenantFields, "passport_expiry")
	})
}

func TestUpdateCheckRecord(t *testing.T) {
	ctx := context.Background()

	storedRecords := func() []domain.CheckRecord {
		return []domain.CheckRecord{
			{ID: 1, ContractID: 7, Position: 0, SlotKey: "RENT_CHEQUE#1", TypeID: domain.CheckTypeRentCheque, Amount: 300, Date: "2024-01-01"},
			{ID: 2, ContractID: 7, Position: 1, SlotKey: "RENT_CHEQUE#2", TypeID: domain.CheckTypeRentCheque, Amount: 300, Date: "2024-02-01"},
			{ID: 3, ContractID: 7, Position: 2, SlotKey: "RENT_CHEQUE#3", TypeID: domain.CheckTypeRentCheque, Amount: 300, Date: "2024-03-01"},
		}
	}

	t.Run("first cheque number seeds a sequential fill", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(storedRecords(), nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		num := "100"
		records, err := svc.UpdateCheckRecord(ctx, 7, 0, CheckUpdate{CheckNumber: &num}, false)
		require.NoError(t, err)
		assert.Equal(t, "100", records[0].CheckNumber)
		assert.Equal(t, "101", records[1].CheckNumber)
		assert.Equal(t, "102", records[2].CheckNumber)
	})

	t.Run("editing a later cheque number fills nothing", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(storedRecords(), nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		num := "555"
		records, err := svc.UpdateCheckRecord(ctx, 7, 1, CheckUpdate{CheckNumber: &num}, false)
		require.NoError(t, err)
		assert.Equal(t, "", records[0].CheckNumber)
		assert.Equal(t, "555", records[1].CheckNumber)
		assert.Equal(t, "", records[2].CheckNumber)
	})

	t.Run("amount edits are rounded to three decimals", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(storedRecords(), nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		amount := 123.45678
		records, err := svc.UpdateCheckRecord(ctx, 7, 1, CheckUpdate{Amount: &amount}, false)
		require.NoError(t, err)
		assert.Equal(t, 123.457, records[1].Amount)
	})

	t.Run("position out of range", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(storedRecords(), nil)

		num := "100"
		_, err := svc.UpdateCheckRecord(ctx, 7, 9, CheckUpdate{CheckNumber: &num}, false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("locked contract rejects cheque edits", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Status = domain.ContractStatusApproved

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		num := "100"
		_, err := svc.UpdateCheckRecord(ctx, 7, 0, CheckUpdate{CheckNumber: &num}, false)
		assert.ErrorIs(t, err, domain.ErrContractLocked)
	})
}

func TestCreateFromBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the draft from booking and directory", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		booking := &domain.Booking{
			ID:          21,
			PropertyID:  3,
			UnitType:    "apartment",
			TenantName:  "Fatima",
			TenantPhone: "99887766",
			TenantEmail: "fatima@example.com",
			Status:      domain.BookingStatusBooked,
		}

		m.bookingRepo.On("GetByID", ctx, int32(21)).Return(booking, nil)
		m.contactDir.On("FindByIdentifier", ctx, "99887766").Return(&domain.Contact{
			Name:        "Fatima Al-Sabah",
			PhoneNumber: "99887766",
			Email:       "fatima@example.com",
			Nationality: "Kuwait",
			NationalID:  "290010154321",
		}, nil)
		m.contractRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Contract).ID = 42
		}).Return(nil)
		m.bookingRepo.On("Update", ctx, mock.Anything).Return(nil)

		c, err := svc.CreateFromBooking(ctx, 21)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusDraft, c.Status)
		assert.Equal(t, "Fatima Al-Sabah", c.Tenant.Name)
		assert.Equal(t, "290010154321", c.Tenant.NationalID)
		require.NotNil(t, booking.ContractID)
		assert.Equal(t, int32(42), *booking.ContractID)
	})

	t.Run("directory conflict surfaces unchanged", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		booking := &domain.Booking{ID: 21, TenantPhone: "99887766"}

		m.bookingRepo.On("GetByID", ctx, int32(21)).Return(booking, nil)
		m.contactDir.On("FindByIdentifier", ctx, "99887766").Return(nil, &domain.ConflictError{
			Field: domain.ConflictPhone, Value: "99887766",
		})

		_, err := svc.CreateFromBooking(ctx, 21)
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, domain.ConflictPhone, conflict.Field)
		m.contractRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("directory miss keeps the booking snapshot", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		booking := &domain.Booking{
			ID:          21,
			TenantName:  "Fatima",
			TenantPhone: "99887766",
			TenantEmail: "fatima@example.com",
		}

		m.bookingRepo.On("GetByID", ctx, int32(21)).Return(booking, nil)
		m.contactDir.On("FindByIdentifier", ctx, "99887766").Return(nil, domain.ErrNotFound)
		m.contractRepo.On("Create", ctx, mock.Anything).Return(nil)
		m.bookingRepo.On("Update", ctx, mock.Anything).Return(nil)

		c, err := svc.CreateFromBooking(ctx, 21)
		require.NoError(t, err)
		assert.Equal(t, "Fatima", c.Tenant.Name)
	})
}

func TestGetContract(t *testing.T) {
	ctx := context.Background()

	t.Run("stale stored schedule is realigned preserving user entries", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.RentPaymentMethod = domain.PaymentMethodCheck
		c.DurationMonths = 2

		stale := []domain.CheckRecord{
			{ID: 1, ContractID: 7, Position: 0, SlotKey: "RENT_CHEQUE#1", TypeID: domain.CheckTypeRentCheque, CheckNumber: "100", Amount: 300, Date: "2024-01-01"},
		}

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(stale, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)
		m.checkRepo.On("ReplaceForContract", ctx, int32(7), mock.Anything).Return(nil)

		_, records, err := svc.GetContract(ctx, 7)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "100", records[0].CheckNumber)
		m.checkRepo.AssertCalled(t, "ReplaceForContract", ctx, int32(7), mock.Anything)
	})

	t.Run("aligned schedule is returned untouched", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.RentPaymentMethod = domain.PaymentMethodCheck
		c.DurationMonths = 2

		stored := []domain.CheckRecord{
			{ID: 1, Position: 0, SlotKey: "RENT_CHEQUE#1", TypeID: domain.CheckTypeRentCheque, Amount: 300, Date: "2024-01-01"},
			{ID: 2, Position: 1, SlotKey: "RENT_CHEQUE#2", TypeID: domain.CheckTypeRentCheque, Amount: 300, Date: "2024-02-01"},
		}

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.checkRepo.On("ListByContract", ctx, int32(7)).Return(stored, nil)
		m.catalogRepo.On("RequiredChecks", ctx, int32(3), "apartment").Return([]domain.RequiredCheck{}, nil)

		_, records, err := svc.GetContract(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, records, 2)
		m.checkRepo.AssertNotCalled(t, "ReplaceForContract", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancellable from intermediate approval states", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()
		c.Status = domain.ContractStatusAdminApproved

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)
		m.contractRepo.On("Update", ctx, mock.Anything).Return(nil)
		m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		updated, err := svc.Cancel(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCancelled, updated.Status)
	})

	t.Run("draft cannot be cancelled", func(t *testing.T) {
		svc, m := newTestService(config.FinanceConfig{})
		c := draftContract()

		m.contractRepo.On("GetByID", ctx, int32(7)).Return(c, nil)

		_, err := svc.Cancel(ctx, 7)
		var transitionErr *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}
