package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propdesk-backend/internal/domain"
)

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) ListByStatus(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) ListDraftsOlderThan(ctx context.Context, days int) ([]domain.Contract, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockCheckRepo
type MockCheckRepo struct {
	mock.Mock
}

func (m *MockCheckRepo) ReplaceForContract(ctx context.Context, contractID int32, records []domain.CheckRecord) error {
	args := m.Called(ctx, contractID, records)
	return args.Error(0)
}
func (m *MockCheckRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.CheckRecord, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.CheckRecord), args.Error(1)
}
func (m *MockCheckRepo) UpdateImageURL(ctx context.Context, contractID, position int32, imageURL string) error {
	args := m.Called(ctx, contractID, position, imageURL)
	return args.Error(0)
}
func (m *MockCheckRepo) ListDueWithin(ctx context.Context, days int) ([]domain.CheckRecord, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]domain.CheckRecord), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) SaveBookingChecks(ctx context.Context, bookingID int32, records []domain.CheckRecord) error {
	args := m.Called(ctx, bookingID, records)
	return args.Error(0)
}
func (m *MockBookingRepo) AllChecksApproved(ctx context.Context, bookingID int32) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) AllRequiredDocumentsApproved(ctx context.Context, bookingID int32) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

// MockCatalogRepo
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) RequiredChecks(ctx context.Context, propertyID int32, unitType string) ([]domain.RequiredCheck, error) {
	args := m.Called(ctx, propertyID, unitType)
	return args.Get(0).([]domain.RequiredCheck), args.Error(1)
}
func (m *MockCatalogRepo) RequiredDocTypes(ctx context.Context, propertyID int32, unitType string, party domain.DocumentParty) ([]domain.DocRequirement, error) {
	args := m.Called(ctx, propertyID, unitType, party)
	return args.Get(0).([]domain.DocRequirement), args.Error(1)
}

// MockBankAccountRepo
type MockBankAccountRepo struct {
	mock.Mock
}

func (m *MockBankAccountRepo) GetByID(ctx context.Context, id int32) (*domain.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByContract(ctx context.Context, contractID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, contractID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactDirectory
type MockContactDirectory struct {
	mock.Mock
}

func (m *MockContactDirectory) FindByIdentifier(ctx context.Context, phoneOrEmail string) (*domain.Contact, error) {
	args := m.Called(ctx, phoneOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDocumentUploadLink(ctx context.Context, email, name, link string) error {
	args := m.Called(ctx, email, name, link)
	return args.Error(0)
}
func (m *MockEmailService) SendApprovalNotification(ctx context.Context, email, name string, contractID int32, status domain.ContractStatus) error {
	args := m.Called(ctx, email, name, contractID, status)
	return args.Error(0)
}
func (m *MockEmailService) SendChequeDueReminder(ctx context.Context, email, checkNumber, dueDate string, amount float64) error {
	args := m.Called(ctx, email, checkNumber, dueDate, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendStaleDraftNotice(ctx context.Context, email string, contractID int32, ageDays int) error {
	args := m.Called(ctx, email, contractID, ageDays)
	return args.Error(0)
}
