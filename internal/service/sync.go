package service

import (
	"context"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
)

type syncService struct {
	contractRepo repository.ContractRepository
	contactDir   repository.ContactDirectory
}

func NewSyncService(
	contractRepo repository.ContractRepository,
	contactDir repository.ContactDirectory,
) SyncService {
	return &syncService{
		contractRepo: contractRepo,
		contactDir:   contactDir,
	}
}

// RefreshPartyFromDirectory looks the party up in the contact directory by
// phone or email and overwrites the contract's stored party snapshot.
// ConflictError from the directory (duplicate phone, duplicate civil id) is
// returned untouched so callers can render the conflicting field.
func (s *syncService) RefreshPartyFromDirectory(ctx context.Context, contractID int32, party domain.DocumentParty, identifier string) (*domain.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	contact, err := s.contactDir.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	switch party {
	case domain.DocumentPartyLandlord:
		c.Landlord = contact.AsParty()
	default:
		c.Tenant = contact.AsParty()
	}

	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Party refreshed from directory", "contract_id", contractID, "party", party)
	return c, nil
}
