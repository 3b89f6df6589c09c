package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/oyedot/vendorhub/internal/domain"
)

// VendorUseCase handles vendor account operations.
type VendorUseCase struct {
	vendorRepo VendorRepository
}

// NewVendorUseCase creates a new VendorUseCase.
func NewVendorUseCase(vendorRepo VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo}
}

// Authenticate checks a vendor's credentials. Unknown emails, wrong
// passwords and deactivated accounts all map to ErrInvalidCredentials
// so the response does not leak which one failed.
func (uc *VendorUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Vendor, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	vendor, err := uc.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !vendor.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return vendor, nil
}

// GetVendor retrieves a vendor by ID.
func (uc *VendorUseCase) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	return uc.vendorRepo.GetByID(ctx, id)
}
