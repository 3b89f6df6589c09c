package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
	"github.com/oyedot/vendorhub/internal/usecase/mocks"
)

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("prod-1")

	uc := usecase.NewCatalogUseCase(productRepo, idGen)

	product, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		VendorID: "vendor-1",
		Name:     "Ceramic Mug",
		SKU:      "MUG-001",
		Currency: "usd",
		Price:    decimal.NewFromInt(15),
		Stock:    40,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.ID != "prod-1" {
		t.Errorf("expected prod-1, got %s", product.ID)
	}
	if product.Currency != "USD" {
		t.Errorf("expected normalized currency USD, got %s", product.Currency)
	}
	if product.Status != domain.ProductActive {
		t.Errorf("expected active status, got %s", product.Status)
	}
	if !product.MRP.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected MRP to default to price, got %s", product.MRP)
	}
}

func TestCatalogUseCase_GetProduct_ForeignVendor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&domain.Product{
		ID:       "prod-1",
		VendorID: "someone-else",
	}, nil)

	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewCatalogUseCase(productRepo, idGen)

	_, err := uc.GetProduct(context.Background(), "vendor-1", "prod-1")

	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogUseCase_UpdateProduct_Archived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&domain.Product{
		ID:       "prod-1",
		VendorID: "vendor-1",
		Status:   domain.ProductArchived,
	}, nil)

	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewCatalogUseCase(productRepo, idGen)

	_, err := uc.UpdateProduct(context.Background(), usecase.UpdateProductInput{
		VendorID:  "vendor-1",
		ProductID: "prod-1",
		Name:      "New name",
		Price:     decimal.NewFromInt(10),
	})

	if !errors.Is(err, domain.ErrProductArchived) {
		t.Fatalf("expected ErrProductArchived, got %v", err)
	}
}

func TestCatalogUseCase_ArchiveProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&domain.Product{
		ID:       "prod-1",
		VendorID: "vendor-1",
		Status:   domain.ProductActive,
	}, nil)

	var updated *domain.Product
	productRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, product *domain.Product) error {
			updated = product
			return nil
		})

	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewCatalogUseCase(productRepo, idGen)

	product, err := uc.ArchiveProduct(context.Background(), "vendor-1", "prod-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Status != domain.ProductArchived {
		t.Errorf("expected archived status, got %s", product.Status)
	}
	if updated == nil || updated.Status != domain.ProductArchived {
		t.Error("expected the archived product to be persisted")
	}
}

func TestCatalogUseCase_ListProducts_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().List(gomock.Any(), "vendor-1", 20, 0).Return([]*domain.Product{}, nil)

	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewCatalogUseCase(productRepo, idGen)

	if _, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		VendorID: "vendor-1",
		Limit:    0,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
