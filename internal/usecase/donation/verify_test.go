package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fundflow/collection-service/internal/domain"
)

func TestVerifyPayment_PaidOrderReconciles(t *testing.T) {
	ctx := context.Background()
	collectionRepo := NewMockCollectionRepo()
	donationRepo := NewMockDonationRepo(collectionRepo)
	gateway := &StubGateway{Status: domain.ExternalPaid}
	uc := newTestUsecase(donationRepo, collectionRepo, gateway)

	seedCollection(collectionRepo, "c1", 0, 0)
	seedDonation(donationRepo, "order_1", "c1", 750, domain.StatusPending)

	out, err := uc.VerifyPayment(ctx, "order_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusSuccess {
		t.Errorf("status = %s, want success", out.Status)
	}
	if !out.Verified {
		t.Error("expected Verified = true")
	}
	if out.Amount != 750 || out.CollectionID != "c1" {
		t.Errorf("echoed amount/collection = %v/%s", out.Amount, out.CollectionID)
	}

	collection, _ := collectionRepo.GetCollectionByID(ctx, "c1")
	if collection.CurrentAmount != 750 || collection.DonorCount != 1 {
		t.Errorf("collection = amount %v, donors %v", collection.CurrentAmount, collection.DonorCount)
	}
}

func TestVerifyPayment_GatewayUnavailableKeepsStoredStatus(t *testing.T) {
	ctx := context.Background()
	collectionRepo := NewMockCollectionRepo()
	donationRepo := NewMockDonationRepo(collectionRepo)
	gateway := &StubGateway{StatusErr: domain.ErrGatewayUnavailable}
	uc := newTestUsecase(donationRepo, collectionRepo, gateway)

	seedCollection(collectionRepo, "c1", 0, 0)
	seedDonation(donationRepo, "order_1", "c1", 750, domain.StatusPending)

	out, err := uc.VerifyPayment(ctx, "order_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Verified {
		t.Error("expected Verified = false when the gateway is unreachable")
	}
	if out.Status != domain.StatusPending {
		t.Errorf("status = %s, want stored pending status", out.Status)
	}

	collection, _ := collectionRepo.GetCollectionByID(ctx, "c1")
	if collection.CurrentAmount != 0 {
		t.Errorf("collection mutated without an observation: amount=%v", collection.CurrentAmount)
	}
}

func TestVerifyPayment_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	collectionRepo := NewMockCollectionRepo()
	donationRepo := NewMockDonationRepo(collectionRepo)
	uc := newTestUsecase(donationRepo, collectionRepo, &StubGateway{})

	_, err := uc.VerifyPayment(ctx, "order_missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestVerifyPayment_ActiveOrderStaysPending(t *testing.T) {
	ctx := context.Background()
	collectionRepo := NewMockCollectionRepo()
	donationRepo := NewMockDonationRepo(collectionRepo)
	gateway := &StubGateway{Status: domain.ExternalActive}
	uc := newTestUsecase(donationRepo, collectionRepo, gateway)

	seedCollection(collectionRepo, "c1", 0, 0)
	seedDonation(donationRepo, "order_1", "c1", 100, domain.StatusPending)

	out, err := uc.VerifyPayment(ctx, "order_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusPending {
		t.Errorf("status = %s, want pending", out.Status)
	}
}
