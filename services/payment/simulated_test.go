package payment

import (
	"context"
	"errors"
	"testing"

	"fittribe/models"
)

func validPaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		UserID:      "client-1",
		Amount:      50,
		Currency:    "USD",
		Idempotency: "draft-1",
		Description: "Training session",
	}
}

func TestSimulatedGatewayApprovesValidRequest(t *testing.T) {
	gateway := &SimulatedGateway{}

	inv, err := gateway.ProcessPayment(context.Background(), validPaymentRequest())
	if err != nil {
		t.Fatalf("ProcessPayment failed: %v", err)
	}
	if inv.Status != "paid" {
		t.Fatalf("expected paid invoice, got %q", inv.Status)
	}
	if inv.Amount != 50 || inv.Currency != "USD" || inv.UserID != "client-1" {
		t.Fatalf("invoice does not reflect the request: %+v", inv)
	}
	if inv.InvoiceID == "" || inv.PaymentID == "" {
		t.Fatalf("expected generated invoice and payment identifiers")
	}
}

func TestSimulatedGatewayRejectsInvalidRequests(t *testing.T) {
	gateway := &SimulatedGateway{}
	ctx := context.Background()

	bad := validPaymentRequest()
	bad.Amount = 0
	if _, err := gateway.ProcessPayment(ctx, bad); err == nil {
		t.Fatalf("expected error for zero amount")
	}

	bad = validPaymentRequest()
	bad.UserID = ""
	if _, err := gateway.ProcessPayment(ctx, bad); err == nil {
		t.Fatalf("expected error for missing user")
	}

	bad = validPaymentRequest()
	bad.Currency = ""
	if _, err := gateway.ProcessPayment(ctx, bad); err == nil {
		t.Fatalf("expected error for missing currency")
	}
}

func TestSimulatedGatewayFailWith(t *testing.T) {
	declined := errors.New("card declined")
	gateway := &SimulatedGateway{FailWith: declined}

	_, err := gateway.ProcessPayment(context.Background(), validPaymentRequest())
	if !errors.Is(err, declined) {
		t.Fatalf("expected configured failure, got %v", err)
	}
}

func TestSimulatedGatewayHonoursContextCancellation(t *testing.T) {
	gateway := &SimulatedGateway{Delay: gatewayTimeout}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.ProcessPayment(ctx, validPaymentRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
