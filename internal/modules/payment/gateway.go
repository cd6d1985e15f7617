package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/medsupply-ke/medsupply-backend/internal/apperror"
)

// Gateway is the provider-agnostic interface a payment adapter implements.
// The response is an acknowledgment only; settlement arrives asynchronously
// via the provider's callback.
type Gateway interface {
	// InitiateSTKPush asks the provider to prompt the phone for an amount.
	InitiateSTKPush(ctx context.Context, phone string, amount int, memo string) (*ProviderResponse, error)
}

// ── Daraja (M-Pesa) Adapter ───────────────────────────────────────────────────
// In production, replace the stub method with actual Daraja API calls.
// Daraja API docs: https://developer.safaricom.co.ke/

type darajaGateway struct {
	consumerKey    string
	consumerSecret string
	shortcode      string
	passkey        string
	baseURL        string
	env            string // sandbox | production
}

func NewDarajaGateway(consumerKey, consumerSecret, shortcode, passkey, baseURL, env string) Gateway {
	return &darajaGateway{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		shortcode:      shortcode,
		passkey:        passkey,
		baseURL:        baseURL,
		env:            env,
	}
}

func (g *darajaGateway) InitiateSTKPush(ctx context.Context, phone string, amount int, memo string) (*ProviderResponse, error) {
	if phone == "" {
		return nil, apperror.Validation("phone required")
	}
	if amount <= 0 {
		return nil, apperror.Validation("amount must be greater than 0")
	}

	// ── PRODUCTION INTEGRATION POINT ──────────────────────────────────────────
	// Replace this block with the actual Daraja STK push flow:
	//
	// 1. GET /oauth/v1/generate?grant_type=client_credentials
	//    Basic auth: consumerKey:consumerSecret — yields a bearer token.
	// 2. POST /mpesa/stkpush/v1/processrequest
	//    Body: { BusinessShortCode, Password: base64(shortcode+passkey+timestamp),
	//            Timestamp, TransactionType: "CustomerPayBillOnline", Amount,
	//            PartyA: phone, PartyB: shortcode, PhoneNumber: phone,
	//            CallBackURL, AccountReference, TransactionDesc: memo }
	// 3. Store CheckoutRequestID and wait for the asynchronous callback.
	// ──────────────────────────────────────────────────────────────────────────

	// Sandbox stub: simulate async acceptance.
	ts := time.Now().Format("20060102150405")
	return &ProviderResponse{
		MerchantRequestID:   fmt.Sprintf("MR-%s-%04d", ts, rand.Intn(10000)),
		CheckoutRequestID:   fmt.Sprintf("ws_CO_%s%04d", ts, rand.Intn(10000)),
		ResponseCode:        "0",
		ResponseDescription: "Success. Request accepted for processing",
		CustomerMessage:     fmt.Sprintf("An M-Pesa prompt has been sent to %s.", phone),
	}, nil
}
