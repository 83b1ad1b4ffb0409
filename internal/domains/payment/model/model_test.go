package model_test

import (
	"railbook/internal/domains/payment/model"
	"railbook/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails_Validate(t *testing.T) {
	tests := []struct {
		name    string
		details model.Details
		wantErr bool
	}{
		{name: "upi", details: model.Details{Method: model.MethodUPI, UPIID: "asha@okbank"}},
		{name: "upi without handle", details: model.Details{Method: model.MethodUPI, UPIID: "asha"}, wantErr: true},
		{
			name:    "card with spaces",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111 1111 1111 1111", CardExpiry: "09/28", CardCVV: "123"},
		},
		{
			name:    "card too short",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111 1111 1111", CardExpiry: "09/28", CardCVV: "123"},
			wantErr: true,
		},
		{
			name:    "card with letters",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111 1111 1111 111a", CardExpiry: "09/28", CardCVV: "123"},
			wantErr: true,
		},
		{
			name:    "month thirteen",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111111111111111", CardExpiry: "13/28", CardCVV: "123"},
			wantErr: true,
		},
		{
			name:    "month zero",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111111111111111", CardExpiry: "00/28", CardCVV: "123"},
			wantErr: true,
		},
		{
			name:    "four digit cvv",
			details: model.Details{Method: model.MethodCard, CardNumber: "4111111111111111", CardExpiry: "12/28", CardCVV: "1234"},
			wantErr: true,
		},
		{name: "wallet", details: model.Details{Method: model.MethodWallet, Wallet: model.WalletGPay}},
		{name: "unknown wallet", details: model.Details{Method: model.MethodWallet, Wallet: "cash"}, wantErr: true},
		{name: "unknown method", details: model.Details{Method: "cheque"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.ReasonInvalidPaymentDetails))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestQuote(t *testing.T) {
	pricing := model.Pricing{GSTRate: 0.05, ReservationCharge: 40}

	tests := []struct {
		name       string
		fare       int64
		passengers int
		want       int64
	}{
		{name: "two passengers in 3A", fare: 1500, passengers: 2, want: 3230},
		{name: "one passenger in SL", fare: 500, passengers: 1, want: 565},
		{name: "six passengers in 2S", fare: 250, passengers: 6, want: 1815},
		{name: "rounds half up", fare: 10, passengers: 1, want: 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Quote(tt.fare, tt.passengers, pricing))
		})
	}
}
