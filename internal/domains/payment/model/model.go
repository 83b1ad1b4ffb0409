package model

import (
	"math"
	"railbook/shared/failure"
	"regexp"
	"strings"
)

type Method string

const (
	MethodUPI    Method = "upi"
	MethodCard   Method = "card"
	MethodWallet Method = "wallet"
)

type Wallet string

const (
	WalletPaytm   Wallet = "paytm"
	WalletPhonePe Wallet = "phonepe"
	WalletGPay    Wallet = "gpay"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3}$`)
)

// Details is what the payer typed in. Only the fields of the chosen method are checked.
type Details struct {
	Method     Method `json:"method"`
	UPIID      string `json:"upi_id,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	CardExpiry string `json:"card_expiry,omitempty"`
	CardCVV    string `json:"card_cvv,omitempty"`
	CardHolder string `json:"card_holder,omitempty"`
	Wallet     Wallet `json:"wallet,omitempty"`
}

func (d Details) Validate() error {
	switch d.Method {
	case MethodUPI:
		if !strings.Contains(d.UPIID, "@") {
			return failure.InvalidPaymentDetails("upi_id must look like name@bank")
		}
	case MethodCard:
		if !cardNumberPattern.MatchString(strings.ReplaceAll(d.CardNumber, " ", "")) {
			return failure.InvalidPaymentDetails("card_number must have 16 digits")
		}

		if !cardExpiryPattern.MatchString(d.CardExpiry) {
			return failure.InvalidPaymentDetails("card_expiry must be MM/YY")
		}

		if !cardCVVPattern.MatchString(d.CardCVV) {
			return failure.InvalidPaymentDetails("card_cvv must have 3 digits")
		}
	case MethodWallet:
		switch d.Wallet {
		case WalletPaytm, WalletPhonePe, WalletGPay:
		default:
			return failure.InvalidPaymentDetails("wallet must be one of paytm, phonepe, gpay")
		}
	default:
		return failure.InvalidPaymentDetails("method must be one of upi, card, wallet")
	}

	return nil
}

// Pricing holds the surcharges applied on top of the class fare.
type Pricing struct {
	GSTRate           float64
	ReservationCharge int64
}

// Quote is round(fare × n × (1 + gst) + charge × n).
func Quote(classFare int64, passengers int, pricing Pricing) int64 {
	n := float64(passengers)
	total := float64(classFare)*n*(1+pricing.GSTRate) + float64(pricing.ReservationCharge)*n

	return int64(math.Round(total))
}
