package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	PNRLength   = 10
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var pnrPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// GeneratePNR draws every symbol uniformly from [A-Z0-9]. Uniqueness is the ledger's job.
func GeneratePNR() (string, error) {
	alphabetSize := big.NewInt(int64(len(pnrAlphabet)))
	pnr := make([]byte, PNRLength)

	for idx := range pnr {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate pnr: %w", err)
		}

		pnr[idx] = pnrAlphabet[n.Int64()]
	}

	return string(pnr), nil
}

func ValidPNR(pnr string) bool {
	return pnrPattern.MatchString(pnr)
}
