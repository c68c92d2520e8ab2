// Package randompkg provides functionality for generating random test data of the transfer flow.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min+1)
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// Digits generates a random string of n digits.
func Digits(n int) string {
	return fromSet(digits, n)
}

// UserID generates a random user id.
func UserID() string {
	return String(6)
}

// MobileNumber generates a random mobile number.
func MobileNumber() string {
	return "09" + Digits(9)
}

// AccountNumber generates a random account number.
func AccountNumber() string {
	return Digits(12)
}

// OTP generates a random six digit one-time code.
func OTP() string {
	return Digits(6)
}

// Amount generates a random amount between min and max with two decimals.
func Amount(min, max int) decimal.Decimal {
	cents := IntBetween(min*100, max*100)
	return decimal.New(cents, -2)
}

// Recipient generates a random display name.
func Recipient() string {
	return fmt.Sprintf("%s %s", strings.ToUpper(String(1))+String(5), strings.ToUpper(String(1))+String(7))
}
