// Package validation описывает правила проверки полей платежной формы.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/cardform/internal/card"
)

// CVVPattern допустимый формат CVV/CVC: ровно 3 или 4 цифры
var CVVPattern = regexp.MustCompile(`^\d{3,4}$`)

var (
	ErrRequired          = errors.New("value is required")
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidCVV        = errors.New("CVV must be 3 or 4 digits")
	ErrNotNumeric        = errors.New("value is not a number")
	ErrNotPositive       = errors.New("value must be positive")
)

// ValidateCardNumber проверяет номер карты: только цифры после удаления
// пробелов, не меньше card.MinLength цифр и корректная сумма Луна.
func ValidateCardNumber(number string) error {
	digits := card.StripSpace(number)
	if digits == "" {
		return ErrRequired
	}
	if len(digits) < card.MinLength {
		return fmt.Errorf("%w: must contain at least %d digits", ErrInvalidCardNumber, card.MinLength)
	}
	if card.Digits(digits) != digits {
		return fmt.Errorf("%w: only digits are allowed", ErrInvalidCardNumber)
	}
	if !card.Valid(digits) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidCardNumber)
	}
	return nil
}

// ValidateCVV проверяет CVV по шаблону CVVPattern
func ValidateCVV(cvv string) error {
	if cvv == "" {
		return ErrRequired
	}
	if !CVVPattern.MatchString(cvv) {
		return ErrInvalidCVV
	}
	return nil
}

// ParseAmount разбирает сумму пополнения и проверяет, что она строго больше нуля
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, ErrRequired
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, amount)
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrNotPositive
	}
	return d, nil
}

// ValidateAmount проверяет сумму пополнения
func ValidateAmount(amount string) error {
	_, err := ParseAmount(amount)
	return err
}
