package models

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/cardform/internal/card"
)

// ExpiryLayout формат срока действия карты MM/YY
const ExpiryLayout = "01/06"

// FormValues представляет значения полей платежной формы.
// CardNumber всегда хранит только цифры, без форматирования и маски.
type FormValues struct {
	ExpiryDate *time.Time `json:"expiryDate" validate:"required,expiry"`     // ExpiryDate срок действия, nil пока не выбран
	CardNumber string     `json:"cardNumber" validate:"required,cardnumber"` // CardNumber номер карты (только цифры)
	CVV        string     `json:"cvv" validate:"required,cvv"`               // CVV CVV/CVC код (3-4 цифры)
	Amount     string     `json:"amount" validate:"required,decimal,positive"`
	Currency   Currency   `json:"currency" validate:"required,currency"`
}

// Submission итоговая запись, которая передается действию отправки формы
type Submission struct {
	SubmittedAt time.Time       `json:"submittedAt"`
	ExpiryDate  time.Time       `json:"expiryDate"`
	Amount      decimal.Decimal `json:"amount"`
	ID          string          `json:"id"`
	CardNumber  string          `json:"cardNumber"`
	CVV         string          `json:"cvv"`
	Currency    Currency        `json:"currency"`
}

// LogValue реализует slog.LogValuer.
// Номер карты выводится в маскированном виде, CVV не выводится.
func (s Submission) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.ID),
		slog.String("card_number", card.Mask(s.CardNumber)),
		slog.String("cvv", "***"),
		slog.String("expiry_date", FormatExpiry(s.ExpiryDate)),
		slog.String("amount", s.Amount.String()),
		slog.String("currency", s.Currency.String()),
		slog.Time("submitted_at", s.SubmittedAt),
	)
}

// FormatExpiry возвращает срок действия в формате MM/YY
func FormatExpiry(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ExpiryLayout)
}
