package cli

import (
	"github.com/iudanet/cardform/internal/models"
	"github.com/iudanet/cardform/internal/validation"
)

// labels надписи интерактивной формы
type labels struct {
	Fields    map[models.Field]string
	Title     string
	Summary   string
	Confirm   string
	Cancelled string
	Submitted string
	Valid     string
	Invalid   string
}

var labelsByLocale = map[string]labels{
	validation.LocaleRU: {
		Title:   "Информация о карте",
		Summary: "Проверьте данные",
		Fields: map[models.Field]string{
			models.FieldCardNumber: "Номер карты",
			models.FieldCVV:        "CVV",
			models.FieldExpiryDate: "Дата истечения (ММ/YY)",
			models.FieldAmount:     "Сумма пополнения",
			models.FieldCurrency:   "Валюта",
		},
		Confirm:   "Отправить? [y/N]: ",
		Cancelled: "Отправка отменена.",
		Submitted: "✓ Форма отправлена",
		Valid:     "номер корректен",
		Invalid:   "номер некорректен",
	},
	validation.LocaleEN: {
		Title:   "Card details",
		Summary: "Check the details",
		Fields: map[models.Field]string{
			models.FieldCardNumber: "Card number",
			models.FieldCVV:        "CVV",
			models.FieldExpiryDate: "Expiry date (MM/YY)",
			models.FieldAmount:     "Top-up amount",
			models.FieldCurrency:   "Currency",
		},
		Confirm:   "Submit? [y/N]: ",
		Cancelled: "Submission cancelled.",
		Submitted: "✓ Form submitted",
		Valid:     "number is valid",
		Invalid:   "number is invalid",
	},
}

func labelsFor(locale string) labels {
	if l, ok := labelsByLocale[locale]; ok {
		return l
	}
	return labelsByLocale[validation.LocaleRU]
}
