package validation

import "github.com/iudanet/cardform/internal/models"

const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// messages тексты ошибок по локали, полю и тегу правила
var messages = map[string]map[models.Field]map[string]string{
	LocaleRU: {
		models.FieldCardNumber: {
			"required":   "Введите номер карты",
			"cardnumber": "Неверный номер карты",
		},
		models.FieldCVV: {
			"required": "Введите CVV",
			"cvv":      "CVV должно состоять из 3 или 4 цифр",
		},
		models.FieldExpiryDate: {
			"required": "Выберите дату истечения",
			"expiry":   "Неверный формат даты",
		},
		models.FieldAmount: {
			"required": "Введите сумму пополнения",
			"decimal":  "Введите числовое значение",
			"positive": "Сумма должна быть положительной",
		},
		models.FieldCurrency: {
			"required": "Выберите валюту",
			"currency": "Выберите валюту",
		},
	},
	LocaleEN: {
		models.FieldCardNumber: {
			"required":   "Enter the card number",
			"cardnumber": "Invalid card number",
		},
		models.FieldCVV: {
			"required": "Enter the CVV",
			"cvv":      "CVV must consist of 3 or 4 digits",
		},
		models.FieldExpiryDate: {
			"required": "Choose the expiry date",
			"expiry":   "Invalid date format",
		},
		models.FieldAmount: {
			"required": "Enter the top-up amount",
			"decimal":  "Enter a numeric value",
			"positive": "Amount must be positive",
		},
		models.FieldCurrency: {
			"required": "Choose a currency",
			"currency": "Choose a currency",
		},
	},
}

// SupportedLocale сообщает, есть ли тексты ошибок для локали
func SupportedLocale(locale string) bool {
	_, ok := messages[locale]
	return ok
}

func messageKey(field models.Field, tag string) string {
	return field.String() + "." + tag
}
