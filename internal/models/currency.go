package models

import (
	"strconv"
	"strings"
)

// Currency код валюты пополнения
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RUB Currency = "RUB"
)

// Currencies фиксированный список валют в порядке отображения.
// Первая валюта используется по умолчанию.
var Currencies = []Currency{USD, EUR, RUB}

// DefaultCurrency валюта, выбранная в новой форме
const DefaultCurrency = USD

// Valid сообщает, входит ли валюта в список Currencies
func (c Currency) Valid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency принимает код валюты (без учета регистра)
// или ее номер в списке Currencies, начиная с 1.
func ParseCurrency(s string) (Currency, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i < 1 || i > len(Currencies) {
			return "", false
		}
		return Currencies[i-1], true
	}

	c := Currency(strings.ToUpper(s))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
