// Package card содержит чистые функции для работы с номером банковской карты:
// проверку контрольной суммы Луна, форматирование и маскирование.
package card

import (
	"strings"
	"unicode"
)

// MinLength минимальное количество цифр в номере карты
const MinLength = 12

// Valid проверяет номер карты по алгоритму Луна.
// Пробельные символы игнорируются. Любой другой нецифровой символ
// или менее MinLength цифр дают false.
func Valid(number string) bool {
	digits := StripSpace(number)
	if len(digits) < MinLength {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// StripSpace удаляет из строки все пробельные символы
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Digits оставляет в строке только ASCII цифры
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
