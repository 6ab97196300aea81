package card

import "strings"

const (
	// MaskChar символ, которым закрываются скрытые цифры
	MaskChar = '*'

	groupSize  = 4
	keepPrefix = 2
	keepSuffix = 4
)

// Format группирует цифры номера блоками по 4, разделяя их одним пробелом.
// Все нецифровые символы отбрасываются.
func Format(value string) string {
	return group(Digits(value))
}

// Mask скрывает все цифры номера, кроме первых двух и последних четырех,
// и группирует результат так же, как Format.
// Если цифр меньше шести, возвращает value без изменений.
func Mask(value string) string {
	digits := Digits(value)
	if len(digits) < keepPrefix+keepSuffix {
		return value
	}

	middle := strings.Repeat(string(MaskChar), len(digits)-keepPrefix-keepSuffix)
	return group(digits[:keepPrefix] + middle + digits[len(digits)-keepSuffix:])
}

// Render возвращает отображаемое значение поля номера карты.
// digits всегда хранится в неформатированном виде; результат Render
// нельзя записывать обратно в состояние формы.
func Render(digits string, focused bool) string {
	if focused {
		return Format(digits)
	}
	if digits == "" {
		return ""
	}
	return Mask(digits)
}

func group(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/groupSize)
	for i, r := range s {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
