package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/iudanet/cardform/internal/models"
)

// ErrUnsupportedLocale возвращается New для локали без текстов ошибок
var ErrUnsupportedLocale = errors.New("unsupported locale")

// FieldForm ключ Errors для ошибок, не относящихся к отдельному полю
const FieldForm models.Field = "form"

// Errors ошибки валидации по полям формы. Пустая карта означает валидную форму.
type Errors map[models.Field]string

// Error перечисляет ошибки в порядке полей формы
func (e Errors) Error() string {
	fields := make([]models.Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fieldOrder(fields[i]) < fieldOrder(fields[j])
	})

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

func fieldOrder(f models.Field) int {
	for i, known := range models.Fields {
		if f == known {
			return i
		}
	}
	return len(models.Fields)
}

// Validator проверяет FormValues по правилам из тегов validate
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New создает Validator с текстами ошибок для locale
func New(locale string) (*Validator, error) {
	if !SupportedLocale(locale) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	uni := ut.New(en.New(), en.New(), ru.New())
	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"cardnumber": isCardNumber,
		"cvv":        isCVV,
		"expiry":     isExpiry,
		"decimal":    isDecimal,
		"positive":   isPositive,
		"currency":   isCurrency,
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register rule %s: %w", tag, err)
		}
	}

	for _, tag := range []string{"required", "cardnumber", "cvv", "expiry", "decimal", "positive", "currency"} {
		if err := validate.RegisterTranslation(tag, trans, registerMessages(locale, tag), translate); err != nil {
			return nil, fmt.Errorf("failed to register translation %s: %w", tag, err)
		}
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Validate проверяет все поля формы и возвращает ошибки по полям
func (v *Validator) Validate(values models.FormValues) Errors {
	errs := Errors{}

	err := v.validate.Struct(values)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError возможна только при передаче не-структуры
		errs[FieldForm] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		f := models.Field(fe.Field())
		if _, exists := errs[f]; exists {
			continue
		}
		errs[f] = fe.Translate(v.trans)
	}
	return errs
}

func registerMessages(locale, tag string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		for field, byTag := range messages[locale] {
			msg, ok := byTag[tag]
			if !ok {
				continue
			}
			if err := trans.Add(messageKey(field, tag), msg, true); err != nil {
				return err
			}
		}
		return nil
	}
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(messageKey(models.Field(fe.Field()), fe.Tag()))
	if err != nil {
		return fe.Error()
	}
	return msg
}

func isCardNumber(fl validator.FieldLevel) bool {
	return ValidateCardNumber(fl.Field().String()) == nil
}

func isCVV(fl validator.FieldLevel) bool {
	return CVVPattern.MatchString(fl.Field().String())
}

func isExpiry(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && !t.IsZero()
}

func isDecimal(fl validator.FieldLevel) bool {
	err := ValidateAmount(fl.Field().String())
	return err == nil || errors.Is(err, ErrNotPositive)
}

func isPositive(fl validator.FieldLevel) bool {
	return ValidateAmount(fl.Field().String()) == nil
}

func isCurrency(fl validator.FieldLevel) bool {
	return models.Currency(fl.Field().String()).Valid()
}
