// Package form хранит состояние платежной формы и применяет к нему
// события ввода: фокус, изменение, потерю фокуса и отправку.
//
// Form не безопасна для конкурентного использования: состоянием владеет
// один обработчик событий.
package form

//go:generate moq -out submitter_mock.go . Submitter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/cardform/internal/card"
	"github.com/iudanet/cardform/internal/models"
	"github.com/iudanet/cardform/internal/validation"
)

// ErrNotSubmittable возвращается Submit, если форма невалидна или не изменена
var ErrNotSubmittable = errors.New("form cannot be submitted")

// Validator проверяет значения формы
type Validator interface {
	Validate(values models.FormValues) validation.Errors
}

// Submitter действие отправки формы
type Submitter interface {
	Submit(ctx context.Context, s models.Submission) error
}

// Form явное состояние платежной формы
type Form struct {
	validator Validator
	now       func() time.Time
	touched   map[models.Field]bool
	focused   models.Field
	initial   models.FormValues
	values    models.FormValues
}

// New создает форму с пустыми значениями по умолчанию
func New(v Validator) *Form {
	initial := models.FormValues{Currency: models.DefaultCurrency}
	return &Form{
		validator: v,
		now:       time.Now,
		touched:   make(map[models.Field]bool),
		initial:   initial,
		values:    initial,
	}
}

// Values возвращает копию текущих значений
func (f *Form) Values() models.FormValues {
	v := f.values
	if v.ExpiryDate != nil {
		t := *v.ExpiryDate
		v.ExpiryDate = &t
	}
	return v
}

// Focused возвращает поле в фокусе или пустую строку
func (f *Form) Focused() models.Field {
	return f.focused
}

// Focus переводит фокус на поле
func (f *Form) Focus(field models.Field) {
	f.focused = field
}

// Blur снимает фокус с поля и отмечает его как посещенное
func (f *Form) Blur(field models.Field) {
	if f.focused == field {
		f.focused = ""
	}
	f.touched[field] = true
}

// Touched сообщает, терял ли поле фокус хотя бы раз
func (f *Form) Touched(field models.Field) bool {
	return f.touched[field]
}

// Change применяет введенный текст к полю.
// Номер карты сохраняется только цифрами, неизвестная валюта и
// неразборчивая дата игнорируются.
func (f *Form) Change(field models.Field, raw string) {
	switch field {
	case models.FieldCardNumber:
		f.values.CardNumber = card.Digits(raw)
	case models.FieldCVV:
		f.values.CVV = raw
	case models.FieldAmount:
		f.values.Amount = strings.TrimSpace(raw)
	case models.FieldCurrency:
		if c, ok := models.ParseCurrency(raw); ok {
			f.values.Currency = c
		}
	case models.FieldExpiryDate:
		f.TypeExpiry(raw)
	}
}

// PickExpiry устанавливает дату, выбранную в календаре
func (f *Form) PickExpiry(t time.Time) {
	f.values.ExpiryDate = &t
}

// TypeExpiry разбирает дату, введенную вручную.
// Если текст не удалось разобрать, значение поля не меняется.
func (f *Form) TypeExpiry(raw string) {
	if t, ok := ParseExpiry(raw); ok {
		f.values.ExpiryDate = &t
	}
}

// Display возвращает отображаемое значение поля
func (f *Form) Display(field models.Field) string {
	switch field {
	case models.FieldCardNumber:
		return card.Render(f.values.CardNumber, f.focused == models.FieldCardNumber)
	case models.FieldCVV:
		return strings.Repeat("*", len(f.values.CVV))
	case models.FieldExpiryDate:
		if f.values.ExpiryDate == nil {
			return ""
		}
		return models.FormatExpiry(*f.values.ExpiryDate)
	case models.FieldAmount:
		return f.values.Amount
	case models.FieldCurrency:
		return f.values.Currency.String()
	}
	return ""
}

// Errors возвращает все текущие ошибки валидации
func (f *Form) Errors() validation.Errors {
	return f.validator.Validate(f.values)
}

// TouchedErrors возвращает ошибки только посещенных полей
func (f *Form) TouchedErrors() validation.Errors {
	errs := f.Errors()
	for field := range errs {
		if !f.touched[field] {
			delete(errs, field)
		}
	}
	return errs
}

// FieldError возвращает ошибку поля, если она есть
func (f *Form) FieldError(field models.Field) (string, bool) {
	msg, ok := f.Errors()[field]
	return msg, ok
}

// Valid сообщает, проходят ли все поля проверку
func (f *Form) Valid() bool {
	return len(f.Errors()) == 0
}

// Dirty сообщает, изменено ли хотя бы одно поле относительно начальных значений
func (f *Form) Dirty() bool {
	v, in := f.values, f.initial
	if v.CardNumber != in.CardNumber || v.CVV != in.CVV || v.Amount != in.Amount || v.Currency != in.Currency {
		return true
	}
	if (v.ExpiryDate == nil) != (in.ExpiryDate == nil) {
		return true
	}
	return v.ExpiryDate != nil && !v.ExpiryDate.Equal(*in.ExpiryDate)
}

// CanSubmit сообщает, доступна ли отправка
func (f *Form) CanSubmit() bool {
	return f.Dirty() && f.Valid()
}

// Submit передает значения формы submitter и сбрасывает состояние.
// При ошибке submitter состояние сохраняется.
func (f *Form) Submit(ctx context.Context, s Submitter) (models.Submission, error) {
	if !f.Dirty() {
		return models.Submission{}, fmt.Errorf("%w: no field has been changed", ErrNotSubmittable)
	}
	if errs := f.Errors(); len(errs) > 0 {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrNotSubmittable, errs)
	}

	amount, err := validation.ParseAmount(f.values.Amount)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrNotSubmittable, err)
	}

	sub := models.Submission{
		ID:          uuid.New().String(),
		CardNumber:  f.values.CardNumber,
		CVV:         f.values.CVV,
		ExpiryDate:  *f.values.ExpiryDate,
		Amount:      amount,
		Currency:    f.values.Currency,
		SubmittedAt: f.now(),
	}

	if err := s.Submit(ctx, sub); err != nil {
		return models.Submission{}, fmt.Errorf("failed to submit form: %w", err)
	}

	f.Reset()
	return sub, nil
}

// Reset возвращает форму к начальным значениям
func (f *Form) Reset() {
	f.values = f.initial
	f.focused = ""
	f.touched = make(map[models.Field]bool)
}
