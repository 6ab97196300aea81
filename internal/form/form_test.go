package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardform/internal/models"
	"github.com/iudanet/cardform/internal/validation"
)

func newTestForm(t *testing.T) *Form {
	t.Helper()
	v, err := validation.New(validation.LocaleRU)
	require.NoError(t, err)
	f := New(v)
	f.now = func() time.Time { return time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC) }
	return f
}

func fillValid(f *Form) {
	f.Change(models.FieldCardNumber, "4111 1111 1111 1111")
	f.Change(models.FieldCVV, "123")
	f.Change(models.FieldExpiryDate, "05/28")
	f.Change(models.FieldAmount, "100")
	f.Change(models.FieldCurrency, "EUR")
}

func TestNew_Defaults(t *testing.T) {
	f := newTestForm(t)

	v := f.Values()
	assert.Empty(t, v.CardNumber)
	assert.Empty(t, v.CVV)
	assert.Nil(t, v.ExpiryDate)
	assert.Empty(t, v.Amount)
	assert.Equal(t, models.USD, v.Currency)
	assert.False(t, f.Dirty())
	assert.False(t, f.CanSubmit())
}

func TestForm_CardNumberCanonicalDigits(t *testing.T) {
	f := newTestForm(t)

	f.Focus(models.FieldCardNumber)
	f.Change(models.FieldCardNumber, "4111 1111-1111 1111")
	assert.Equal(t, "4111111111111111", f.Values().CardNumber)
	assert.Equal(t, "4111 1111 1111 1111", f.Display(models.FieldCardNumber))

	f.Blur(models.FieldCardNumber)
	assert.Equal(t, "41** **** **** 1111", f.Display(models.FieldCardNumber))
	// маскированное представление не попадает в состояние
	assert.Equal(t, "4111111111111111", f.Values().CardNumber)

	f.Focus(models.FieldCardNumber)
	assert.Equal(t, "4111 1111 1111 1111", f.Display(models.FieldCardNumber))
}

func TestForm_ChangeWithMaskedTextStoresDigitsOnly(t *testing.T) {
	f := newTestForm(t)

	f.Change(models.FieldCardNumber, "41** **** **** 1111")
	assert.Equal(t, "411111", f.Values().CardNumber)
}

func TestForm_Display(t *testing.T) {
	f := newTestForm(t)
	fillValid(f)

	assert.Equal(t, "***", f.Display(models.FieldCVV))
	assert.Equal(t, "05/28", f.Display(models.FieldExpiryDate))
	assert.Equal(t, "100", f.Display(models.FieldAmount))
	assert.Equal(t, "EUR", f.Display(models.FieldCurrency))
	assert.Equal(t, "", f.Display(models.Field("unknown")))
}

func TestForm_FocusBlur(t *testing.T) {
	f := newTestForm(t)

	f.Focus(models.FieldCVV)
	assert.Equal(t, models.FieldCVV, f.Focused())
	assert.False(t, f.Touched(models.FieldCVV))

	f.Blur(models.FieldCVV)
	assert.Equal(t, models.Field(""), f.Focused())
	assert.True(t, f.Touched(models.FieldCVV))
}

func TestForm_TouchedErrors(t *testing.T) {
	f := newTestForm(t)

	assert.Len(t, f.Errors(), 4)
	assert.Empty(t, f.TouchedErrors())

	f.Focus(models.FieldCVV)
	f.Change(models.FieldCVV, "12")
	f.Blur(models.FieldCVV)

	assert.Equal(t, validation.Errors{
		models.FieldCVV: "CVV должно состоять из 3 или 4 цифр",
	}, f.TouchedErrors())

	msg, ok := f.FieldError(models.FieldCardNumber)
	assert.True(t, ok)
	assert.Equal(t, "Введите номер карты", msg)
}

func TestForm_CurrencyChange(t *testing.T) {
	f := newTestForm(t)

	f.Change(models.FieldCurrency, "2")
	assert.Equal(t, models.EUR, f.Values().Currency)

	f.Change(models.FieldCurrency, "GBP")
	assert.Equal(t, models.EUR, f.Values().Currency, "unknown currency is ignored")
}

func TestForm_ExpiryInput(t *testing.T) {
	f := newTestForm(t)

	f.PickExpiry(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "06/30", f.Display(models.FieldExpiryDate))

	f.TypeExpiry("garbage")
	assert.Equal(t, "06/30", f.Display(models.FieldExpiryDate), "unparsable text keeps previous value")

	f.TypeExpiry("11/27")
	assert.Equal(t, "11/27", f.Display(models.FieldExpiryDate))
}

func TestForm_ValuesReturnsCopy(t *testing.T) {
	f := newTestForm(t)
	f.PickExpiry(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC))

	v := f.Values()
	*v.ExpiryDate = time.Time{}

	assert.Equal(t, "06/30", f.Display(models.FieldExpiryDate))
}

func TestForm_Dirty(t *testing.T) {
	f := newTestForm(t)

	f.Change(models.FieldCurrency, "USD")
	assert.False(t, f.Dirty(), "same value as initial")

	f.Change(models.FieldAmount, "5")
	assert.True(t, f.Dirty())

	f.Change(models.FieldAmount, "")
	assert.False(t, f.Dirty())

	f.TypeExpiry("01/29")
	assert.True(t, f.Dirty())
}

func TestForm_CanSubmit(t *testing.T) {
	f := newTestForm(t)
	assert.False(t, f.CanSubmit())

	fillValid(f)
	assert.True(t, f.Valid())
	assert.True(t, f.CanSubmit())

	f.Change(models.FieldCardNumber, "4111111111111112")
	assert.False(t, f.CanSubmit())
}

func TestForm_Submit(t *testing.T) {
	ctx := context.Background()
	f := newTestForm(t)
	fillValid(f)

	mockSubmitter := &SubmitterMock{
		SubmitFunc: func(ctx context.Context, s models.Submission) error {
			return nil
		},
	}

	sub, err := f.Submit(ctx, mockSubmitter)
	require.NoError(t, err)

	require.Len(t, mockSubmitter.SubmitCalls(), 1)
	got := mockSubmitter.SubmitCalls()[0].S
	assert.Equal(t, sub, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "4111111111111111", got.CardNumber)
	assert.Equal(t, "123", got.CVV)
	assert.Equal(t, time.Date(2028, time.May, 1, 0, 0, 0, 0, time.UTC), got.ExpiryDate)
	assert.Equal(t, "100", got.Amount.String())
	assert.Equal(t, models.EUR, got.Currency)
	assert.Equal(t, time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC), got.SubmittedAt)

	// после отправки форма сброшена
	assert.False(t, f.Dirty())
	assert.Empty(t, f.Values().CardNumber)
}

func TestForm_SubmitRejected(t *testing.T) {
	ctx := context.Background()

	mockSubmitter := &SubmitterMock{
		SubmitFunc: func(ctx context.Context, s models.Submission) error {
			return nil
		},
	}

	t.Run("pristine form", func(t *testing.T) {
		f := newTestForm(t)
		_, err := f.Submit(ctx, mockSubmitter)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotSubmittable)
	})

	t.Run("invalid field", func(t *testing.T) {
		f := newTestForm(t)
		fillValid(f)
		f.Change(models.FieldAmount, "0")

		_, err := f.Submit(ctx, mockSubmitter)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotSubmittable)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "Сумма должна быть положительной", errs[models.FieldAmount])
	})

	assert.Empty(t, mockSubmitter.SubmitCalls())
}

func TestForm_SubmitterFailureKeepsState(t *testing.T) {
	f := newTestForm(t)
	fillValid(f)

	failing := &SubmitterMock{
		SubmitFunc: func(ctx context.Context, s models.Submission) error {
			return errors.New("gateway unavailable")
		},
	}

	_, err := f.Submit(context.Background(), failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unavailable")
	assert.True(t, f.CanSubmit())
	assert.Equal(t, "4111111111111111", f.Values().CardNumber)
}
