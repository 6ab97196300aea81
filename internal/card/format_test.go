package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "full number", value: "4111111111111111", want: "4111 1111 1111 1111"},
		{name: "partial group", value: "411111", want: "4111 11"},
		{name: "exact group", value: "4111", want: "4111"},
		{name: "strips non digits", value: "41-11 aa11", want: "4111 11"},
		{name: "already formatted", value: "4111 1111 1111 1111", want: "4111 1111 1111 1111"},
		{name: "empty", value: "", want: ""},
		{name: "no digits", value: "abc", want: ""},
		{name: "nineteen digits", value: "6011000990139424123", want: "6011 0009 9013 9424 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, s := range []string{"", "1", "12345", "4111111111111111", "41 11-11x11 1111", "  ", "1234 5678 9"} {
		once := Format(s)
		assert.Equal(t, once, Format(once), "input %q", s)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "short returns input", value: "123", want: "123"},
		{name: "short keeps formatting", value: "12 3", want: "12 3"},
		{name: "five digits", value: "12345", want: "12345"},
		{name: "six digits no mask", value: "123456", want: "1234 56"},
		{name: "seven digits", value: "1234567", want: "12*4 567"},
		{name: "full number", value: "4111111111111111", want: "41** **** **** 1111"},
		{name: "formatted input", value: "4111 1111 1111 1111", want: "41** **** **** 1111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.value))
		})
	}
}

func TestRender(t *testing.T) {
	digits := "4111111111111111"

	assert.Equal(t, "4111 1111 1111 1111", Render(digits, true))
	assert.Equal(t, "41** **** **** 1111", Render(digits, false))
	assert.Equal(t, "", Render("", false))
	assert.Equal(t, "", Render("", true))
	assert.NotContains(t, Render(digits, false), "1111 1111")
}

func TestEndToEnd_FormatAndValidate(t *testing.T) {
	raw := "4111111111111111"
	assert.Equal(t, "4111 1111 1111 1111", Format(raw))
	assert.True(t, Valid(raw))
	assert.True(t, Valid(Format(raw)))
	assert.False(t, Valid("4111111111111112"))
}
