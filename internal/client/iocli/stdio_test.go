package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Несколько строк подряд читаются одним буфером и не теряются
func TestReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader("4111 1111 1111 1111\n  123 \nlast"), &out)

	first, err := stdio.ReadInput("Card: ")
	require.NoError(t, err)
	assert.Equal(t, "4111 1111 1111 1111", first)

	second, err := stdio.ReadInput("CVV: ")
	require.NoError(t, err)
	assert.Equal(t, "123", second)

	// последняя строка без перевода строки
	third, err := stdio.ReadInput("More: ")
	require.NoError(t, err)
	assert.Equal(t, "last", third)

	_, err = stdio.ReadInput("EOF: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Card: CVV: More: EOF: ", out.String())
}

// Без терминала ReadPassword читает обычную строку
func TestReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader("987\n"), &out)

	cvv, err := stdio.ReadPassword("CVV: ")
	require.NoError(t, err)
	assert.Equal(t, "987", cvv)
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput_Stdin(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}
