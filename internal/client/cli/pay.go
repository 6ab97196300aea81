package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/iudanet/cardform/internal/form"
	"github.com/iudanet/cardform/internal/models"
)

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

type summary struct {
	Title string
	Rows  []summaryRow
}

type summaryRow struct {
	Label string
	Value string
}

func (c *Cli) runPay(ctx context.Context) error {
	f := form.New(c.validator)

	c.io.Printf("=== %s ===\n", c.labels.Title)
	c.io.Println()

	for _, field := range models.Fields {
		if field == models.FieldCurrency {
			c.printCurrencies()
		}
		if err := c.promptField(ctx, f, field); err != nil {
			return err
		}
	}

	s := summary{Title: c.labels.Summary}
	for _, field := range []models.Field{models.FieldCardNumber, models.FieldCVV, models.FieldExpiryDate, models.FieldAmount} {
		value := f.Display(field)
		if field == models.FieldAmount {
			value += " " + f.Display(models.FieldCurrency)
		}
		s.Rows = append(s.Rows, summaryRow{Label: c.labels.Fields[field], Value: value})
	}
	if err := summaryTmpl.Execute(c.io, s); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	c.io.Println()

	if !f.CanSubmit() {
		return fmt.Errorf("%w: %w", form.ErrNotSubmittable, f.Errors())
	}

	answer, err := c.io.ReadInput(c.labels.Confirm)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !isYes(answer) {
		c.io.Println(c.labels.Cancelled)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("form interrupted: %w", err)
	}

	sub, err := f.Submit(ctx, c.submitter)
	if err != nil {
		return err
	}

	c.logger.Debug("form submitted", slog.String("id", sub.ID))
	c.io.Println()
	c.io.Println(c.labels.Submitted)
	c.io.Printf("ID: %s\n", sub.ID)
	return nil
}

// promptField запрашивает значение поля, пока оно не пройдет проверку
// или не закончатся попытки
func (c *Cli) promptField(ctx context.Context, f *form.Form, field models.Field) error {
	read := c.io.ReadInput
	if field == models.FieldCVV {
		read = c.io.ReadPassword
	}

	prompt := c.labels.Fields[field]
	if field == models.FieldCurrency {
		prompt = fmt.Sprintf("%s [%s]", prompt, f.Display(field))
	}
	prompt += ": "

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("form interrupted: %w", err)
		}
		f.Focus(field)
		raw, err := read(prompt)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", field, err)
		}
		f.Change(field, raw)
		f.Blur(field)

		if field == models.FieldCardNumber && f.Values().CardNumber != "" {
			c.io.Printf("  %s\n", f.Display(field))
		}

		msg, failed := f.TouchedErrors()[field]
		if !failed {
			return nil
		}
		c.logger.Debug("field rejected", slog.String("field", field.String()), slog.Int("attempt", attempt))
		c.io.Printf("  ! %s\n", msg)
	}

	return fmt.Errorf("%w: %s", ErrTooManyAttempts, field)
}

func (c *Cli) printCurrencies() {
	options := make([]string, 0, len(models.Currencies))
	for i, cur := range models.Currencies {
		options = append(options, fmt.Sprintf("%d) %s", i+1, cur))
	}
	c.io.Printf("  %s\n", strings.Join(options, "  "))
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
