package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/cardform/internal/card"
	"github.com/iudanet/cardform/internal/validation"
)

const checkUsage = "Usage: cardform check <card number>"

func (c *Cli) runCheck(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card number. %s", checkUsage)
	}

	number := strings.Join(args, " ")

	c.io.Printf("Formatted: %s\n", card.Format(number))
	c.io.Printf("Masked:    %s\n", card.Mask(number))

	if err := validation.ValidateCardNumber(number); err != nil {
		c.io.Printf("Luhn:      %s (%v)\n", c.labels.Invalid, err)
		return nil
	}
	c.io.Printf("Luhn:      %s\n", c.labels.Valid)
	return nil
}
