package cli

const summaryTemplate = `
=== {{.Title}} ===

{{range .Rows}}{{.Label}}: {{.Value}}
{{end}}`

const usageTemplate = `
cardform

Usage:
  cardform [OPTIONS] COMMAND

Options:
  -version             Show version information
  -log-level LEVEL     Log level: debug, info, warn, error (default: info)
  -log-format FORMAT   Log format: text, json (default: text)
  -locale LOCALE       Form language: ru, en (default: ru)
  -attempts N          Attempts per field before giving up (default: 3)

Environment:
  CARDFORM_LOG_LEVEL, CARDFORM_LOG_FORMAT, CARDFORM_LOCALE, CARDFORM_MAX_ATTEMPTS
  Flags override environment variables.

Commands:
  pay                  Fill in and submit the card top-up form
  check <number>       Show formatted and masked number, verify Luhn checksum

Examples:
  cardform pay
  cardform -locale en pay
  cardform check 4111 1111 1111 1111
`
