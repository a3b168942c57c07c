// Package format holds the pure display formatters for monetary cells,
// percentage cells and invoice numbers.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dhrupad777/paperbrain/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a value with two fixed decimals and Indian
// digit grouping, e.g. 1000000 -> "10,00,000.00". Anything that is not a
// valid number renders as "0.00".
func FormatCurrency(value any) string {
	d, ok := coerce(value)
	if !ok {
		return "0.00"
	}

	fixed := d.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	dot := strings.Index(fixed, ".")
	grouped := groupIndian(fixed[:dot]) + fixed[dot:]
	if negative {
		return "-" + grouped
	}
	return grouped
}

// FormatPercent renders a rate cell, e.g. 9 -> "9%". Zero and invalid
// values render empty so unset rates stay blank on the document.
func FormatPercent(value any) string {
	d, ok := coerce(value)
	if !ok || d.IsZero() {
		return ""
	}
	return d.String() + "%"
}

func coerce(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, false
	case domain.Numeric:
		if !v.IsSet() {
			return decimal.Zero, false
		}
		return v.Decimal(), true
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat(float64(v)), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// groupIndian inserts separators 2-2-3 from the right: the last three
// digits form one group, every pair above it another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// DefaultNumberTemplate mints numbers like INV-20240731-000042.
const DefaultNumberTemplate = "INV-{YYYY}{MM}{DD}-{SEQ6}"

// FormatInvoiceNumber expands a number template against an issue time and
// a monotonic sequence. Deterministic, no side effects.
func FormatInvoiceNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in invoice number template: %s", out)
	}
	return out, nil
}
