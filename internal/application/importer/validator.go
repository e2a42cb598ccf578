package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

var validStatuses = map[string]struct{}{
	"paid":    {},
	"pending": {},
	"failed":  {},
}

// ValidateRow applies the field rules in a fixed order and stops at the
// first failure, so each bad row produces exactly one message. Passing rows
// come back canonical: email lowercased and trimmed, type trimmed, status
// lowercased.
func ValidateRow(raw transaction.RawRow, rowNumber int) (transaction.ImportRow, *transaction.ValidationError) {
	fail := func(message string) (transaction.ImportRow, *transaction.ValidationError) {
		return transaction.ImportRow{}, &transaction.ValidationError{RowNumber: rowNumber, Message: message}
	}

	email := strings.ToLower(strings.TrimSpace(raw.Email))
	if email == "" || !emailPattern.MatchString(email) {
		return fail("invalid email address")
	}

	date := strings.TrimSpace(raw.Date)
	if date == "" || !datePattern.MatchString(date) {
		return fail("date must use DD/MM/YYYY format")
	}

	day, _ := strconv.Atoi(date[0:2])
	month, _ := strconv.Atoi(date[3:5])
	year, _ := strconv.Atoi(date[6:10])

	// Reconstruct the date from its parts; time.Date normalizes overflow
	// (31/02 becomes 02/03 or 03/03), so an exact round-trip proves the
	// parts named a real calendar date.
	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if parsed.Day() != day || parsed.Month() != time.Month(month) || parsed.Year() != year {
		return fail("date is not a real calendar date")
	}

	if year < transaction.MinYear || year > transaction.MaxYear {
		return fail("year must be between 2000 and 2100")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) ||
		amount < 0 || amount > transaction.MaxAmount {
		return fail("amount must be a number between 0 and 100000")
	}

	rowType := strings.TrimSpace(raw.Type)
	if rowType == "" || utf8.RuneCountInString(rowType) > transaction.MaxTypeLength {
		return fail("type is required and must be 50 characters or fewer")
	}

	status := strings.ToLower(strings.TrimSpace(raw.Status))
	if _, ok := validStatuses[status]; !ok {
		return fail("status must be one of paid, pending, failed")
	}

	return transaction.ImportRow{
		Email:  email,
		Date:   date,
		Amount: amount,
		Type:   rowType,
		Status: status,
	}, nil
}
