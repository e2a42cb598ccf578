package importer

import (
	"strings"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
)

// Normalize maps one raw record onto the five fixed columns. Header matching
// is case-insensitive and whitespace-trimmed; missing string fields become
// "", a missing amount becomes "0". Absence is deferred to validation.
// Pure function: the same record always yields the same row.
func Normalize(rec transaction.Record) transaction.RawRow {
	fields := make(map[string]string, len(rec))
	for key, value := range rec {
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	row := transaction.RawRow{
		Email:  fields["email"],
		Date:   fields["date"],
		Amount: fields["amount"],
		Type:   fields["type"],
		Status: fields["status"],
	}
	if row.Amount == "" {
		row.Amount = "0"
	}

	return row
}
