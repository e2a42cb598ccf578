package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
)

const (
	msgNoDataRows      = "File has no data rows."
	msgUnsupportedType = "Unsupported file type. Upload a .csv, .xlsx or .xls file."
	msgUnreadableFile  = "Could not read the uploaded file."
	msgNoSheets        = "The workbook has no sheets."
	msgLookupFailed    = "User lookup failed. Please try again."
)

type ImportTransactionsInput struct {
	Filename string
	Reader   io.Reader
	// Token is the caller's bearer token, forwarded on the bulk request.
	Token string
}

type ImportTransactions interface {
	Execute(ctx context.Context, in ImportTransactionsInput) (transaction.ImportResult, error)
}

type recordParser interface {
	Parse(filename string, r io.Reader) ([]transaction.Record, error)
}

type bulkGateway interface {
	SubmitTransactions(ctx context.Context, token string, rows []transaction.ImportRow) (transaction.BulkOutcome, error)
}

type runRecorder interface {
	RecordRun(ctx context.Context, rec transaction.ImportRunRecord) error
}

type importTransactions struct {
	parser    recordParser
	directory directoryLookup
	gateway   bulkGateway
	runs      runRecorder
	log       *zap.Logger
}

// NewImportTransactions builds the import orchestrator. runs may be nil when
// no audit trail is configured.
func NewImportTransactions(parser recordParser, directory directoryLookup, gateway bulkGateway, runs runRecorder, log *zap.Logger) ImportTransactions {
	return &importTransactions{
		parser:    parser,
		directory: directory,
		gateway:   gateway,
		runs:      runs,
		log:       log,
	}
}

// Execute runs one import: parse, enforce the row ceiling, validate in input
// order, resolve users, submit the surviving batch in a single call, and
// merge client-side errors with server-reported ones (client first). The
// returned result is terminal; a run that imported nothing is a result with
// SuccessCount zero, not an error.
func (uc *importTransactions) Execute(ctx context.Context, in ImportTransactionsInput) (transaction.ImportResult, error) {
	start := time.Now()

	records, err := uc.parser.Parse(in.Filename, in.Reader)
	if err != nil {
		result := transaction.ImportResult{SuccessCount: 0, Errors: []string{fileErrorMessage(err)}}
		uc.record(ctx, in.Filename, 0, 0, result, start)
		return result, nil
	}

	if len(records) == 0 {
		result := transaction.ImportResult{SuccessCount: 0, Errors: []string{msgNoDataRows}}
		uc.record(ctx, in.Filename, 0, 0, result, start)
		return result, nil
	}

	if len(records) > transaction.MaxRowsPerUpload {
		result := transaction.ImportResult{
			SuccessCount: 0,
			Errors: []string{fmt.Sprintf("File has %d rows. Maximum is %d per upload.",
				len(records), transaction.MaxRowsPerUpload)},
		}
		uc.record(ctx, in.Filename, len(records), 0, result, start)
		return result, nil
	}

	resolver := NewResolver(uc.directory)
	rowErrors := newErrorList(transaction.MaxRecordedErrors)
	valid := make([]transaction.ImportRow, 0, len(records))

	for i, rec := range records {
		rowNumber := i + 2 // 1-based, header row included

		row, verr := ValidateRow(Normalize(rec), rowNumber)
		if verr != nil {
			rowErrors.add(verr.String())
			continue
		}

		res, err := resolver.Resolve(ctx, row.Email)
		if err != nil {
			uc.log.Error("user lookup failed during import",
				zap.String("filename", in.Filename), zap.Error(err))
			result := transaction.ImportResult{SuccessCount: 0, Errors: []string{msgLookupFailed}}
			uc.record(ctx, in.Filename, len(records), 0, result, start)
			return result, nil
		}
		if !res.Found {
			rowErrors.add(fmt.Sprintf("Row %d: user not found for email %s", rowNumber, row.Email))
			continue
		}

		row.UserID = res.UserID
		valid = append(valid, row)
	}

	clientErrors := rowErrors.report()

	if len(valid) == 0 {
		// Nothing survived validation; skip the network call entirely.
		result := transaction.ImportResult{SuccessCount: 0, Errors: clientErrors}
		uc.record(ctx, in.Filename, len(records), 0, result, start)
		return result, nil
	}

	var result transaction.ImportResult
	outcome, err := uc.gateway.SubmitTransactions(ctx, in.Token, valid)
	if err != nil {
		uc.log.Warn("bulk submission failed",
			zap.String("filename", in.Filename), zap.Int("rows", len(valid)), zap.Error(err))
		result = transaction.ImportResult{
			SuccessCount: 0,
			Errors:       append(clientErrors, err.Error()),
		}
	} else {
		result = transaction.ImportResult{
			SuccessCount: outcome.Success,
			Errors:       append(clientErrors, outcome.Errors...),
		}
	}

	uc.record(ctx, in.Filename, len(records), len(valid), result, start)

	uc.log.Info("import finished",
		zap.String("filename", in.Filename),
		zap.Int("rows", len(records)),
		zap.Int("imported", result.SuccessCount),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

func (uc *importTransactions) record(ctx context.Context, filename string, total, valid int, result transaction.ImportResult, start time.Time) {
	if uc.runs == nil {
		return
	}

	rec := transaction.ImportRunRecord{
		Filename:     filename,
		TotalRows:    total,
		ValidRows:    valid,
		SuccessCount: result.SuccessCount,
		Errors:       result.Errors,
		Duration:     time.Since(start),
	}
	if err := uc.runs.RecordRun(ctx, rec); err != nil {
		// The audit trail never blocks the importing user.
		uc.log.Error("failed to record import run", zap.String("filename", filename), zap.Error(err))
	}
}

func fileErrorMessage(err error) string {
	switch {
	case errors.Is(err, transaction.ErrUnsupportedFileType):
		return msgUnsupportedType
	case errors.Is(err, transaction.ErrNoSheets):
		return msgNoSheets
	default:
		return msgUnreadableFile
	}
}

// errorList records up to limit messages while counting all of them; the
// report ends with a single truncation marker when the cap was exceeded.
type errorList struct {
	limit    int
	messages []string
	total    int
}

func newErrorList(limit int) *errorList {
	return &errorList{limit: limit}
}

func (l *errorList) add(message string) {
	l.total++
	if len(l.messages) < l.limit {
		l.messages = append(l.messages, message)
	}
}

func (l *errorList) report() []string {
	if l.total <= l.limit {
		return l.messages
	}
	return append(l.messages, fmt.Sprintf("...and %d more errors", l.total-l.limit))
}
