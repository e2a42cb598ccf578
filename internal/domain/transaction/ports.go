package transaction

import "context"

// UserDirectory is the read side of the user store the console authenticates
// against: email lookups for the import pipeline and the per-user admin flag
// for the session gate.
type UserDirectory interface {
	FindIDByEmail(ctx context.Context, email string) (string, error)
	AdminFlag(ctx context.Context, userID string) (bool, error)
}

// BulkGateway submits one whole batch of validated rows to the remote
// backend. A transport failure fails the entire submission; there are no
// per-row retries.
type BulkGateway interface {
	SubmitTransactions(ctx context.Context, token string, rows []ImportRow) (BulkOutcome, error)
}

// RunRecorder persists the audit trail of finished import runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, rec ImportRunRecord) error
}
