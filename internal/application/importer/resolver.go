package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
	"github.com/mohammadpnp/admin-console/internal/domain/user"
)

type directoryLookup interface {
	FindIDByEmail(ctx context.Context, email string) (string, error)
}

// Resolver maps row emails to user ids, memoizing within one import run so
// each distinct email hits the directory at most once. Not-found is cached
// too, to avoid re-querying known-missing emails. The cache dies with the
// resolver; build a fresh one per run.
type Resolver struct {
	directory directoryLookup
	cache     map[string]transaction.Resolution
}

func NewResolver(directory directoryLookup) *Resolver {
	return &Resolver{
		directory: directory,
		cache:     make(map[string]transaction.Resolution),
	}
}

// Resolve returns a Resolution for the given normalized email. An unknown
// email is an expected outcome, not an error; errors are reserved for
// directory faults, which abort the run.
func (r *Resolver) Resolve(ctx context.Context, email string) (transaction.Resolution, error) {
	if res, ok := r.cache[email]; ok {
		return res, nil
	}

	var res transaction.Resolution
	id, err := r.directory.FindIDByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		res = transaction.Resolution{Found: false}
	case err != nil:
		return transaction.Resolution{}, fmt.Errorf("look up user by email: %w", err)
	default:
		res = transaction.Resolution{UserID: id, Found: true}
	}

	r.cache[email] = res
	return res, nil
}
