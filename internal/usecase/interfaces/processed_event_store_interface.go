package interfaces

import "context"

// IProcessedEventStore deduplicates provider status events so reconciliation
// stays idempotent: the same terminal webhook delivered twice must not
// re-trigger side effects.
//
// MarkProcessed returns true when the key was seen for the first time.
//
// Forget releases a key whose event could not be applied, so the provider's
// retry is not mistaken for a duplicate.

type IProcessedEventStore interface {
	MarkProcessed(ctx context.Context, eventKey string) (bool, error)
	Forget(ctx context.Context, eventKey string) error
}
