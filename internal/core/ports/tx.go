package ports

import "context"

// Transactor runs fn inside a single storage transaction. Repository calls
// made with the context passed to fn join that transaction, so a task
// mutation and its audit-log append either both commit or both roll back.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
