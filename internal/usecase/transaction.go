package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs a sequence of operations and, when one fails, undoes the
// already-executed ones in reverse order via their registered compensations.
// Compensation failures are logged, not returned; the caller already has the
// original error.
type Transaction struct {
	operations    []operation
	compensations []operation
}

type operation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, operation{name, fn})
}

// AddCompensation registers the undo for the operation at the same index.
func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w", op.Name, err)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.Fn(ctx); err != nil {
			log.Printf("WARNING: compensation '%s' failed: %v (possible ledger undercount)", comp.Name, err)
		}
	}
}
