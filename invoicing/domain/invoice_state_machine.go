package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/orders"
)

// EffectiveStatus derives the display/filter status of an invoice at a given
// instant. Overdue is never stored: a pending invoice past its due date reads
// as overdue, and nothing else changes.
func EffectiveStatus(status model.InvoiceStatus, dueDate, now time.Time) model.InvoiceStatus {
	if status == model.InvoiceStatusPending && now.After(dueDate) {
		return model.InvoiceStatusOverdue
	}
	return status
}

// Tx bundles the transaction-scoped repositories handed to a callback. Each
// callback gets its own Tx; nothing transaction-bound outlives the callback
// or is shared across concurrent requests.
type Tx struct {
	Invoices invoices.Querier
	Orders   orders.Querier
}

// TransitionToPaid updates the invoice to paid and records the payment time.
// Callers validate the current status under the row lock first.
func (tx Tx) TransitionToPaid(ctx context.Context, id int32, paidAt time.Time) error {
	_, err := tx.Invoices.UpdateInvoicePaid(ctx, invoices.UpdateInvoicePaidParams{
		ID:     id,
		Status: string(model.InvoiceStatusPaid),
		PaidAt: pgtype.Timestamptz{Time: paidAt, Valid: true},
	})
	return err
}

// DeleteInvoice removes the invoice within the transaction. Line items
// cascade, which frees the referenced orders for future billing.
func (tx Tx) DeleteInvoice(ctx context.Context, id int32) error {
	return tx.Invoices.DeleteInvoice(ctx, id)
}

// StateMachine defines invoice state transitions and transaction management.
type StateMachine interface {
	// GetInvoiceWithLock runs businessLogic against the current invoice row
	// under a row-level lock, inside a transaction that commits only if the
	// callback succeeds.
	GetInvoiceWithLock(ctx context.Context, invoiceID int32, businessLogic func(tx Tx, current invoices.Invoice) error) error

	// RunInTx runs businessLogic inside a fresh transaction. This is the
	// atomicity boundary for invoice creation, where no row exists to lock
	// yet: eligibility re-checks and line-item inserts commit as one unit.
	RunInTx(ctx context.Context, businessLogic func(tx Tx) error) error
}

// InvoiceStateMachine owns transaction boundaries for all invoice mutations.
type InvoiceStateMachine struct {
	db          *pgxpool.Pool
	invoiceRepo invoices.Querier
	orderRepo   orders.Querier
}

// NewInvoiceStateMachine creates a state machine bound to the database pool.
func NewInvoiceStateMachine(db *pgxpool.Pool, invoiceRepo invoices.Querier, orderRepo orders.Querier) *InvoiceStateMachine {
	return &InvoiceStateMachine{
		db:          db,
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
	}
}

func (sm *InvoiceStateMachine) begin(ctx context.Context) (pgx.Tx, Tx, error) {
	dbTx, err := sm.db.Begin(ctx)
	if err != nil {
		return nil, Tx{}, &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}

	return dbTx, Tx{
		Invoices: sm.invoiceRepo.(*invoices.Queries).WithTx(dbTx),
		Orders:   sm.orderRepo.(*orders.Queries).WithTx(dbTx),
	}, nil
}

// GetInvoiceWithLock locks the invoice row and runs businessLogic within the
// transaction that holds the lock.
func (sm *InvoiceStateMachine) GetInvoiceWithLock(ctx context.Context, invoiceID int32, businessLogic func(tx Tx, current invoices.Invoice) error) error {
	dbTx, tx, err := sm.begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx)

	currentInvoice, err := tx.Invoices.GetInvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
	}

	if err := businessLogic(tx, currentInvoice); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}

	return nil
}

// RunInTx runs businessLogic inside a transaction with transaction-scoped
// repositories passed in. Either everything the callback writes commits, or
// nothing does.
func (sm *InvoiceStateMachine) RunInTx(ctx context.Context, businessLogic func(tx Tx) error) error {
	dbTx, tx, err := sm.begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx)

	if err := businessLogic(tx); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}
