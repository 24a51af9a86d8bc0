package service

import (
	"context"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
)

// TransferObserver is told about every settled transfer.
type TransferObserver interface {
	ObserveTransfer(amount int64)
}

type TransactionService struct {
	Store    store.Store
	Observer TransferObserver // optional
}

// Transfer moves amount from origin's checking balance to the destination
// user, whose wallet must be address.
func (s *TransactionService) Transfer(ctx context.Context, origin, destination uint64, address string, amount int64) (uint64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if origin == destination {
		return 0, ErrSelfTransfer
	}

	var id uint64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		from, err := tx.Users().GetUserByID(ctx, origin)
		if err != nil {
			return notFound(err)
		}
		to, err := tx.Users().GetUserByID(ctx, destination)
		if err != nil {
			return notFound(err)
		}
		if to.WalletAddress != address {
			return ErrWalletMismatch
		}
		if from.CheckingBalance < amount {
			return ErrInsufficientFunds
		}

		if err := tx.Users().AdjustBalance(ctx, origin, -amount); err != nil {
			return err
		}
		if err := tx.Users().AdjustBalance(ctx, destination, amount); err != nil {
			return err
		}

		id, err = tx.Transactions().CreateTransaction(ctx, domain.Transaction{
			OriginUser:      origin,
			DestinationUser: destination,
			Destination:     address,
			Amount:          amount,
			CreatedAt:       time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	if s.Observer != nil {
		s.Observer.ObserveTransfer(amount)
	}
	return id, nil
}

// Get returns transaction id. A non-nil viewer must be one of the two
// parties; to anyone else the transaction does not exist.
func (s *TransactionService) Get(ctx context.Context, id uint64, viewer *uint64) (domain.Transaction, error) {
	t, err := s.Store.Transactions().GetTransaction(ctx, id)
	if err != nil {
		return domain.Transaction{}, notFound(err)
	}
	if viewer != nil && *viewer != t.OriginUser && *viewer != t.DestinationUser {
		return domain.Transaction{}, ErrNotFound
	}
	return t, nil
}

func (s *TransactionService) ListSince(ctx context.Context, sinceID uint64) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListSince(ctx, sinceID)
}
