package service

import (
	"context"
	"errors"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/internal/devserver/store"
)

type FriendService struct {
	Store store.Store
}

// SendRequest records a request from origin to destination. At most one
// request may be pending between two users, in either direction.
func (s *FriendService) SendRequest(ctx context.Context, origin, destination uint64, relationship string, message *string) (uint64, error) {
	if origin == destination {
		return 0, ErrSelfRequest
	}

	var id uint64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, destination); err != nil {
			return notFound(err)
		}

		friends, err := tx.Friends().AreFriends(ctx, origin, destination)
		if err != nil {
			return err
		}
		if friends {
			return ErrAlreadyFriends
		}

		pending, err := tx.Friends().PendingBetween(ctx, origin, destination)
		if err != nil {
			return err
		}
		if pending {
			return ErrRequestPending
		}

		id, err = tx.Friends().CreateRequest(ctx, domain.FriendRequest{
			OriginID:      origin,
			DestinationID: destination,
			Relationship:  relationship,
			Message:       message,
			CreatedAt:     time.Now().UTC(),
		})
		return err
	})
	return id, err
}

// Answer resolves request id, which must have been sent by origin to
// destination. Accepting links the two users; either way the request is
// removed.
func (s *FriendService) Answer(ctx context.Context, id, origin, destination uint64, accept bool) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		req, err := tx.Friends().GetRequest(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if req.OriginID != origin || req.DestinationID != destination {
			return ErrRequestMismatch
		}

		if err := tx.Friends().DeleteRequest(ctx, id); err != nil {
			return err
		}
		if !accept {
			return nil
		}
		return tx.Friends().CreateFriendship(ctx, origin, destination, req.Relationship)
	})
}

func (s *FriendService) Unfriend(ctx context.Context, user, friend uint64) error {
	err := s.Store.Friends().DeleteFriendship(ctx, user, friend)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFriends
	}
	return err
}

// Pending lists requests awaiting an answer from userID.
func (s *FriendService) Pending(ctx context.Context, userID uint64) ([]domain.FriendRequest, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return nil, notFound(err)
	}
	return s.Store.Friends().ListPending(ctx, userID)
}

func (s *FriendService) Friends(ctx context.Context, userID uint64) ([]domain.User, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return nil, notFound(err)
	}
	return s.Store.Friends().ListFriends(ctx, userID)
}
