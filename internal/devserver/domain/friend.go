package domain

import "time"

type FriendRequest struct {
	ID            uint64
	OriginID      uint64
	DestinationID uint64
	Relationship  string
	Message       *string
	CreatedAt     time.Time
}
