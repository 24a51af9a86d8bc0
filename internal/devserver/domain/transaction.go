package domain

import "time"

type Transaction struct {
	ID              uint64
	OriginUser      uint64
	DestinationUser uint64
	Destination     string // wallet address credited
	Amount          int64
	CreatedAt       time.Time
}
