package services

import "github.com/rotisserie/eris"

var (
	ErrVenueNotFound     = eris.New("venue not found")
	ErrVenueClosed       = eris.New("venue is closed")
	ErrEmptyOrder        = eris.New("order has no items")
	ErrOrderInProgress   = eris.New("an order is already in progress")
	ErrRefreshInProgress = eris.New("catalog refresh already running")
)
