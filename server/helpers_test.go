package server

import "time"

const (
	eventuallyTimeout = 5 * time.Second
	eventuallyTick    = 20 * time.Millisecond
)
