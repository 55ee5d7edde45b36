package service

import "time"

// Timer is a cancellable one-shot handle.
type Timer interface {
	Stop() bool
}

// AfterFunc arms f to run once after d and returns its cancellation handle.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
