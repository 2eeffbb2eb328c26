package cef

import (
	"context"
	"time"
)

type receiptTimeKey struct{}

// WithReceiptTime stamps the context with the time an event was first
// observed, so the CEF record carries the original receipt time rather
// than the time it was logged.
func WithReceiptTime(parent context.Context, rt time.Time) context.Context {
	return context.WithValue(parent, receiptTimeKey{}, rt)
}

func ReceiptTimeFromContext(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(receiptTimeKey{}).(time.Time)
	return t, ok
}
