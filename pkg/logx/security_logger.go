package logx

import (
	"context"
)

//go:generate counterfeiter . SecurityLogger

type SecurityData struct {
	Key   string
	Value string
}

// SecurityLogger records security-relevant decisions that are dropped
// rather than surfaced as errors, e.g. a rejected permission adoption.
type SecurityLogger interface {
	Log(ctx context.Context, signature, name string, args ...SecurityData)
}

// NoneSecurity discards security events.
var NoneSecurity SecurityLogger = nopSecurityLogger{}

type nopSecurityLogger struct{}

func (nopSecurityLogger) Log(context.Context, string, string, ...SecurityData) {}
