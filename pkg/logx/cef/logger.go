package cef

import (
	"context"
	"errors"
	"fmt"
	"io"

	"code.cloudfoundry.org/access/pkg/logx"
	"github.com/xoebus/ceflog"
)

const (
	CEFTimeFormat             = "Jan 2 2006 15:04:05"
	invalidCEFCustomExtension = "invalid-cef-custom-extension"

	maxCustomExtensions = 6
)

type Vendor string
type Product string
type Version string
type Hostname string

type Logger struct {
	logger    *ceflog.Logger
	hostname  string
	errLogger logx.Logger
}

func NewLogger(writer io.Writer, vendor Vendor, product Product, version Version, hostname Hostname, errLogger logx.Logger) *Logger {
	return &Logger{
		logger:    ceflog.New(writer, string(vendor), string(product), string(version)),
		hostname:  string(hostname),
		errLogger: errLogger,
	}
}

func (l *Logger) Log(ctx context.Context, signature string, name string, args ...logx.SecurityData) {
	extension := ceflog.Extension{
		ceflog.Pair{Key: "dst", Value: l.hostname},
	}

	if rt, ok := ReceiptTimeFromContext(ctx); ok {
		extension = append(extension, ceflog.Pair{Key: "rt", Value: fmt.Sprintf("\"%s\"", rt.Format(CEFTimeFormat))})
	}

	counter := 1
	invalidFound := false

	for _, ce := range args {
		if ce.Key == "" || ce.Value == "" {
			if !invalidFound {
				l.errLogger.Error(invalidCEFCustomExtension, errors.New("the extension key and/or value is empty"))
				invalidFound = true
			}
			continue
		}

		extension = append(extension, ceflog.Pair{Key: fmt.Sprintf("cs%dLabel", counter), Value: ce.Key})
		extension = append(extension, ceflog.Pair{Key: fmt.Sprintf("cs%d", counter), Value: ce.Value})
		counter++
		if counter > maxCustomExtensions {
			l.errLogger.Error(invalidCEFCustomExtension, errors.New("cannot provide more than 6 custom extensions"))
			break
		}
	}

	l.logger.LogEvent(signature, name, 0, extension)
}
