package flags

import (
	"os"

	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/logx/cef"
)

const (
	cefVendor  = "cloud_foundry"
	cefProduct = "access"
	cefVersion = "0.0.0"
)

type SecurityLogFlag struct {
	Path string `long:"security-log-path" description:"File path of the CEF security event log; events are discarded when unset"`
}

// Logger opens the security log. The returned close function is a
// no-op when no path was given.
func (f SecurityLogFlag) Logger(errLogger logx.Logger) (logx.SecurityLogger, func() error, error) {
	if f.Path == "" {
		return logx.NoneSecurity, func() error { return nil }, nil
	}

	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	logger := cef.NewLogger(file, cefVendor, cefProduct, cefVersion, cef.Hostname(hostname), errLogger)
	return logger, file.Close, nil
}
