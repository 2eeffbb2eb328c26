// Package logx is the logging facade used throughout access. Concrete
// sinks live in the lagerx and cef subpackages.
package logx

type Data struct {
	Key   string
	Value interface{}
}

//go:generate counterfeiter . Logger

type Logger interface {
	WithName(name string) Logger
	WithData(data ...Data) Logger

	Debug(msg string, data ...Data)
	Info(msg string, data ...Data)
	Error(msg string, err error, data ...Data)
}

// None discards everything. It is the default logger for components
// that were not handed a real one.
var None Logger = nopLogger{}

type nopLogger struct{}

func (n nopLogger) WithName(string) Logger     { return n }
func (n nopLogger) WithData(...Data) Logger    { return n }
func (nopLogger) Debug(string, ...Data)        {}
func (nopLogger) Info(string, ...Data)         {}
func (nopLogger) Error(string, error, ...Data) {}
