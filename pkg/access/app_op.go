package access

// AppOpMode is the mode granted to a UID or package for a single
// app-op. The zero value is Allowed to match the platform numbering.
type AppOpMode int32

const (
	AppOpModeAllowed AppOpMode = iota
	AppOpModeIgnored
	AppOpModeErrored
	AppOpModeDefault
	AppOpModeForeground
)

func (m AppOpMode) Valid() bool {
	return m >= AppOpModeAllowed && m <= AppOpModeForeground
}

func (m AppOpMode) String() string {
	switch m {
	case AppOpModeAllowed:
		return "allowed"
	case AppOpModeIgnored:
		return "ignored"
	case AppOpModeErrored:
		return "errored"
	case AppOpModeDefault:
		return "default"
	case AppOpModeForeground:
		return "foreground"
	default:
		return "invalid"
	}
}

//go:generate counterfeiter . AppOpDefaults

// AppOpDefaults resolves the statically configured default mode of an
// app-op. Absence of an explicit entry in the ledger always means
// "whatever this resolver says", never an implicit deny.
type AppOpDefaults interface {
	DefaultMode(op AppOpName) AppOpMode
}

// StaticAppOpDefaults is a fixed table of default modes. Ops without
// an entry default to AppOpModeDefault.
type StaticAppOpDefaults map[AppOpName]AppOpMode

func (d StaticAppOpDefaults) DefaultMode(op AppOpName) AppOpMode {
	mode, ok := d[op]
	if !ok {
		return AppOpModeDefault
	}
	return mode
}
