package monitor

import "errors"

var ErrIncorrectDecision = errors.New("access: probe read back an incorrect decision")
