package access

import (
	"errors"

	"code.cloudfoundry.org/access/pkg/errdefs"
)

var (
	ErrUnknown = errors.New("access: unknown error")

	ErrUserNotFound      = errdefs.NewErrNotFound("user")
	ErrUserAlreadyExists = errdefs.NewErrAlreadyExists("user")

	ErrPackageNotFound      = errdefs.NewErrNotFound("package")
	ErrPackageAlreadyExists = errdefs.NewErrAlreadyExists("package")
)
