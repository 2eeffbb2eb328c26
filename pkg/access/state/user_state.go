package state

import (
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
)

// UserState holds one user's authorization facts. Absence of an entry
// means "default for that op or permission", never an implicit deny.
type UserState struct {
	WritableState

	// PermissionFlags is app id -> permission name -> flags.
	PermissionFlags *indexed.Map[access.AppID, *indexed.Map[string, access.PermissionFlags]]

	// UIDAppOpModes is app id -> op name -> mode.
	UIDAppOpModes *indexed.Map[access.AppID, *indexed.Map[string, access.AppOpMode]]

	// PackageAppOpModes is package name -> op name -> mode.
	PackageAppOpModes *indexed.Map[string, *indexed.Map[string, access.AppOpMode]]
}

func NewUserState() *UserState {
	return &UserState{
		PermissionFlags:   indexed.NewMap[access.AppID, *indexed.Map[string, access.PermissionFlags]](),
		UIDAppOpModes:     indexed.NewMap[access.AppID, *indexed.Map[string, access.AppOpMode]](),
		PackageAppOpModes: indexed.NewMap[string, *indexed.Map[string, access.AppOpMode]](),
	}
}

func (s *UserState) Copy() *UserState {
	return &UserState{
		PermissionFlags: s.PermissionFlags.Copy(func(flags *indexed.Map[string, access.PermissionFlags]) *indexed.Map[string, access.PermissionFlags] {
			return flags.Copy(nil)
		}),
		UIDAppOpModes: s.UIDAppOpModes.Copy(func(modes *indexed.Map[string, access.AppOpMode]) *indexed.Map[string, access.AppOpMode] {
			return modes.Copy(nil)
		}),
		PackageAppOpModes: s.PackageAppOpModes.Copy(func(modes *indexed.Map[string, access.AppOpMode]) *indexed.Map[string, access.AppOpMode] {
			return modes.Copy(nil)
		}),
	}
}
