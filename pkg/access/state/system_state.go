package state

import (
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
)

// SystemState holds the authorization facts that are independent of
// any user: known users, package records, the app-id index, and
// permission definitions.
type SystemState struct {
	WritableState

	UserIDs *indexed.Set[access.UserID]

	// Packages is keyed by package name. PackageState records are
	// immutable and shared across snapshot copies.
	Packages *indexed.Map[string, *access.PackageState]

	// AppIDs maps each app id to the names of the packages sharing it.
	AppIDs *indexed.Map[access.AppID, *indexed.Set[string]]

	PermissionGroups *indexed.Map[string, access.PermissionGroup]
	PermissionTrees  *indexed.Map[string, access.Permission]
	Permissions      *indexed.Map[string, access.Permission]
}

func NewSystemState() *SystemState {
	return &SystemState{
		UserIDs:          indexed.NewSet[access.UserID](),
		Packages:         indexed.NewMap[string, *access.PackageState](),
		AppIDs:           indexed.NewMap[access.AppID, *indexed.Set[string]](),
		PermissionGroups: indexed.NewMap[string, access.PermissionGroup](),
		PermissionTrees:  indexed.NewMap[string, access.Permission](),
		Permissions:      indexed.NewMap[string, access.Permission](),
	}
}

func (s *SystemState) Copy() *SystemState {
	return &SystemState{
		UserIDs:  s.UserIDs.Copy(),
		Packages: s.Packages.Copy(nil),
		AppIDs: s.AppIDs.Copy(func(names *indexed.Set[string]) *indexed.Set[string] {
			return names.Copy()
		}),
		PermissionGroups: s.PermissionGroups.Copy(nil),
		PermissionTrees:  s.PermissionTrees.Copy(nil),
		Permissions:      s.Permissions.Copy(nil),
	}
}
