package access

// PackageUserState is a package's install state within one user.
type PackageUserState struct {
	Installed  bool
	InstantApp bool
}

// PackageState is the immutable record of a scanned package, supplied
// by the package metadata provider. A system package that has been
// removed but is still referenced keeps its record with Installed
// false; that is the only shape a permission adoption can target.
type PackageState struct {
	Name      string
	AppID     AppID
	System    bool
	Installed bool

	// AdoptPermissions names original packages whose permission
	// definitions this package claims to take over.
	AdoptPermissions []string

	Permissions      []PermissionInfo
	PermissionGroups []string

	UserStates map[UserID]PackageUserState
}

// InstantOnly reports whether the package is an instant app in every
// user it is installed for. Such packages may not declare permission
// groups.
func (p *PackageState) InstantOnly() bool {
	for _, us := range p.UserStates {
		if us.Installed && !us.InstantApp {
			return false
		}
	}
	return true
}
