package access

// PermissionFlags is the decision value stored per (uid, permission).
// Only the granted bit is defined; the richer install-time/runtime
// flag set is an extension point, and zero flags always means "no
// explicit decision recorded".
type PermissionFlags uint32

const (
	PermissionFlagGranted PermissionFlags = 1 << 0

	permissionFlagsMask = PermissionFlagGranted
)

func (f PermissionFlags) Valid() bool {
	return f&^permissionFlagsMask == 0
}

// PermissionType records where a permission definition came from.
type PermissionType int32

const (
	PermissionTypeManifest PermissionType = iota
	PermissionTypeConfig
	PermissionTypeDynamic
)

type PermissionInfo struct {
	Name            string
	PackageName     string
	Group           string
	ProtectionLevel string
}

// Permission is a declared permission's metadata. Created when a
// package declaring it is scanned, rewritten when an adopt-permissions
// transfer moves it to a successor package, and removed when its
// defining package is removed without being re-adopted.
type Permission struct {
	Info       PermissionInfo
	Reconciled bool
	Type       PermissionType
	AppID      AppID
}

type PermissionGroup struct {
	Name        string
	PackageName string
}
