package policy

const (
	purgedAppOpModes      = "purged-app-op-modes"
	purgedPermissionFlags = "purged-permission-flags"

	droppedAdoption         = "dropped-permission-adoption"
	droppedPermission       = "dropped-permission-declaration"
	droppedPermissionGroup  = "dropped-permission-group-declaration"
	droppedPermissionGroups = "dropped-all-permission-group-declarations"

	sigAdoptionRefused         = "access.adoption-refused"
	sigGroupDeclarationRefused = "access.group-declaration-refused"
)
