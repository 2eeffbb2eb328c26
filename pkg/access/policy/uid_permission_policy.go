package policy

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
	"code.cloudfoundry.org/access/pkg/access/state"
	"code.cloudfoundry.org/access/pkg/logx"
)

// UIDPermissionPolicy resolves and mutates permission grant
// bookkeeping, and reacts to package lifecycle events: adopting
// permission definitions from removed system packages, registering
// permission groups and permissions, and pruning definitions when
// their owner is removed. Conflicting declarations are dropped with a
// diagnostic; they never fail the package-add as a whole.
type UIDPermissionPolicy struct {
	NopLifecycle

	logger         logx.Logger
	securityLogger logx.SecurityLogger
}

func NewUIDPermissionPolicy(logger logx.Logger, securityLogger logx.SecurityLogger) *UIDPermissionPolicy {
	return &UIDPermissionPolicy{
		logger:         logger.WithName("uid-permission-policy"),
		securityLogger: securityLogger,
	}
}

func (p *UIDPermissionPolicy) SubjectScheme() string { return access.UIDScheme }
func (p *UIDPermissionPolicy) ObjectScheme() string  { return access.PermissionScheme }

func (p *UIDPermissionPolicy) GetDecision(subject access.Subject, object access.Object, st *state.AccessState) access.Decision {
	uid := mustUID(subject)
	name := mustPermissionName(object)

	userState, ok := st.UserState(uid.UserID)
	if !ok {
		return 0
	}

	flags, ok := userState.PermissionFlags.Get(uid.AppID)
	if !ok {
		return 0
	}

	value, ok := flags.Get(string(name))
	if !ok {
		return 0
	}

	return access.Decision(value)
}

func (p *UIDPermissionPolicy) SetDecision(subject access.Subject, object access.Object, decision access.Decision, oldState, newState *state.AccessState) {
	uid := mustUID(subject)
	name := mustPermissionName(object)

	value := access.PermissionFlags(decision)
	if !value.Valid() {
		panic(fmt.Sprintf("access: unrecognized permission flags %#x", decision))
	}

	if value == 0 {
		p.removeFlags(newState, uid, name)
		return
	}

	userState := newState.EnsureUserState(uid.UserID)
	flags := userState.PermissionFlags.GetOrPut(uid.AppID, indexed.NewMap[string, access.PermissionFlags])
	flags.Put(string(name), value)
	userState.RequestWrite(state.WriteModeAsync)
}

func (p *UIDPermissionPolicy) removeFlags(newState *state.AccessState, uid access.UID, name access.PermissionName) {
	userState, ok := newState.UserState(uid.UserID)
	if !ok {
		return
	}

	flags, ok := userState.PermissionFlags.Get(uid.AppID)
	if !ok {
		return
	}

	if !flags.Remove(string(name)) {
		return
	}
	if flags.Len() == 0 {
		userState.PermissionFlags.Remove(uid.AppID)
	}
	userState.RequestWrite(state.WriteModeAsync)
}

// OnAppIDRemoved purges the app id's permission flags from every user,
// for the same recycled-app-id reason as the app-op policy.
func (p *UIDPermissionPolicy) OnAppIDRemoved(appID access.AppID, oldState, newState *state.AccessState) {
	newState.UserStates.Each(func(_ int, userID access.UserID, userState *state.UserState) {
		if userState.PermissionFlags.Remove(appID) {
			userState.RequestWrite(state.WriteModeAsync)
			p.logger.Debug(purgedPermissionFlags, logx.Data{Key: "app-id", Value: appID}, logx.Data{Key: "user-id", Value: userID})
		}
	})
}

func (p *UIDPermissionPolicy) OnPackageAdded(packageName string, oldState, newState *state.AccessState) {
	pkg, ok := newState.SystemState.Packages.Get(packageName)
	if !ok {
		return
	}

	p.adoptPermissions(newState, pkg)
	p.addPermissionGroups(newState, pkg)
	p.addPermissions(newState, pkg)
}

// adoptPermissions transfers permission definitions from each named
// original package, provided the original is a system package that is
// no longer installed. Anything else would let an arbitrary package
// hijack another's permission definitions, so the transfer is refused
// and security-logged.
func (p *UIDPermissionPolicy) adoptPermissions(newState *state.AccessState, pkg *access.PackageState) {
	for _, originalName := range pkg.AdoptPermissions {
		original, ok := newState.SystemState.Packages.Get(originalName)
		if !ok {
			continue
		}

		if !original.System {
			p.logger.Info(droppedAdoption, logx.Data{Key: "package", Value: pkg.Name}, logx.Data{Key: "original", Value: originalName})
			p.securityLogger.Log(context.Background(), sigAdoptionRefused, "original package is not a system package",
				logx.SecurityData{Key: "package", Value: pkg.Name},
				logx.SecurityData{Key: "original", Value: originalName},
			)
			continue
		}
		if original.Installed {
			p.logger.Info(droppedAdoption, logx.Data{Key: "package", Value: pkg.Name}, logx.Data{Key: "original", Value: originalName})
			p.securityLogger.Log(context.Background(), sigAdoptionRefused, "original package is still installed",
				logx.SecurityData{Key: "package", Value: pkg.Name},
				logx.SecurityData{Key: "original", Value: originalName},
			)
			continue
		}

		permissions := newState.SystemState.Permissions
		changed := false
		permissions.Each(func(_ int, name string, permission access.Permission) {
			if permission.Info.PackageName != originalName {
				return
			}
			// Ownership moves; name and protection level are kept.
			permission.Info.PackageName = pkg.Name
			permission.AppID = pkg.AppID
			permission.Reconciled = false
			permissions.Put(name, permission)
			changed = true
		})

		if changed {
			newState.SystemState.RequestWrite(state.WriteModeAsync)
		}
	}
}

func (p *UIDPermissionPolicy) addPermissionGroups(newState *state.AccessState, pkg *access.PackageState) {
	if len(pkg.PermissionGroups) == 0 {
		return
	}

	if pkg.InstantOnly() {
		p.logger.Info(droppedPermissionGroups, logx.Data{Key: "package", Value: pkg.Name})
		p.securityLogger.Log(context.Background(), sigGroupDeclarationRefused, "instant apps cannot declare permission groups",
			logx.SecurityData{Key: "package", Value: pkg.Name},
		)
		return
	}

	groups := newState.SystemState.PermissionGroups
	changed := false
	for _, groupName := range pkg.PermissionGroups {
		existing, ok := groups.Get(groupName)
		if ok && existing.PackageName != pkg.Name {
			// First declarer wins; the collision is dropped, not
			// surfaced to the caller.
			p.logger.Info(droppedPermissionGroup,
				logx.Data{Key: "group", Value: groupName},
				logx.Data{Key: "package", Value: pkg.Name},
				logx.Data{Key: "owner", Value: existing.PackageName},
			)
			p.securityLogger.Log(context.Background(), sigGroupDeclarationRefused, "group is owned by another package",
				logx.SecurityData{Key: "group", Value: groupName},
				logx.SecurityData{Key: "package", Value: pkg.Name},
				logx.SecurityData{Key: "owner", Value: existing.PackageName},
			)
			continue
		}

		groups.Put(groupName, access.PermissionGroup{
			Name:        groupName,
			PackageName: pkg.Name,
		})
		changed = true
	}

	if changed {
		newState.SystemState.RequestWrite(state.WriteModeAsync)
	}
}

func (p *UIDPermissionPolicy) addPermissions(newState *state.AccessState, pkg *access.PackageState) {
	if len(pkg.Permissions) == 0 {
		return
	}

	permissions := newState.SystemState.Permissions
	changed := false
	for _, info := range pkg.Permissions {
		existing, ok := permissions.Get(info.Name)
		if ok && existing.Info.PackageName != pkg.Name {
			p.logger.Info(droppedPermission,
				logx.Data{Key: "permission", Value: info.Name},
				logx.Data{Key: "package", Value: pkg.Name},
				logx.Data{Key: "owner", Value: existing.Info.PackageName},
			)
			continue
		}

		info.PackageName = pkg.Name
		permissions.Put(info.Name, access.Permission{
			Info:       info,
			Reconciled: true,
			Type:       access.PermissionTypeManifest,
			AppID:      pkg.AppID,
		})
		changed = true
	}

	if changed {
		newState.SystemState.RequestWrite(state.WriteModeAsync)
	}
}

// OnPackageRemoved drops permission groups and permissions solely
// owned by the removed package. Explicit per-uid flags naming a
// removed permission are left to the reconcile pass; pruning them here
// is an extension point.
func (p *UIDPermissionPolicy) OnPackageRemoved(packageName string, appID access.AppID, oldState, newState *state.AccessState) {
	groups := newState.SystemState.PermissionGroups
	var removedGroups []string
	groups.Each(func(_ int, name string, group access.PermissionGroup) {
		if group.PackageName == packageName {
			removedGroups = append(removedGroups, name)
		}
	})
	for _, name := range removedGroups {
		groups.Remove(name)
	}

	permissions := newState.SystemState.Permissions
	var removedPermissions []string
	permissions.Each(func(_ int, name string, permission access.Permission) {
		if permission.Info.PackageName == packageName {
			removedPermissions = append(removedPermissions, name)
		}
	})
	for _, name := range removedPermissions {
		permissions.Remove(name)
	}

	if len(removedGroups) > 0 || len(removedPermissions) > 0 {
		newState.SystemState.RequestWrite(state.WriteModeAsync)
	}
}
