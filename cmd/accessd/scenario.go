package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/policy"
	"code.cloudfoundry.org/access/pkg/access/store"
	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/metrics"
)

// Scenario is the JSON input: optional app-op default modes and an
// ordered list of events to replay.
type Scenario struct {
	AppOpDefaults map[string]string `json:"appOpDefaults,omitempty"`
	Events        []Event           `json:"events"`
}

type Event struct {
	Type string `json:"type"`

	UserID *int32 `json:"userId,omitempty"`

	Package     *PackageEvent `json:"package,omitempty"`
	PackageName string        `json:"packageName,omitempty"`

	AppID      *int32 `json:"appId,omitempty"`
	AppOp      string `json:"appOp,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Permission string `json:"permission,omitempty"`
	Granted    *bool  `json:"granted,omitempty"`
}

type PackageEvent struct {
	Name             string             `json:"name"`
	AppID            int32              `json:"appId"`
	System           bool               `json:"system"`
	Installed        bool               `json:"installed"`
	AdoptPermissions []string           `json:"adoptPermissions,omitempty"`
	Permissions      []PermissionEvent  `json:"permissions,omitempty"`
	PermissionGroups []string           `json:"permissionGroups,omitempty"`
	Users            []PackageUserEvent `json:"users,omitempty"`
}

type PermissionEvent struct {
	Name            string `json:"name"`
	Group           string `json:"group,omitempty"`
	ProtectionLevel string `json:"protectionLevel,omitempty"`
}

type PackageUserEvent struct {
	UserID     int32 `json:"userId"`
	Installed  bool  `json:"installed"`
	InstantApp bool  `json:"instantApp"`
}

func loadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sc Scenario
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

func (sc *Scenario) defaults() (access.StaticAppOpDefaults, error) {
	defaults := access.StaticAppOpDefaults{}
	for op, name := range sc.AppOpDefaults {
		mode, err := parseAppOpMode(name)
		if err != nil {
			return nil, err
		}
		defaults[access.AppOpName(op)] = mode
	}
	return defaults, nil
}

// newStore builds a store wired with the standard uid policies and the
// scenario's default modes.
func (sc *Scenario) newStore(logger logx.Logger, securityLogger logx.SecurityLogger, statter metrics.Statter) (*store.Store, error) {
	defaults, err := sc.defaults()
	if err != nil {
		return nil, err
	}

	registry := policy.NewRegistry(
		policy.NewUIDAppOpPolicy(logger, defaults),
		policy.NewUIDPermissionPolicy(logger, securityLogger),
	)
	return store.NewStore(registry,
		store.WithLogger(logger),
		store.WithStatter(statter),
	), nil
}

func (sc *Scenario) apply(ctx context.Context, st *store.Store) error {
	for i, event := range sc.Events {
		if err := applyEvent(ctx, st, event); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, event.Type, err)
		}
	}
	return nil
}

func applyEvent(ctx context.Context, st *store.Store, event Event) error {
	switch event.Type {
	case "add-user":
		if event.UserID == nil {
			return fmt.Errorf("missing userId")
		}
		return st.AddUser(ctx, access.UserID(*event.UserID))

	case "remove-user":
		if event.UserID == nil {
			return fmt.Errorf("missing userId")
		}
		return st.RemoveUser(ctx, access.UserID(*event.UserID))

	case "add-package":
		if event.Package == nil {
			return fmt.Errorf("missing package")
		}
		return st.AddPackage(ctx, event.Package.toPackageState())

	case "remove-package":
		if event.PackageName == "" {
			return fmt.Errorf("missing packageName")
		}
		return st.RemovePackage(ctx, event.PackageName)

	case "set-app-op-mode":
		uid, err := eventUID(event)
		if err != nil {
			return err
		}
		if event.AppOp == "" {
			return fmt.Errorf("missing appOp")
		}
		mode, err := parseAppOpMode(event.Mode)
		if err != nil {
			return err
		}
		return st.SetDecision(ctx, uid, access.AppOpName(event.AppOp), access.Decision(mode))

	case "set-permission-flags":
		uid, err := eventUID(event)
		if err != nil {
			return err
		}
		if event.Permission == "" {
			return fmt.Errorf("missing permission")
		}
		var flags access.PermissionFlags
		if event.Granted != nil && *event.Granted {
			flags = access.PermissionFlagGranted
		}
		return st.SetDecision(ctx, uid, access.PermissionName(event.Permission), access.Decision(flags))

	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}

func eventUID(event Event) (access.UID, error) {
	if event.UserID == nil {
		return access.UID{}, fmt.Errorf("missing userId")
	}
	if event.AppID == nil {
		return access.UID{}, fmt.Errorf("missing appId")
	}
	return access.UID{
		UserID: access.UserID(*event.UserID),
		AppID:  access.AppID(*event.AppID),
	}, nil
}

func (p *PackageEvent) toPackageState() *access.PackageState {
	pkg := &access.PackageState{
		Name:             p.Name,
		AppID:            access.AppID(p.AppID),
		System:           p.System,
		Installed:        p.Installed,
		AdoptPermissions: p.AdoptPermissions,
		PermissionGroups: p.PermissionGroups,
		UserStates:       make(map[access.UserID]access.PackageUserState),
	}
	for _, permission := range p.Permissions {
		pkg.Permissions = append(pkg.Permissions, access.PermissionInfo{
			Name:            permission.Name,
			PackageName:     p.Name,
			Group:           permission.Group,
			ProtectionLevel: permission.ProtectionLevel,
		})
	}
	for _, user := range p.Users {
		pkg.UserStates[access.UserID(user.UserID)] = access.PackageUserState{
			Installed:  user.Installed,
			InstantApp: user.InstantApp,
		}
	}
	return pkg
}

func parseAppOpMode(name string) (access.AppOpMode, error) {
	switch name {
	case "allowed":
		return access.AppOpModeAllowed, nil
	case "ignored":
		return access.AppOpModeIgnored, nil
	case "errored":
		return access.AppOpModeErrored, nil
	case "default", "":
		return access.AppOpModeDefault, nil
	case "foreground":
		return access.AppOpModeForeground, nil
	default:
		return 0, fmt.Errorf("unknown app-op mode %q", name)
	}
}
