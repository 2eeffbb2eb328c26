package main

import (
	"context"
	"encoding/json"
	"os"

	cmdflags "code.cloudfoundry.org/access/cmd/flags"
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
	"code.cloudfoundry.org/access/pkg/access/state"
)

type ReplayCommand struct {
	Logger      cmdflags.LagerFlag
	StatsD      cmdflags.StatsDFlag
	SecurityLog cmdflags.SecurityLogFlag

	Scenario string `long:"scenario" description:"File path of the JSON scenario to replay" required:"true"`
}

func (cmd ReplayCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("accessd").WithName("replay")

	sc, err := loadScenario(cmd.Scenario)
	if err != nil {
		return err
	}

	statter, err := cmd.StatsD.Statter(logger)
	if err != nil {
		return err
	}

	securityLogger, closeSecurityLog, err := cmd.SecurityLog.Logger(logger)
	if err != nil {
		return err
	}
	defer closeSecurityLog()

	st, err := sc.newStore(logger, securityLogger, statter)
	if err != nil {
		return err
	}

	if err := sc.apply(context.Background(), st); err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dumpSnapshot(st.Current()))
}

type snapshotDump struct {
	System systemDump `json:"system"`
	Users  []userDump `json:"users"`
}

type systemDump struct {
	UserIDs          []int32          `json:"userIds"`
	Packages         []string         `json:"packages"`
	AppIDs           []appIDDump      `json:"appIds"`
	PermissionGroups []groupDump      `json:"permissionGroups"`
	Permissions      []permissionDump `json:"permissions"`
}

type appIDDump struct {
	AppID    int32    `json:"appId"`
	Packages []string `json:"packages"`
}

type groupDump struct {
	Name        string `json:"name"`
	PackageName string `json:"packageName"`
}

type permissionDump struct {
	Name            string `json:"name"`
	PackageName     string `json:"packageName"`
	Group           string `json:"group,omitempty"`
	ProtectionLevel string `json:"protectionLevel,omitempty"`
}

type userDump struct {
	UserID          int32                 `json:"userId"`
	AppOpModes      []appOpModeDump       `json:"appOpModes"`
	PermissionFlags []permissionFlagsDump `json:"permissionFlags"`
}

type appOpModeDump struct {
	AppID int32  `json:"appId"`
	AppOp string `json:"appOp"`
	Mode  string `json:"mode"`
}

type permissionFlagsDump struct {
	AppID      int32  `json:"appId"`
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
}

func dumpSnapshot(st *state.AccessState) snapshotDump {
	dump := snapshotDump{
		System: systemDump{
			UserIDs:          []int32{},
			Packages:         []string{},
			AppIDs:           []appIDDump{},
			PermissionGroups: []groupDump{},
			Permissions:      []permissionDump{},
		},
		Users: []userDump{},
	}

	systemState := st.SystemState
	systemState.UserIDs.Each(func(_ int, userID access.UserID) {
		dump.System.UserIDs = append(dump.System.UserIDs, int32(userID))
	})
	systemState.Packages.EachKey(func(_ int, name string) {
		dump.System.Packages = append(dump.System.Packages, name)
	})
	systemState.AppIDs.Each(func(_ int, appID access.AppID, names *indexed.Set[string]) {
		dump.System.AppIDs = append(dump.System.AppIDs, appIDDump{
			AppID:    int32(appID),
			Packages: names.Members(),
		})
	})
	systemState.PermissionGroups.EachValue(func(_ int, group access.PermissionGroup) {
		dump.System.PermissionGroups = append(dump.System.PermissionGroups, groupDump{
			Name:        group.Name,
			PackageName: group.PackageName,
		})
	})
	systemState.Permissions.EachValue(func(_ int, permission access.Permission) {
		dump.System.Permissions = append(dump.System.Permissions, permissionDump{
			Name:            permission.Info.Name,
			PackageName:     permission.Info.PackageName,
			Group:           permission.Info.Group,
			ProtectionLevel: permission.Info.ProtectionLevel,
		})
	})

	st.UserStates.Each(func(_ int, userID access.UserID, userState *state.UserState) {
		user := userDump{
			UserID:          int32(userID),
			AppOpModes:      []appOpModeDump{},
			PermissionFlags: []permissionFlagsDump{},
		}
		userState.UIDAppOpModes.Each(func(_ int, appID access.AppID, modes *indexed.Map[string, access.AppOpMode]) {
			modes.Each(func(_ int, op string, mode access.AppOpMode) {
				user.AppOpModes = append(user.AppOpModes, appOpModeDump{
					AppID: int32(appID),
					AppOp: op,
					Mode:  mode.String(),
				})
			})
		})
		userState.PermissionFlags.Each(func(_ int, appID access.AppID, flags *indexed.Map[string, access.PermissionFlags]) {
			flags.Each(func(_ int, permission string, value access.PermissionFlags) {
				user.PermissionFlags = append(user.PermissionFlags, permissionFlagsDump{
					AppID:      int32(appID),
					Permission: permission,
					Granted:    value&access.PermissionFlagGranted != 0,
				})
			})
		})
		dump.Users = append(dump.Users, user)
	})

	return dump
}
