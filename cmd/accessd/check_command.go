package main

import (
	"context"
	"fmt"

	cmdflags "code.cloudfoundry.org/access/cmd/flags"
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/metrics"
)

type CheckCommand struct {
	Logger cmdflags.LagerFlag

	Scenario string `long:"scenario" description:"File path of the JSON scenario to replay" required:"true"`

	UserID int32 `long:"user-id" description:"User of the queried UID" required:"true"`
	AppID  int32 `long:"app-id" description:"App id of the queried UID" required:"true"`

	AppOp      string `long:"app-op" description:"App-op name to query"`
	Permission string `long:"permission" description:"Permission name to query"`
}

func (cmd CheckCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("accessd").WithName("check")

	if (cmd.AppOp == "") == (cmd.Permission == "") {
		return fmt.Errorf("exactly one of --app-op and --permission must be given")
	}

	sc, err := loadScenario(cmd.Scenario)
	if err != nil {
		return err
	}

	st, err := sc.newStore(logger, logx.NoneSecurity, metrics.NoneStatter)
	if err != nil {
		return err
	}

	if err := sc.apply(context.Background(), st); err != nil {
		return err
	}

	uid := access.UID{
		UserID: access.UserID(cmd.UserID),
		AppID:  access.AppID(cmd.AppID),
	}

	if cmd.AppOp != "" {
		decision := st.GetDecision(uid, access.AppOpName(cmd.AppOp))
		fmt.Println(access.AppOpMode(decision).String())
		return nil
	}

	decision := st.GetDecision(uid, access.PermissionName(cmd.Permission))
	if access.PermissionFlags(decision)&access.PermissionFlagGranted != 0 {
		fmt.Println("granted")
	} else {
		fmt.Println("denied")
	}
	return nil
}
