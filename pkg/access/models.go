// Package access holds the domain model for the authorization ledger:
// subject and object identities, decision values, and the package
// metadata the policies react to.
package access

// Subject and object schemes. A (subject scheme, object scheme) pair
// selects the policy responsible for that kind of authorization fact.
const (
	UIDScheme        = "uid"
	PermissionScheme = "permission"
	AppOpScheme      = "app-op"
)

type Subject interface {
	SubjectScheme() string
}

type Object interface {
	ObjectScheme() string
}

// UserID identifies a user. AppID is the numeric identity shared by
// all UIDs belonging to the same installed package across users; the
// platform recycles app ids when packages are removed.
type UserID int32

type AppID int32

// UID is the per-user identity of an app: the (user, app id) pair.
type UID struct {
	UserID UserID
	AppID  AppID
}

func (UID) SubjectScheme() string { return UIDScheme }

type PermissionName string

func (PermissionName) ObjectScheme() string { return PermissionScheme }

type AppOpName string

func (AppOpName) ObjectScheme() string { return AppOpScheme }

// Decision is the raw value a policy stores for a (subject, object)
// pair. Each policy interprets it as its own closed type: AppOpMode
// for the app-op policy, PermissionFlags for the permission policy.
type Decision int32
