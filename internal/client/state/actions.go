package state

import "github.com/khoahotran/devconnector/internal/client/api"

// Action is a state transition request. The set is closed: only the types in
// this file implement it.
type Action interface {
	action()
}

type (
	RegisterSuccess struct{ Token string }
	RegisterFail    struct{}
	LoginSuccess    struct{ Token string }
	LoginFail       struct{}
	UserLoaded      struct{ User api.User }
	AuthError       struct{}
	Logout          struct{}
	AccountDeleted  struct{}

	GetProfile    struct{ Profile api.Profile }
	GetProfiles   struct{ Profiles []api.Profile }
	UpdateProfile struct{ Profile api.Profile }
	ProfileError  struct{ Err ProfileErr }
	ClearProfile  struct{}

	SetAlert    struct{ Alert Alert }
	RemoveAlert struct{ ID string }
)

func (RegisterSuccess) action() {}
func (RegisterFail) action()    {}
func (LoginSuccess) action()    {}
func (LoginFail) action()       {}
func (UserLoaded) action()      {}
func (AuthError) action()       {}
func (Logout) action()          {}
func (AccountDeleted) action()  {}
func (GetProfile) action()      {}
func (GetProfiles) action()     {}
func (UpdateProfile) action()   {}
func (ProfileError) action()    {}
func (ClearProfile) action()    {}
func (SetAlert) action()        {}
func (RemoveAlert) action()     {}
