// Package state is the client-side state container: one State value changed
// only by dispatching Actions through pure reducers.
package state

import "github.com/khoahotran/devconnector/internal/client/api"

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertDanger  AlertType = "danger"
)

type Alert struct {
	ID   string
	Msg  string
	Type AlertType
}

type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	User            *api.User
}

type ProfileErr struct {
	Msg    string
	Status int
}

type ProfileState struct {
	Profile  *api.Profile
	Profiles []api.Profile
	Loading  bool
	Error    *ProfileErr
}

type State struct {
	Auth    AuthState
	Profile ProfileState
	Alerts  []Alert
}

// Initial is the state before the session has been restored.
func Initial(token string) State {
	return State{
		Auth:    AuthState{Token: token, Loading: true},
		Profile: ProfileState{Profiles: []api.Profile{}, Loading: true},
		Alerts:  []Alert{},
	}
}

// Reduce applies a to s. It never modifies s or anything s points to.
func Reduce(s State, a Action) State {
	return State{
		Auth:    reduceAuth(s.Auth, a),
		Profile: reduceProfile(s.Profile, a),
		Alerts:  reduceAlerts(s.Alerts, a),
	}
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case RegisterSuccess:
		return AuthState{Token: a.Token, IsAuthenticated: true, User: s.User}
	case LoginSuccess:
		return AuthState{Token: a.Token, IsAuthenticated: true, User: s.User}
	case UserLoaded:
		u := a.User
		s.IsAuthenticated = true
		s.Loading = false
		s.User = &u
		return s
	case RegisterFail, LoginFail, AuthError, Logout, AccountDeleted:
		return AuthState{}
	}
	return s
}

func reduceProfile(s ProfileState, a Action) ProfileState {
	switch a := a.(type) {
	case GetProfile:
		p := a.Profile
		s.Profile = &p
		s.Loading = false
		return s
	case UpdateProfile:
		p := a.Profile
		s.Profile = &p
		s.Loading = false
		return s
	case GetProfiles:
		s.Profiles = a.Profiles
		s.Loading = false
		return s
	case ProfileError:
		e := a.Err
		s.Error = &e
		s.Profile = nil
		s.Loading = false
		return s
	case ClearProfile:
		s.Profile = nil
		s.Loading = false
		return s
	}
	return s
}

func reduceAlerts(s []Alert, a Action) []Alert {
	switch a := a.(type) {
	case SetAlert:
		out := make([]Alert, 0, len(s)+1)
		return append(append(out, s...), a.Alert)
	case RemoveAlert:
		out := make([]Alert, 0, len(s))
		for _, al := range s {
			if al.ID != a.ID {
				out = append(out, al)
			}
		}
		return out
	}
	return s
}
