// Package nav describes what the client should do after an action
// completes, and which links the navigation bar shows.
package nav

// Action is the follow-up of a completed user action.
type Action interface {
	nav()
}

// NoAction leaves the current view in place.
type NoAction struct{}

// Navigate moves to the route To.
type Navigate struct {
	To string
}

// Invoke runs Handler in place of navigating.
type Invoke struct {
	Handler func()
}

func (NoAction) nav() {}
func (Navigate) nav() {}
func (Invoke) nav()   {}

type Navigator interface {
	Navigate(to string)
}

// Resolve carries out a. A nil action is a NoAction.
func Resolve(a Action, n Navigator) {
	switch a := a.(type) {
	case Navigate:
		n.Navigate(a.To)
	case Invoke:
		if a.Handler != nil {
			a.Handler()
		}
	}
}

const (
	RouteCommunity = "/community"
	RouteProfile   = "/profile"
	RouteDashboard = "/dashboard"
	RouteRegister  = "/register"
	RouteLogin     = "/login"
)

type Link struct {
	Title  string
	Action Action
}

// Menu returns the navigation links for the session. logout backs the
// logout link and is only used when authenticated.
func Menu(isAuthenticated bool, logout func()) []Link {
	if isAuthenticated {
		return []Link{
			{Title: "community", Action: Navigate{To: RouteCommunity}},
			{Title: "profile", Action: Navigate{To: RouteProfile}},
			{Title: "logout", Action: Invoke{Handler: logout}},
		}
	}
	return []Link{
		{Title: "community", Action: Navigate{To: RouteCommunity}},
		{Title: "register", Action: Navigate{To: RouteRegister}},
		{Title: "login", Action: Navigate{To: RouteLogin}},
	}
}
