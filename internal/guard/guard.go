// Package guard gates navigation on session presence.
//
// Both guards check only that a session record exists; token validity is the
// server's concern and a rejected token surfaces later as an unauthorized
// response.
package guard

import "taskdeck/internal/session"

// Route names an in-app destination.
type Route string

const (
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
	RouteHome     Route = "home"
	RouteProfile  Route = "profile"
)

// Guard decides whether a route may render for the given session.
// When it may not, the second return names the redirect destination.
type Guard func(s session.Session) (ok bool, redirect Route)

// AnonymousOnly admits only logged-out sessions; authenticated users are
// redirected home. Protects login and register.
func AnonymousOnly(s session.Session) (bool, Route) {
	if s.Authenticated() {
		return false, RouteHome
	}
	return true, ""
}

// AuthenticatedOnly admits only logged-in sessions; anonymous users are
// redirected to login. Protects home and profile.
func AuthenticatedOnly(s session.Session) (bool, Route) {
	if !s.Authenticated() {
		return false, RouteLogin
	}
	return true, ""
}

// For returns the guard protecting the given route.
func For(r Route) Guard {
	switch r {
	case RouteLogin, RouteRegister:
		return AnonymousOnly
	default:
		return AuthenticatedOnly
	}
}

// Resolve applies the route's guard and returns the destination that should
// actually render: the route itself when admitted, the redirect otherwise.
func Resolve(s session.Session, r Route) Route {
	ok, redirect := For(r)(s)
	if ok {
		return r
	}
	return redirect
}
