package guard_test

import (
	"testing"

	"taskdeck/internal/guard"
	"taskdeck/internal/session"
)

var (
	anon  = session.Session{}
	authd = session.Session{Token: "T1"}
)

func TestAnonymousOnly(t *testing.T) {
	if ok, _ := guard.AnonymousOnly(anon); !ok {
		t.Error("anonymous session should render anonymous-only content")
	}
	ok, redirect := guard.AnonymousOnly(authd)
	if ok {
		t.Error("authenticated session should not render anonymous-only content")
	}
	if redirect != guard.RouteHome {
		t.Errorf("redirect = %q, want %q", redirect, guard.RouteHome)
	}
}

func TestAuthenticatedOnly(t *testing.T) {
	if ok, _ := guard.AuthenticatedOnly(authd); !ok {
		t.Error("authenticated session should render protected content")
	}
	ok, redirect := guard.AuthenticatedOnly(anon)
	if ok {
		t.Error("anonymous session should not render protected content")
	}
	if redirect != guard.RouteLogin {
		t.Errorf("redirect = %q, want %q", redirect, guard.RouteLogin)
	}
}

func TestGuardsAreExactInverses(t *testing.T) {
	for _, s := range []session.Session{anon, authd} {
		anonOK, _ := guard.AnonymousOnly(s)
		authOK, _ := guard.AuthenticatedOnly(s)
		if anonOK == authOK {
			t.Errorf("guards agreed for session %+v; they must be inverses", s)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		session session.Session
		route   guard.Route
		want    guard.Route
	}{
		{"anon login", anon, guard.RouteLogin, guard.RouteLogin},
		{"anon register", anon, guard.RouteRegister, guard.RouteRegister},
		{"anon home", anon, guard.RouteHome, guard.RouteLogin},
		{"anon profile", anon, guard.RouteProfile, guard.RouteLogin},
		{"authed login", authd, guard.RouteLogin, guard.RouteHome},
		{"authed register", authd, guard.RouteRegister, guard.RouteHome},
		{"authed home", authd, guard.RouteHome, guard.RouteHome},
		{"authed profile", authd, guard.RouteProfile, guard.RouteProfile},
	}
	for _, tt := range tests {
		if got := guard.Resolve(tt.session, tt.route); got != tt.want {
			t.Errorf("%s: Resolve = %q, want %q", tt.name, got, tt.want)
		}
	}
}
