package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskdeck/internal/cli"
	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, store *session.Store) (service.Service, error) {
		return svc, nil
	}
}

// newDispatcher builds a dispatcher whose session file lives in a temp dir.
// Pass the returned dir as -config so commands share it.
func newDispatcher(t *testing.T, svc *testutil.FakeService) (*cli.Dispatcher, string) {
	t.Helper()
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))
	return d, t.TempDir()
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d, _ := newDispatcher(t, testutil.NewFakeService())

	_, stderr, code := run(t, d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d, _ := newDispatcher(t, testutil.NewFakeService())

	_, stderr, code := run(t, d, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	d, dir := newDispatcher(t, testutil.NewFakeService())

	_, stderr, code := run(t, d, "version", "-config", dir, "-bogus")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -bogus\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpAndAliases(t *testing.T) {
	d, _ := newDispatcher(t, testutil.NewFakeService())

	stdout, stderr, code := run(t, d, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_NoArgsOpensBoard(t *testing.T) {
	d, _ := newDispatcher(t, testutil.NewFakeService())

	ran := false
	prev := commands.RunBoard
	commands.RunBoard = func(ctx context.Context, env *commands.Env) error {
		ran = true
		if env.Svc == nil {
			t.Error("board should receive a service")
		}
		if env.Sessions == nil {
			t.Error("board should receive the session store")
		}
		return nil
	}
	defer func() { commands.RunBoard = prev }()

	_, stderr, code := run(t, d)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !ran {
		t.Error("no arguments should open the interactive board")
	}
}

func TestDispatcher_LoginGuardRedirectsWhenAuthenticated(t *testing.T) {
	svc := testutil.NewFakeService()
	d, dir := newDispatcher(t, svc)

	// Log in once, then try again through the same config dir.
	_, stderr, code := run(t, d, "login", "-config", dir, "-email", "a@b.com", "-password", "x")
	if code != exitcode.Success {
		t.Fatalf("login failed: code %d, stderr %q", code, stderr)
	}

	stdout, _, code := run(t, d, "login", "-config", dir, "-email", "a@b.com", "-password", "x")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "already logged in as a@b.com\n" {
		t.Errorf("expected redirect message, got %q", stdout)
	}
	if got := len(svc.Calls); got != 1 {
		t.Errorf("second login must not reach the network; calls = %v", svc.Calls)
	}
}

func TestDispatcher_AuthGuardBlocksAnonymous(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTasks(2)
	d, dir := newDispatcher(t, svc)

	_, stderr, code := run(t, d, "list", "-config", dir)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: taskdeck login)\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("guarded command must not reach the network; calls = %v", svc.Calls)
	}
}

func TestDispatcher_LoginThenListRoundTrip(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTasks(1)
	d, dir := newDispatcher(t, svc)

	_, stderr, code := run(t, d, "login", "-config", dir, "-email", "a@b.com", "-password", "x")
	if code != exitcode.Success {
		t.Fatalf("login failed: code %d, stderr %q", code, stderr)
	}

	stdout, stderr, code := run(t, d, "list", "-config", dir)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "Task 1") {
		t.Errorf("expected task listing, got %q", stdout)
	}
	if !strings.HasSuffix(stdout, "page 1/1  (1 tasks)\n") {
		t.Errorf("footer wrong: %q", stdout)
	}
}

func TestDispatcher_AliasDispatch(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTasks(1)
	d, dir := newDispatcher(t, svc)

	if _, stderr, code := run(t, d, "login", "-config", dir, "-email", "a@b.com", "-password", "x"); code != exitcode.Success {
		t.Fatalf("login failed: %q", stderr)
	}

	stdout, _, code := run(t, d, "ls", "-config", dir)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Task 1") {
		t.Errorf("alias should behave like the command, got %q", stdout)
	}
}

func TestDispatcher_QuietSuppressesChrome(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTasks(1)
	d, dir := newDispatcher(t, svc)

	if _, stderr, code := run(t, d, "login", "-config", dir, "-quiet", "-email", "a@b.com", "-password", "x"); code != exitcode.Success {
		t.Fatalf("login failed: %q", stderr)
	}

	stdout, _, code := run(t, d, "list", "-config", dir, "-quiet")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if strings.Contains(stdout, "page ") {
		t.Errorf("quiet list should omit the footer, got %q", stdout)
	}
	if !strings.Contains(stdout, "Task 1") {
		t.Errorf("quiet list should still print rows, got %q", stdout)
	}
}
