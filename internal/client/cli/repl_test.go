package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which commands the REPL dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error     { return f.record("login") }
func (f *fakeExec) LoginOTP(ctx context.Context) error  { return f.record("otp") }
func (f *fakeExec) Register(ctx context.Context) error  { return f.record("register") }
func (f *fakeExec) Shop(ctx context.Context) error      { return f.record("shop") }
func (f *fakeExec) Search(ctx context.Context) error    { return f.record("search") }
func (f *fakeExec) ShowProduct(ctx context.Context) error {
	return f.record("product")
}
func (f *fakeExec) ShowCart(ctx context.Context) error    { return f.record("cart") }
func (f *fakeExec) Add(ctx context.Context) error         { return f.record("add") }
func (f *fakeExec) Update(ctx context.Context) error      { return f.record("update") }
func (f *fakeExec) Remove(ctx context.Context) error      { return f.record("remove") }
func (f *fakeExec) EmptyCart(ctx context.Context) error   { return f.record("emptycart") }
func (f *fakeExec) Checkout(ctx context.Context) error    { return f.record("checkout") }
func (f *fakeExec) Orders(ctx context.Context) error      { return f.record("orders") }
func (f *fakeExec) ShowOrder(ctx context.Context) error   { return f.record("order") }
func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("editprofile") }
func (f *fakeExec) Logout(ctx context.Context) error      { return f.record("logout") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	return &lines
}

func runWith(t *testing.T, f *fakeExec, input string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true}

	runWith(t, f, "shop\nsearch\nadd\ncart\ncheckout\nlogout\nexit\n")

	assert.Equal(t, []string{"shop", "search", "add", "cart", "checkout", "logout"}, f.calls)
}

func TestREPL_ExitStopsTheLoop(t *testing.T) {
	f := &fakeExec{}

	out := runWith(t, f, "exit\nshop\n")

	assert.Empty(t, f.calls, "nothing after exit is executed")
	assert.Contains(t, strings.Join(out, ""), "Bye!")
}

func TestREPL_StopsAtEOF(t *testing.T) {
	f := &fakeExec{}
	runWith(t, f, "shop")
	assert.Equal(t, []string{"shop"}, f.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}

	out := runWith(t, f, "teleport\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, strings.Join(out, ""), "Unknown command: teleport")
}

func TestREPL_BlankLinesAreIgnored(t *testing.T) {
	f := &fakeExec{}
	runWith(t, f, "\n   \nshop\nexit\n")
	assert.Equal(t, []string{"shop"}, f.calls)
}

func TestREPL_HelpFollowsSession(t *testing.T) {
	f := &fakeExec{}
	out := strings.Join(runWith(t, f, "help\nexit\n"), "")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "checkout")

	f = &fakeExec{loggedIn: true}
	out = strings.Join(runWith(t, f, "help\nexit\n"), "")
	assert.Contains(t, out, "checkout")
}

func TestREPL_ExtraTokensAreIgnored(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runWith(t, f, "shop now please\nexit\n")
	assert.Equal(t, []string{"shop"}, f.calls)
}
