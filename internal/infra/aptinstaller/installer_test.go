package aptinstaller

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type recordedCall struct {
	name string
	args []string
}

type fakeProcessRunner struct {
	calls []recordedCall
	err   error
}

func (f *fakeProcessRunner) Run(_ context.Context, dir string, name string, args ...string) error {
	if dir != "" {
		return errors.New("apt must not be workspace-scoped")
	}
	f.calls = append(f.calls, recordedCall{name: name, args: args})
	return f.err
}

func TestUpdate_UsesSudoApt(t *testing.T) {
	procs := &fakeProcessRunner{}
	i := New(procs)

	if err := i.Update(context.Background()); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if len(procs.calls) != 1 {
		t.Fatalf("expected 1 call, got=%d", len(procs.calls))
	}
	call := procs.calls[0]
	if call.name != "sudo" {
		t.Fatalf("expected sudo, got=%s", call.name)
	}
	if !reflect.DeepEqual(call.args, []string{"apt", "update"}) {
		t.Fatalf("unexpected args: %v", call.args)
	}
}

func TestInstall_SingleInvocationWithAllPackages(t *testing.T) {
	procs := &fakeProcessRunner{}
	i := New(procs)

	pkgs := []string{"ros-humble-desktop", "ros-humble-xacro"}
	if err := i.Install(context.Background(), pkgs); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	if len(procs.calls) != 1 {
		t.Fatalf("expected exactly 1 install invocation, got=%d", len(procs.calls))
	}
	want := []string{"apt", "install", "-y", "ros-humble-desktop", "ros-humble-xacro"}
	if !reflect.DeepEqual(procs.calls[0].args, want) {
		t.Fatalf("unexpected args: %v", procs.calls[0].args)
	}
}

func TestInstall_EmptyListIsNoop(t *testing.T) {
	procs := &fakeProcessRunner{}
	i := New(procs)

	if err := i.Install(context.Background(), nil); err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if len(procs.calls) != 0 {
		t.Fatalf("expected no invocations, got=%d", len(procs.calls))
	}
}

func TestInstall_WithoutSudo(t *testing.T) {
	procs := &fakeProcessRunner{}
	i := New(procs, WithSudo(false), WithAptBin("apt-get"))

	if err := i.Install(context.Background(), []string{"curl"}); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	call := procs.calls[0]
	if call.name != "apt-get" {
		t.Fatalf("expected apt-get, got=%s", call.name)
	}
	if !reflect.DeepEqual(call.args, []string{"install", "-y", "curl"}) {
		t.Fatalf("unexpected args: %v", call.args)
	}
}

func TestUpdate_PropagatesError(t *testing.T) {
	boom := errors.New("exit 100")
	procs := &fakeProcessRunner{err: boom}
	i := New(procs)

	if err := i.Update(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected runner error, got: %v", err)
	}
}
