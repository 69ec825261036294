package pkgmanager

import (
	"context"
	"errors"
	"strings"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls   []call
	failOn  map[string]error
	missing bool
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	if err, ok := f.failOn[strings.Join(args, " ")]; ok {
		return err
	}
	return nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}
