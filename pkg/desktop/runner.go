package desktop

import "os/exec"

// Runner abstracts the desktop configuration tools (gsettings,
// xfconf-query, qdbus, feh) behind a narrow, mockable surface. Exit
// status is the only success signal any of these tools give us.
type Runner interface {
	// LookPath reports whether the named tool is installed.
	LookPath(name string) (string, error)

	// Run executes the tool and waits for it to exit.
	Run(name string, args ...string) error

	// Output executes the tool and returns its stdout.
	Output(name string, args ...string) (string, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (execRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}
