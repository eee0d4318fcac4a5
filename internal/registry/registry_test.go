//file: internal/registry/registry_test.go

package registry

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"
)

type testLogger struct {
	warnings []string
}

func (l *testLogger) Warn(msg string, args ...interface{})  { l.warnings = append(l.warnings, msg) }
func (l *testLogger) Debug(msg string, args ...interface{}) {}

func addSubcommand(name string) func(*cobra.Command) error {
	return func(root *cobra.Command) error {
		root.AddCommand(&cobra.Command{Use: name, Run: func(*cobra.Command, []string) {}})
		return nil
	}
}

func TestApplySkipsBadEntriesAndKeepsOrder(t *testing.T) {
	reg := New()
	reg.AddAll([]Registration{
		{Name: "alpha", Register: addSubcommand("alpha")},
		{Name: "broken", Register: nil},
		{Name: "charlie", Register: addSubcommand("charlie")},
	})

	root := &cobra.Command{Use: "root"}
	log := &testLogger{}
	registered := reg.Apply(root, log)

	if registered != 2 {
		t.Errorf("registered = %d, want 2", registered)
	}
	if len(log.warnings) != 1 {
		t.Errorf("warnings = %d, want 1 for the nil entry", len(log.warnings))
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "charlie" {
		t.Errorf("command order = %v, want [alpha charlie]", names)
	}
}

func TestApplySkipsFailingRegistration(t *testing.T) {
	reg := New()
	reg.Add(Registration{Name: "bad", Register: func(*cobra.Command) error {
		return fmt.Errorf("refused")
	}})
	reg.Add(Registration{Name: "good", Register: addSubcommand("good")})

	root := &cobra.Command{Use: "root"}
	log := &testLogger{}

	if got := reg.Apply(root, log); got != 1 {
		t.Errorf("registered = %d, want 1", got)
	}
	if len(root.Commands()) != 1 || root.Commands()[0].Name() != "good" {
		t.Errorf("commands = %v, want only good", root.Commands())
	}
	if len(log.warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(log.warnings))
	}
}

func TestApplyEmptyRegistry(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	if got := New().Apply(root, &testLogger{}); got != 0 {
		t.Errorf("registered = %d, want 0", got)
	}
}
