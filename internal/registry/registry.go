//file: internal/registry/registry.go

// Package registry holds the explicit command registry. Commands are
// enumerable (name, register function) pairs applied to the root
// program in insertion order, which is also the order they appear in
// help output.
package registry

import (
	"github.com/spf13/cobra"
)

// Logger is the minimal logging surface the registry needs.
type Logger interface {
	Warn(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// Registration binds a command name to the function that attaches it
// to the root program. Register mutates the program as a side effect.
type Registration struct {
	Name     string
	Register func(root *cobra.Command) error
}

// Registry is an ordered collection of command registrations.
type Registry struct {
	entries []Registration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends a registration, preserving insertion order.
func (r *Registry) Add(reg Registration) {
	r.entries = append(r.entries, reg)
}

// AddAll appends several registrations in the given order.
func (r *Registry) AddAll(regs []Registration) {
	r.entries = append(r.entries, regs...)
}

// Len reports how many registrations are held.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Apply invokes every registration against root in order. An entry
// with no register function, or one whose register function fails, is
// skipped with a warning naming it; one bad entry must not prevent the
// rest of the CLI from loading. Returns the number of commands
// actually registered.
func (r *Registry) Apply(root *cobra.Command, log Logger) int {
	registered := 0
	for _, entry := range r.entries {
		if entry.Register == nil {
			log.Warn("skipping command with no register function", "command", entry.Name)
			continue
		}
		if err := entry.Register(root); err != nil {
			log.Warn("skipping command that failed to register",
				"command", entry.Name,
				"error", err.Error())
			continue
		}
		log.Debug("registered command", "command", entry.Name)
		registered++
	}
	return registered
}
