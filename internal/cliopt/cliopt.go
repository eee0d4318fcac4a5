//file: internal/cliopt/cliopt.go

// Package cliopt turns cobra/pflag flag sets into plain option maps
// with predictable boolean semantics: a command action can read any
// declared boolean flag without an existence check, while value-taking
// flags stay absent until someone actually sets them.
package cliopt

import (
	"github.com/spf13/pflag"
)

// Options is a flattened view of CLI options, keyed by flag name.
type Options map[string]interface{}

// OptionDef describes one declared CLI flag: its name and whether it
// takes a value argument (false for boolean switches).
type OptionDef struct {
	Name       string
	TakesValue bool
}

// BoolFlag declares a boolean switch.
func BoolFlag(name string) OptionDef {
	return OptionDef{Name: name}
}

// ValueFlag declares a value-taking option.
func ValueFlag(name string) OptionDef {
	return OptionDef{Name: name, TakesValue: true}
}

// DefsFromFlagSet derives option definitions from a pflag set. A flag
// whose value type is bool is a switch; everything else takes a value.
func DefsFromFlagSet(fs *pflag.FlagSet) []OptionDef {
	var defs []OptionDef
	fs.VisitAll(func(f *pflag.Flag) {
		defs = append(defs, OptionDef{
			Name:       f.Name,
			TakesValue: f.Value.Type() != "bool",
		})
	})
	return defs
}

// FromFlagSet builds an Options map containing only the flags the user
// explicitly set. Keeping unset flags out of the map is what lets the
// config cascade distinguish "passed as false" from "not passed".
func FromFlagSet(fs *pflag.FlagSet) Options {
	opts := Options{}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "bool":
			v, _ := fs.GetBool(f.Name)
			opts[f.Name] = v
		case "stringSlice":
			v, _ := fs.GetStringSlice(f.Name)
			opts[f.Name] = v
		case "stringArray":
			v, _ := fs.GetStringArray(f.Name)
			opts[f.Name] = v
		case "int":
			v, _ := fs.GetInt(f.Name)
			opts[f.Name] = v
		default:
			opts[f.Name] = f.Value.String()
		}
	})
	return opts
}

// Normalize returns a copy of opts where every declared boolean flag
// that is missing is set to false. Value-taking flags are left absent;
// they have no forced default. The input is never mutated.
func Normalize(opts Options, defs []OptionDef) Options {
	out := make(Options, len(opts)+len(defs))
	for k, v := range opts {
		out[k] = v
	}
	for _, def := range defs {
		if def.TakesValue {
			continue
		}
		if _, ok := out[def.Name]; !ok {
			out[def.Name] = false
		}
	}
	return out
}

// Merge combines globally-parsed options with the options parsed for
// one specific command, command-level values winning. The result keeps
// the "only explicitly set flags" property of its inputs, which the
// config cascade relies on.
func Merge(global Options, cmdOpts Options) Options {
	merged := make(Options, len(global)+len(cmdOpts))
	for k, v := range global {
		merged[k] = v
	}
	for k, v := range cmdOpts {
		merged[k] = v
	}
	return merged
}

// MergeForCommand combines globally-resolved options with the options
// parsed for one specific command, command-level values winning, then
// normalizes against the union of both flag sets. This is the single
// call an action handler needs to get a fully-populated, flag-complete
// options map.
func MergeForCommand(global Options, cmdOpts Options, globalDefs, cmdDefs []OptionDef) Options {
	return Normalize(Merge(global, cmdOpts), append(append([]OptionDef{}, globalDefs...), cmdDefs...))
}
