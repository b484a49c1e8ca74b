// SPDX-License-Identifier: GPL-2.0-or-later

// Package alias lets scripts name command sequences.
package alias

import (
	"sort"
	"strings"

	"godescent/cbuf"
	"godescent/cmd"
	"godescent/conlog"
)

type Aliases struct {
	aliases map[string]string
}

func New() *Aliases {
	return &Aliases{make(map[string]string)}
}

// Register adds the alias commands to c.
func (al *Aliases) Register(c *cmd.Commands) error {
	if err := c.Add("alias", al.alias); err != nil {
		return err
	}
	if err := c.Add("unalias", al.unalias); err != nil {
		return err
	}
	return c.Add("unaliasall", al.unaliasAll)
}

func (al *Aliases) alias(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 0:
		al.list()
	case 1:
		if v, ok := al.aliases[args[0].String()]; ok {
			conlog.Printf("  %s: %s", args[0].String(), v)
		}
	default:
		// the parts have their '"' removed already
		parts := make([]string, 0, len(args)-1)
		for _, p := range args[1:] {
			parts = append(parts, p.String())
		}
		al.aliases[args[0].String()] = strings.TrimSpace(strings.Join(parts, " ")) + "\n"
	}
	return nil
}

func (al *Aliases) list() {
	if len(al.aliases) == 0 {
		conlog.SafePrintf("no alias commands found\n")
		return
	}
	names := make([]string, 0, len(al.aliases))
	for k := range al.aliases {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		// each alias value ends with a '\n'
		conlog.SafePrintf("  %s: %s", k, al.aliases[k])
	}
	conlog.SafePrintf("%v alias command(s)\n", len(al.aliases))
}

func (al *Aliases) unalias(a cmd.Arguments) error {
	if len(a.Args()) != 2 {
		conlog.Printf("unalias <name> : delete alias\n")
		return nil
	}
	name := a.Argv(1).String()
	if _, ok := al.aliases[name]; !ok {
		conlog.Printf("No alias named %s\n", name)
		return nil
	}
	delete(al.aliases, name)
	return nil
}

func (al *Aliases) unaliasAll(_ cmd.Arguments) error {
	clear(al.aliases)
	return nil
}

func (al *Aliases) Get(name string) (string, bool) {
	a, ok := al.aliases[name]
	return a, ok
}

// Execute returns the executor expanding aliases into the buffer.
func (al *Aliases) Execute() cbuf.Efunc {
	return func(c *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
		v, ok := al.Get(a.Argv(0).String())
		if !ok {
			return false, nil
		}
		c.InsertText(v)
		return true, nil
	}
}
