// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console text and executes it line by line, one
// batch per frame.
package cbuf

import (
	"log"

	"godescent/cmd"
	"godescent/conlog"
)

// Efunc tries to execute a line. It reports false if it does not know the
// command.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

type CommandBuffer struct {
	text string
	// set by a 'wait' line, the rest of the buffer runs next frame
	wait      bool
	executors []Efunc
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.text += text
}

// InsertText puts text in front of the buffer, e.g. an alias expansion.
func (c *CommandBuffer) InsertText(text string) {
	c.text = text + "\n" + c.text
}

func (c *CommandBuffer) Empty() bool {
	return len(c.text) == 0
}

// Execute runs the buffered lines up to the next 'wait'.
func (c *CommandBuffer) Execute() {
	for len(c.text) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.text); i++ {
			switch c.text[i] {
			case '"':
				quote = !quote
			case ';':
				if !quote {
					break LineLoop
				}
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.text[:i]
		if i < len(c.text) {
			i++
		}
		c.text = c.text[i:]
		if err := c.execute(line); err != nil {
			log.Printf("%q: %v", line, err)
			conlog.Printf("%v\n", err)
		}
		if c.wait {
			c.wait = false
			return
		}
	}
}

func (c *CommandBuffer) execute(s string) error {
	a := cmd.Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil
	}
	name := args[0].String()
	if name == "wait" {
		c.wait = true
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	log.Printf("Unknown command \"%s\"", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}
