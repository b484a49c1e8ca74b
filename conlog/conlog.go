// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes user visible console output. Until a console is
// attached everything goes to the standard logger.
package conlog

import (
	"log"
)

var (
	p  = log.Printf
	sp = log.Printf
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}
func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// SafePrintf is used for long listings which must not trigger a screen update
// per line.
func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}
