// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gopxl/mainthread/v2"

	cmdl "godescent/commandline"
	"godescent/host"
)

func main() {
	flag.Parse()
	var err error
	mainthread.Run(func() {
		err = run()
	})
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run() error {
	h, err := host.New()
	if err != nil {
		return err
	}
	// audio devices want to be opened from the main thread on some systems
	mainthread.Call(func() {
		err = h.Init()
	})
	if err != nil {
		return err
	}
	for _, line := range flag.Args() {
		h.AddText(line + "\n")
	}

	limited, frames := cmdl.Frames()
	for frame := 0; ; {
		if !h.Tick() {
			time.Sleep(time.Millisecond)
			continue
		}
		frame++
		if limited && frames > 0 {
			if frame >= frames {
				break
			}
			continue
		}
		if h.Done() {
			if !limited {
				// let the last sounds play out
				time.Sleep(time.Second)
			}
			break
		}
	}
	return h.Shutdown()
}
