// main.go - gf1synth entry point: interactive console or playback demo

package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	mode := flag.String("mode", "console", "console | demo")
	backend := flag.String("backend", "oto", "demo audio backend: oto | alsa")
	script := flag.String("script", "", "console: Lua script to run instead of an interactive prompt")
	seconds := flag.Int("seconds", 5, "demo: seconds to play before exiting")
	flag.Parse()

	var err error
	switch *mode {
	case "console":
		err = RunConsole(*script)
	case "demo":
		err = RunDemo(*backend, *seconds)
	default:
		err = fmt.Errorf("gf1synth: unknown -mode %q (want console or demo)", *mode)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
