// Command qshell is a line-oriented harness around the queue package.
// It manages any number of named queues of strings and drives the
// structural operations on them, either interactively or from a
// command file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var scriptPath string
	var echo bool
	flag.StringVar(&scriptPath, "f", "", "Read commands from file instead of stdin")
	flag.BoolVar(&echo, "v", false, "Echo every command before executing it")
	flag.Parse()

	in := os.Stdin
	interactive := true
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	sh := newShell(os.Stdout)
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Print("qshell> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if echo {
			fmt.Println(line)
		}
		if !sh.Execute(line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
