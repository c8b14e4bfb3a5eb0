package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tidwall/hashmap"

	"github.com/cryptonstudio/crypton-queue-engine/queue"
	"github.com/cryptonstudio/crypton-queue-engine/types/clist"
)

// valueBufferSize bounds the copied-out value when echoing removals.
const valueBufferSize = 32

// Shell holds the named queues and the current selection. It talks to
// the queue package only through its public operation contracts.
type Shell struct {
	out     io.Writer
	queues  *hashmap.Map[string, *queue.Queue[string]]
	current string
}

func newShell(out io.Writer) *Shell {
	return &Shell{
		out:    out,
		queues: hashmap.New[string, *queue.Queue[string]](8),
	}
}

// Execute runs a single command line. It returns false when the shell
// should terminate.
func (sh *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		sh.cmdNew(args)
	case "free":
		sh.cmdFree(args)
	case "sel":
		sh.cmdSelect(args)
	case "ls":
		sh.cmdList()
	case "ih":
		sh.cmdInsert(args, true)
	case "it":
		sh.cmdInsert(args, false)
	case "rh":
		sh.cmdRemove(true)
	case "rt":
		sh.cmdRemove(false)
	case "size":
		fmt.Fprintln(sh.out, sh.selected().Size())
	case "show":
		sh.cmdShow()
	case "sort":
		sh.selected().Sort()
		sh.cmdShow()
	case "reverse":
		sh.selected().Reverse()
		sh.cmdShow()
	case "swap":
		sh.selected().SwapPairs()
		sh.cmdShow()
	case "dedup":
		sh.report(sh.selected().DeleteDuplicates())
	case "dm":
		sh.report(sh.selected().DeleteMiddle())
	case "help":
		sh.cmdHelp()
	case "quit", "exit":
		sh.freeAll()
		return false
	default:
		fmt.Fprintf(sh.out, "unknown command %q, try help\n", cmd)
	}
	return true
}

// selected returns the current queue, or nil when none is selected.
// A nil queue is a valid absent handle for every operation, so commands
// need no existence checks of their own.
func (sh *Shell) selected() *queue.Queue[string] {
	q, _ := sh.queues.Get(sh.current)
	return q
}

func (sh *Shell) report(err error) {
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	sh.cmdShow()
}

func (sh *Shell) cmdNew(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: new <name>")
		return
	}
	name := args[0]
	if _, ok := sh.queues.Get(name); ok {
		fmt.Fprintf(sh.out, "queue %q already exists\n", name)
		return
	}
	sh.queues.Set(name, queue.New[string]())
	sh.current = name
}

func (sh *Shell) cmdFree(args []string) {
	name := sh.current
	if len(args) == 1 {
		name = args[0]
	}
	q, ok := sh.queues.Get(name)
	if !ok {
		fmt.Fprintf(sh.out, "no queue %q\n", name)
		return
	}
	q.Free()
	sh.queues.Delete(name)
	if sh.current == name {
		sh.current = ""
	}
}

func (sh *Shell) cmdSelect(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: sel <name>")
		return
	}
	if _, ok := sh.queues.Get(args[0]); !ok {
		fmt.Fprintf(sh.out, "no queue %q\n", args[0])
		return
	}
	sh.current = args[0]
}

func (sh *Shell) cmdList() {
	names := sh.queues.Keys()
	sort.Strings(names)
	for _, name := range names {
		q, _ := sh.queues.Get(name)
		marker := " "
		if name == sh.current {
			marker = "*"
		}
		fmt.Fprintf(sh.out, "%s %s (%d)\n", marker, name, q.Size())
	}
}

func (sh *Shell) cmdInsert(args []string, head bool) {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "usage: ih|it <value> [value ...]")
		return
	}
	q := sh.selected()
	for _, v := range args {
		var err error
		if head {
			err = q.InsertHead(v)
		} else {
			err = q.InsertTail(v)
		}
		if err != nil {
			fmt.Fprintln(sh.out, err)
			return
		}
	}
	sh.cmdShow()
}

func (sh *Shell) cmdRemove(head bool) {
	q := sh.selected()
	var e *clist.Node[string]
	var err error
	if head {
		e, err = q.RemoveHead()
	} else {
		e, err = q.RemoveTail()
	}
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	// copy the value out through the bounded buffer contract before
	// handing the element back
	buf := make([]byte, valueBufferSize)
	n := queue.CopyValue(buf, e.Value)
	q.ReleaseElement(e)
	fmt.Fprintf(sh.out, "removed %q\n", buf[:n])
	sh.cmdShow()
}

func (sh *Shell) cmdShow() {
	q := sh.selected()
	if q == nil {
		fmt.Fprintln(sh.out, "no queue selected")
		return
	}
	fmt.Fprintf(sh.out, "[%s]\n", strings.Join(q.Values(), " "))
}

func (sh *Shell) freeAll() {
	for _, name := range sh.queues.Keys() {
		if q, ok := sh.queues.Get(name); ok {
			q.Free()
		}
	}
}

func (sh *Shell) cmdHelp() {
	fmt.Fprint(sh.out, `commands:
  new <name>           create a queue and select it
  free [name]          tear down a queue
  sel <name>           select a queue
  ls                   list queues
  ih <v> [v ...]       insert at head
  it <v> [v ...]       insert at tail
  rh / rt              remove from head / tail
  size                 element count
  show                 print values head to tail
  sort                 merge sort ascending
  reverse              reverse in place
  swap                 swap adjacent pairs
  dedup                collapse equal runs (sorted queue)
  dm                   delete the middle element
  quit                 tear down everything and exit
`)
}
