// Package tui is a terminal front-end for the emulator: a register/pc
// panel, a scrolling log panel fed by the execution driver's log bus, and
// keybindings that steer the run loop via control messages.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rv32emu/bus"
	"rv32emu/clock"
	"rv32emu/driver"
)

// TUI is the interactive front-end for a running Environment.
type TUI struct {
	App *tview.Application

	registerView *tview.TextView
	logView      *tview.TextView

	control *bus.Bus[clock.ControlMessage]
	logs    *bus.Reader[driver.LogRecord]

	registers [32]int32
	pc        uint32
}

// New builds a TUI that sends control messages on control and displays log
// records read from logs.
func New(control *bus.Bus[clock.ControlMessage], logs *bus.Reader[driver.LogRecord]) *TUI {
	t := &TUI{
		App:     tview.NewApplication(),
		control: control,
		logs:    logs,
	}

	t.registerView = tview.NewTextView().SetDynamicColors(true)
	t.registerView.SetBorder(true).SetTitle(" Registers ")

	t.logView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.logView.SetBorder(true).SetTitle(" Log ")

	help := tview.NewTextView().SetDynamicColors(true).
		SetText("[yellow]Enter[white]/[yellow]Space[white]: tick   [yellow]r[white]: reset   [yellow]q[white]: quit")
	help.SetBorder(true).SetTitle(" Keys ")

	top := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(t.registerView, 40, 0, false).
		AddItem(t.logView, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, false).
		AddItem(help, 3, 0, false)

	t.App.SetRoot(layout, true)
	t.setupKeyBindings()
	t.refreshRegisters()

	return t
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEnter, event.Rune() == ' ':
			t.control.Send(clock.ManualTick)
			return nil
		case event.Rune() == 'r':
			t.control.Send(clock.Reset)
			return nil
		case event.Rune() == 'q', event.Key() == tcell.KeyCtrlC:
			t.control.Send(clock.Halt)
			t.App.Stop()
			return nil
		}
		return event
	})
}

// pump reads log records off the bus and queues a redraw for each one,
// until the reader is closed or the application stops.
func (t *TUI) pump() {
	for {
		rec, ok := t.logs.Recv()
		if !ok {
			return
		}
		t.App.QueueUpdateDraw(func() {
			t.applyRecord(rec)
		})
		if rec.Kind == driver.LogFault {
			return
		}
	}
}

func (t *TUI) applyRecord(rec driver.LogRecord) {
	t.registers = rec.Registers
	t.pc = rec.PC
	t.refreshRegisters()

	switch rec.Kind {
	case driver.LogOk:
		instr := rec.Instr
		if instr == "" {
			instr = "(decode only)"
		}
		fmt.Fprintf(t.logView, "0x%08x  %s\n", rec.PC, instr)
	case driver.LogFault:
		fmt.Fprintf(t.logView, "[red]0x%08x  %v[white]\n", rec.PC, rec.Fault.Exception)
	}
	t.logView.ScrollToEnd()
}

func (t *TUI) refreshRegisters() {
	var b strings.Builder
	fmt.Fprintf(&b, "pc   0x%08x\n", t.pc)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, "x%-2d  0x%08x\n", i, uint32(t.registers[i]))
	}
	t.registerView.SetText(b.String())
}

// Run starts the log pump and blocks until the user quits. The pump stops
// reading once the log bus closes or a fault record arrives; the
// application keeps running until the user quits.
func (t *TUI) Run() error {
	go t.pump()
	return t.App.Run()
}
