// Command rv32emu runs a bare-metal RV32I binary against an emulated
// memory map.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"rv32emu/bus"
	"rv32emu/clock"
	"rv32emu/config"
	"rv32emu/core"
	"rv32emu/driver"
	"rv32emu/loader"
	"rv32emu/rv32i"
	"rv32emu/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "rv32emu",
		Short: "A bare-metal RV32I emulator",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: platform config dir)")

	root.AddCommand(newRunQuickCmd(&configPath))
	return root
}

func newRunQuickCmd(configPath *string) *cobra.Command {
	var (
		memorySpec string
		clockSpec  string
		useTUI     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run-quick <rom>",
		Short: "Run a single RISC-V binary in a reasonable default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("memory") {
				memorySpec = cfg.Execution.MemorySize
			}
			if !cmd.Flags().Changed("clock") {
				clockSpec = cfg.Execution.Clock
			}
			if !cmd.Flags().Changed("tui") {
				useTUI = cfg.TUI.StartWithTUI
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = cfg.Logging.Verbose
			}

			if cfg.Logging.OutputFile != "" {
				f, err := os.OpenFile(cfg.Logging.OutputFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				log.SetOutput(f)
			}

			return runQuick(args[0], memorySpec, clockSpec, useTUI, verbose)
		},
	}

	cmd.Flags().StringVarP(&memorySpec, "memory", "m", "32K", "amount of RAM to allocate, e.g. 32K, 4M, 1G")
	cmd.Flags().StringVarP(&clockSpec, "clock", "c", "manual", `clock to use: "manual", "free", or a frequency in Hz`)
	cmd.Flags().BoolVar(&useTUI, "tui", true, "run the interactive terminal UI")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// runQuick wires a boot image, MMU, hart, and clock into an Environment and
// drives it either through the TUI or, with --tui=false, headlessly until
// the processor halts or faults. A headless run prints nothing to stdout:
// with verbose set it writes each executed instruction through the standard
// logger, and a fault is returned as the error.
func runQuick(romPath, memorySpec, clockSpec string, useTUI, verbose bool) error {
	rom, err := loader.LoadROM(romPath)
	if err != nil {
		return err
	}

	ramSize, err := parseMemorySize(memorySpec)
	if err != nil {
		return err
	}

	mmu := core.NewMMU(rom, ramSize)
	hart := core.NewHart()
	processor := core.NewProcessor(hart, mmu, &sync.RWMutex{}, rv32i.New())

	controlBus := bus.New[clock.ControlMessage]()
	clk, err := parseClockSpec(clockSpec, controlBus.Subscribe())
	if err != nil {
		return err
	}

	env := driver.NewEnvironment(processor, clk, controlBus.Subscribe())
	logs := env.Subscribe()

	if verbose {
		log.Printf("rv32emu: rom=%s ram=%d bytes clock=%s tui=%v", romPath, ramSize, clockSpec, useTUI)
	}

	if useTUI {
		return runWithTUI(env, controlBus, logs)
	}
	return runPlain(env, logs, verbose)
}

func runWithTUI(env *driver.Environment, controlBus *bus.Bus[clock.ControlMessage], logs *bus.Reader[driver.LogRecord]) error {
	front := tui.New(controlBus, logs)

	done := make(chan struct{})
	go func() {
		env.Run()
		close(done)
	}()

	err := front.Run()
	controlBus.Send(clock.Halt)
	<-done
	return err
}

func runPlain(env *driver.Environment, logs *bus.Reader[driver.LogRecord], verbose bool) error {
	done := make(chan struct{})
	go func() {
		env.Run()
		close(done)
	}()

	var fault *core.Fault
	for {
		rec, ok := logs.Recv()
		if !ok {
			break
		}
		if verbose && rec.Kind == driver.LogOk && rec.Instr != "" {
			log.Printf("0x%08x  %s", rec.PC, rec.Instr)
		}
		if rec.Kind == driver.LogFault {
			fault = rec.Fault
			break
		}
	}
	<-done

	if fault != nil {
		return fmt.Errorf("halted: %w", fault)
	}
	return nil
}
