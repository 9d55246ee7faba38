// Command rv32i runs a single RV32I hart against an instruction image
// and a data image, then reports the final register file (spec §6).
package main

import (
	"errors"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/hupraktikum/rv32i/pkg/cpu"
	"github.com/hupraktikum/rv32i/pkg/image"
	"github.com/hupraktikum/rv32i/pkg/memory"
	"github.com/hupraktikum/rv32i/pkg/report"
)

func main() {
	log.SetFlags(0)
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "rv32i <instruction-image> <data-image>",
		Short:         "simulate a single RV32I hart",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func run(out io.Writer, instrPath, dataPath string) error {
	report.Banner(out)

	instrImage, err := image.LoadInstructionImage(instrPath)
	if err != nil {
		return err
	}
	report.InstrLoaded(out, len(instrImage))

	dataImage, err := image.LoadDataImage(dataPath)
	if err != nil {
		return err
	}
	report.DataLoaded(out, len(dataImage))

	mem := memory.New(instrImage, out)
	mem.LoadData(dataImage)

	machine := cpu.New(mem, cpu.Options{})
	err = machine.Run(cpu.DefaultStepBudget)
	if err != nil && !errors.Is(err, cpu.ErrStepBudgetExhausted) {
		return err
	}

	report.Final(out, machine.Regs.Snapshot())
	return nil
}
