// Package main provides the entry point for a64dec, a command-line
// front end for the AArch64 loads/stores decoder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/a64decoder/decode"
	"github.com/sarchlab/a64decoder/insts"
	"github.com/sarchlab/a64decoder/loader"
)

func main() {
	var (
		optionsPath          string
		remapAliases         bool
		continueOnError      bool
		throwOnUnimplemented bool
		verbose              bool
	)

	rootCmd := &cobra.Command{
		Use:   "a64dec <binary.elf>",
		Short: "Decode the executable segments of an AArch64 ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(optionsPath, remapAliases, continueOnError, throwOnUnimplemented, cmd)
			if err != nil {
				return err
			}

			prog, err := loader.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load program: %w", err)
			}

			if verbose {
				fmt.Fprintf(os.Stderr, "loaded %s: entry 0x%X, %d segment(s)\n", args[0], prog.EntryPoint, len(prog.Segments))
			}

			driver := decode.NewDriver(opts)
			count := 0
			for _, seg := range prog.Segments {
				if seg.Flags&loader.SegmentFlagExecute == 0 {
					continue
				}
				if err := printSegment(driver, seg, verbose); err != nil {
					return err
				}
				count++
			}

			if count == 0 && verbose {
				fmt.Fprintln(os.Stderr, "no executable segments found")
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&optionsPath, "config", "", "path to a JSON decode-options file")
	rootCmd.Flags().BoolVar(&remapAliases, "remap-aliases", true, "canonicalize aliased encodings")
	rootCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "substitute INVALID for undefined encodings instead of failing")
	rootCmd.Flags().BoolVar(&throwOnUnimplemented, "throw-on-unimplemented", true, "fail on encodings this decoder does not cover")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveOptions builds decode.Options from --config (if given) overlaid
// with whichever flags the caller actually set on the command line.
func resolveOptions(path string, remapAliases, continueOnError, throwOnUnimplemented bool, cmd *cobra.Command) (*decode.Options, error) {
	opts := decode.DefaultOptions()
	if path != "" {
		loaded, err := decode.LoadOptions(path)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	if cmd.Flags().Changed("remap-aliases") {
		opts.RemapAliases = remapAliases
	}
	if cmd.Flags().Changed("continue-on-error") {
		opts.ContinueOnError = continueOnError
	}
	if cmd.Flags().Changed("throw-on-unimplemented") {
		opts.ThrowOnUnimplemented = throwOnUnimplemented
	}
	return opts, nil
}

// printSegment decodes one executable segment and writes one line per
// instruction to stdout. Trailing bytes that do not make up a full word
// are dropped rather than tripping the driver's structural check.
func printSegment(driver *decode.Driver, seg loader.Segment, verbose bool) error {
	data := seg.Data[:len(seg.Data)-len(seg.Data)%4]
	for inst, err := range driver.All(data, seg.VirtAddr) {
		if err != nil {
			return fmt.Errorf("segment at 0x%X: %w", seg.VirtAddr, err)
		}
		printInstruction(inst)
	}
	return nil
}

// printInstruction writes a single decoded record. Disassembly-quality
// formatting (operand rendering, alias-aware mnemonics) is a printing
// collaborator this decoder does not implement; this is a minimal
// field dump for inspection.
func printInstruction(inst insts.Instruction) {
	fmt.Printf("0x%016X: %s", inst.Address, inst.Mnemonic)
	if inst.Op0Kind == insts.KindRegister {
		fmt.Printf(" %s%d", inst.Op0Reg.Family(), inst.Op0Reg.Index())
	}
	if inst.Op1Kind == insts.KindRegister {
		fmt.Printf(", %s%d", inst.Op1Reg.Family(), inst.Op1Reg.Index())
	}
	if inst.Op1Kind == insts.KindMemory || inst.Op2Kind == insts.KindMemory {
		fmt.Printf(", [%s%d", inst.MemBase.Family(), inst.MemBase.Index())
		if inst.MemHasAddend {
			fmt.Printf(", %s%d", inst.MemAddendReg.Family(), inst.MemAddendReg.Index())
		} else if inst.MemOffset != 0 {
			fmt.Printf(", #%d", inst.MemOffset)
		}
		fmt.Printf("]")
		if inst.MemAccessMode == insts.PreIndex {
			fmt.Printf("!")
		}
	}
	fmt.Println()
}
