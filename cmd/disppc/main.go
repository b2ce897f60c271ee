package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/ppc/cpu"
	"github.com/Urethramancer/ppc/disassembler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		origin    string
		bits      int
		little    bool
		booke     bool
		noRegName bool
		linear    bool
		addresses bool
		detail    bool
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:          "disppc <inputfile> [outputfile]",
		Short:        "Disassemble raw PowerPC machine code",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			base, err := strconv.ParseUint(origin, 0, 64)
			if err != nil {
				return fmt.Errorf("invalid origin %q: %w", origin, err)
			}

			var mode cpu.Mode
			switch bits {
			case 32:
				mode = cpu.Mode32
			case 64:
				mode = cpu.Mode64
			default:
				return fmt.Errorf("invalid word size %d: must be 32 or 64", bits)
			}
			if !little {
				mode |= cpu.ModeBigEndian
			}
			if booke {
				mode |= cpu.ModeBookE
			}

			// Read the binary file directly. Do NOT modify it.
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			logger.Debug("loaded input", "file", args[0], "bytes", len(code), "mode", mode.String(), "origin", fmt.Sprintf("%#x", base))

			opts := disassembler.Options{
				Config: disassembler.Config{
					Mode:      mode,
					Detail:    detail,
					NoRegName: noRegName,
				},
				Origin:    base,
				Linear:    linear,
				Addresses: addresses,
				Logger:    logger,
			}

			if detail {
				return dumpDetail(cmd, code, opts)
			}

			text, err := disassembler.Disassemble(code, opts)
			if err != nil {
				return fmt.Errorf("disassembly: %w", err)
			}

			if len(args) < 2 {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(args[1], []byte(text), 0644); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
			logger.Info("disassembly written", "file", args[1])
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVarP(&origin, "origin", "o", "0", "Load address of the first byte")
	rootCmd.Flags().IntVarP(&bits, "bits", "b", 32, "Word size, 32 or 64")
	rootCmd.Flags().BoolVar(&little, "little", false, "Read little-endian instruction words")
	rootCmd.Flags().BoolVar(&booke, "booke", false, "Use the embedded (Book E) operand syntax")
	rootCmd.Flags().BoolVar(&noRegName, "noregname", false, "Print registers as bare numbers")
	rootCmd.Flags().BoolVarP(&linear, "linear", "l", false, "Treat every decodable word as code")
	rootCmd.Flags().BoolVarP(&addresses, "addresses", "a", false, "Show address and encoding of each instruction")
	rootCmd.Flags().BoolVarP(&detail, "detail", "d", false, "Dump the structured operands of each instruction")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log decode failures")
	return rootCmd
}

// dumpDetail prints every decoded word followed by its structured operands.
func dumpDetail(cmd *cobra.Command, code []byte, opts disassembler.Options) error {
	out := cmd.OutOrStdout()
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for _, l := range disassembler.Sweep(code, opts) {
		if l.Err != nil {
			fmt.Fprintf(out, "%08x:  %08x    .long 0x%08x\n", l.Address, l.Word, l.Word)
			continue
		}
		fmt.Fprintf(out, "%08x:  %08x    %s  ; %s\n", l.Address, l.Word, l.Result, l.Result.ID)
		cfg.Fdump(out, l.Detail.BC, l.Detail.BH, l.Detail.UpdateCR0, l.Detail.List())
	}
	return nil
}
