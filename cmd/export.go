package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/axiom/internal/document"
	"github.com/gnoswap-labs/axiom/internal/theories"
)

var (
	exportOutput     string
	exportSystemOnly bool
)

var exportCmd = &cobra.Command{
	Use:   "export <theory>",
	Short: "Write a built-in theory as a proof document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var buf bytes.Buffer
		if err := exportTheory(&buf, args[0], exportSystemOnly); err != nil {
			return err
		}
		if exportOutput == "" {
			_, err := io.Copy(os.Stdout, &buf)
			return err
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Printf("Theory %s written to %s\n", args[0], exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default stdout)")
	exportCmd.Flags().BoolVar(&exportSystemOnly, "system-only", false, "Export the axiom system without proofs")
}

func exportTheory(w io.Writer, name string, systemOnly bool) error {
	t, ok := theories.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown theory %q", name)
	}
	sys := t.System()
	if systemOnly {
		return document.Encode(w, document.FromSystem(sys))
	}

	lib, err := t.Library()
	if err != nil {
		return fmt.Errorf("theory %s: %w", name, err)
	}
	doc, err := document.FromLibrary(sys, lib)
	if err != nil {
		return fmt.Errorf("theory %s: %w", name, err)
	}
	return document.Encode(w, doc)
}
