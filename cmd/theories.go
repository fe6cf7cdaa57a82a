package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/axiom/formatter"
	"github.com/gnoswap-labs/axiom/internal/proof"
	"github.com/gnoswap-labs/axiom/internal/theories"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

var showProofs bool

var theoriesCmd = &cobra.Command{
	Use:   "theories [name]",
	Short: "List the built-in theories, or show one and verify its results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			listTheories(os.Stdout)
			return nil
		}
		ok, err := showTheory(os.Stdout, args[0], showProofs)
		if err != nil {
			return err
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	theoriesCmd.Flags().BoolVar(&showProofs, "proofs", false, "Print every proof in full")
}

func listTheories(w io.Writer) {
	for _, t := range theories.Catalog() {
		fmt.Fprintf(w, "%-10s %s\n", t.Name, t.Description)
	}
}

type namedProof struct {
	name  string
	proof *proof.Proof
	show  func() string
}

func libraryProofs(lib *proof.Library) []namedProof {
	var out []namedProof
	for _, l := range lib.Lemmas() {
		out = append(out, namedProof{l.Name, l.Proof, l.Show})
	}
	for _, t := range lib.Theorems() {
		out = append(out, namedProof{t.Name, t.Proof, t.Show})
	}
	for _, c := range lib.Corollaries() {
		out = append(out, namedProof{c.Name, c.Proof, c.Show})
	}
	return out
}

// showTheory prints the system and library of the named theory and
// verifies every result. It reports whether all of them verified.
func showTheory(w io.Writer, name string, full bool) (bool, error) {
	t, ok := theories.Lookup(name)
	if !ok {
		return false, fmt.Errorf("unknown theory %q", name)
	}
	sys := t.System()
	lib, err := t.Library()
	if err != nil {
		return false, fmt.Errorf("theory %s: %w", name, err)
	}

	fmt.Fprintln(w, sys.Summary())
	fmt.Fprint(w, lib.List())
	fmt.Fprintln(w)

	v := verify.New(verify.WithLibrary(lib), verify.WithMode(verify.Batch), verify.WithLogger(logger))
	colored := !color.NoColor
	allValid := true
	for _, np := range libraryProofs(lib) {
		report := v.Verify(np.proof)
		if !report.Valid {
			allValid = false
			logger.Warn("result does not verify", zap.String("theory", name), zap.String("result", np.name))
		}
		fmt.Fprint(w, formatter.FormatReport(np.name, report, colored))
		if full {
			fmt.Fprintln(w)
			fmt.Fprintln(w, np.show())
		}
	}
	return allValid, nil
}
