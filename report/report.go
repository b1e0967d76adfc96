// Package report renders block coding analyses as text tables.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	blockcoding "github.com/sinedfq/Block-CodingTI"
)

// Write prints the analysis of the input called name.
func Write(w io.Writer, name string, a *blockcoding.Analysis) error {
	if _, err := fmt.Fprintf(w, "%s\nSymbol entropy: %.4f bits/symbol\n\n", name, a.SymbolEntropy); err != nil {
		return errors.Wrap(err, "")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight|tabwriter.Debug)
	if _, err := fmt.Fprintln(tw, "Block size\t Block entropy\t Avg code length\t Redundancy\t"); err != nil {
		return errors.Wrap(err, "")
	}
	for _, r := range a.Rows {
		_, err := fmt.Fprintf(tw, "%d\t %.4f\t %.4f\t %.4f\t\n", r.BlockSize, r.BlockEntropy, r.AvgCodeLength, r.Redundancy)
		if err != nil {
			return errors.Wrap(err, "")
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "")
	}

	if _, err := fmt.Fprintf(w, "digest %016x\n", a.Digest()); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
