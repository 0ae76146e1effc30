// Command quantize-labels snaps the timestamps of a target label file
// to the nearest timestamps of a reference label file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	quantizelabels "github.com/bwagner/quantize-labels"
	"github.com/bwagner/quantize-labels/label"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		inplace   bool
		verbose   bool
		filter    string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "quantize-labels REFERENCE_FILE TARGET_FILE",
		Short: "Quantize labels in the target file to the reference file",
		Long: `Quantize labels in the target file to the reference file.

Each timestamp in TARGET_FILE is replaced by the nearest start time
found in REFERENCE_FILE. Both files are line-oriented label files,
either Audacity-style (start, end, text; tab-separated) or one bare
timestamp per line. Start and end times are snapped independently;
equidistant ties resolve to the earlier reference time.

The result goes to stdout unless --inplace is given. A summary of the
total and average adjustment is printed to stderr.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []quantizelabels.Option{
				quantizelabels.WithInPlace(inplace),
				quantizelabels.WithPrecision(precision),
				quantizelabels.WithOutput(cmd.OutOrStdout()),
				quantizelabels.WithVerbose(verbose),
			}
			if filter != "" {
				opts = append(opts, quantizelabels.WithFilter(filter))
			}

			report, err := quantizelabels.New(opts...).QuantizeFile(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(),
				"\nTotal adjustment: %.6f seconds\nAverage adjustment: %.6f seconds\n",
				report.TotalAdjustment, report.AverageAdjustment())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inplace, "inplace", "i", false,
		"apply quantizations directly to the TARGET_FILE")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")
	cmd.Flags().StringVar(&filter, "filter", "",
		"only quantize records matching this expression, e.g. \"duration > 0.5\"")
	cmd.Flags().IntVar(&precision, "precision", label.DefaultPrecision,
		"decimal places for written timestamps")

	cmd.SetErrPrefix("quantize-labels:")
	return cmd
}
