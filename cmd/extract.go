package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/twister/mt19937"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print MT19937 outputs",
	Long: `Print successive tempered outputs of a seeded generator, For example:
  twister extract --seed=0 --count=6
  twister extract --now --count=3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := extractSeed
		if extractNow {
			seed = mt19937.TimeSeed(time.Now())
		}
		g := mt19937.New(seed)

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for i := 0; i < extractCount; i++ {
			fmt.Fprintln(w, g.ExtractNumber())
		}
		return nil
	},
}

// untemperCmd represents the untemper command
var untemperCmd = &cobra.Command{
	Use:   "untemper WORD...",
	Short: "Recover raw state words from outputs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			y, err := parseWord(arg)
			if err != nil {
				return err
			}
			x := mt19937.Untemper(y)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%#08x\n", x, x)
		}
		return nil
	},
}

var (
	extractSeed  uint32
	extractCount int
	extractNow   bool
)

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(untemperCmd)

	flags := extractCmd.Flags()
	flags.Uint32VarP(&extractSeed, "seed", "s", 5489, "seed")
	flags.IntVarP(&extractCount, "count", "n", 10, "number of outputs")
	flags.BoolVar(&extractNow, "now", false, "seed with the current Unix time")
	extractCmd.MarkFlagsMutuallyExclusive("seed", "now")
}
