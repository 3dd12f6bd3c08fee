package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/twister/crack"
	"github.com/tutils/twister/feed"
	"github.com/tutils/twister/mt19937"
)

// cloneCmd represents the clone command
var cloneCmd = &cobra.Command{
	Use:   "clone [FILE]...",
	Short: "Clone a generator from its outputs and predict the next ones",
	Long: `Read at least 624 consecutive outputs from a feed server or from files
(stdin), one per word, and print the outputs that follow, For example:
  twister extract --seed=7 --count=700 | twister clone --predict=5
  twister clone --connect=ws://127.0.0.1:8080/stream --predict=5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			outputs []uint32
			c       *feed.Client
			err     error
		)
		if addr := viper.GetString("feed.connect"); addr != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if c, err = feed.Dial(ctx, addr); err != nil {
				return err
			}
			defer c.Close()
			outputs, err = c.ReadOutputs(mt19937.N + viper.GetInt("verify"))
		} else {
			var data []byte
			if data, err = readInput(args); err == nil {
				outputs, err = readWords(bytes.NewReader(data))
			}
		}
		if err != nil {
			return err
		}

		g, err := crack.CloneStream(outputs)
		if err != nil {
			return err
		}
		log.Printf("[INFO] cloned from %d outputs", len(outputs))

		predicted := crack.Predict(g, clonePredict)
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		if c == nil {
			for _, y := range predicted {
				fmt.Fprintln(w, y)
			}
			return nil
		}

		// check the prediction against the live feed
		actual, err := c.ReadOutputs(len(predicted))
		if err != nil {
			return err
		}
		for i, y := range predicted {
			mark := "✓"
			if y != actual[i] {
				mark = "✗"
			}
			fmt.Fprintf(w, "%s %#08x == %#08x\n", mark, y, actual[i])
		}
		return nil
	},
}

var (
	clonePredict int
)

func init() {
	rootCmd.AddCommand(cloneCmd)

	flags := cloneCmd.Flags()
	flags.IntVarP(&clonePredict, "predict", "n", 10, "number of outputs to predict")
	flags.String("connect", "", "feed server address, e.g. ws://127.0.0.1:8080/stream")
	flags.Int("verify", 32, "extra feed outputs checked against the clone")
	viper.BindPFlag("feed.connect", flags.Lookup("connect"))
	viper.BindPFlag("verify", flags.Lookup("verify"))
}
