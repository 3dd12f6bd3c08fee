package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/twister/counter"
	"github.com/tutils/twister/counter/period"
	"github.com/tutils/twister/crack"
	"github.com/tutils/twister/token"
)

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover MT19937 seeds",
}

// crackSeed16Cmd represents the crack seed16 command
var crackSeed16Cmd = &cobra.Command{
	Use:   "seed16 [FILE]...",
	Short: "Recover the 16-bit key of a ciphertext with a known plaintext suffix",
	Long: `Try every 16-bit key on a hex ciphertext read from files or stdin, For example:
  twister encrypt --key=4242 --key16 --hex msg.txt | twister crack seed16 --known="kick boxing"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ciphertext, err := readHexInput(args)
		if err != nil {
			return err
		}
		opts, stop := searchOptions()
		key, found := crack.RecoverUint16Seed(ciphertext, []byte(crackKnown), opts...)
		stop()
		if !found {
			fmt.Println("no 16-bit key found")
			return nil
		}
		fmt.Println(key)
		return nil
	},
}

// crackTokenCmd represents the crack token command
var crackTokenCmd = &cobra.Command{
	Use:   "token [FILE]...",
	Short: "Check whether a token was encrypted under a recent timestamp",
	Long: `Search the time window [now-tolerance, now] for the seed of a hex token, For example:
  twister crack token --tolerance=10m token.hex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := readHexInput(args)
		if err != nil {
			return err
		}
		tolerance := viper.GetDuration("tolerance")
		now := time.Now()
		opts, stop := searchOptions()
		seed, found, err := crack.RecoverTimeSeed(tok, []byte(crackMarker), now.Add(-tolerance), now, opts...)
		stop()
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("not a time-seeded token")
			return nil
		}
		fmt.Printf("%d\t%s\n", seed, time.Unix(int64(seed), 0).Format(time.RFC3339))
		return nil
	},
}

func readHexInput(args []string) ([]byte, error) {
	b, err := readInput(args)
	if err != nil {
		return nil, err
	}
	return decodeHex(b)
}

// searchOptions builds the shared search options and starts progress
// logging; stop ends it.
func searchOptions() ([]crack.SearchOption, func()) {
	c := period.NewPeriodCounter(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		logProgress(ctx, c)
	}()

	opts := []crack.SearchOption{
		crack.WithWorkers(viper.GetInt("workers")),
		crack.WithCounter(c),
	}
	return opts, func() {
		cancel()
		<-done
		log.Printf("[INFO] tested %d candidates", c.Value())
	}
}

func logProgress(ctx context.Context, c counter.Counter) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			log.Printf("[INFO] tested %d candidates, %d/s", c.Value(), c.RatePerSec())
		case <-ctx.Done():
			return
		}
	}
}

var (
	crackKnown  string
	crackMarker string
)

func init() {
	rootCmd.AddCommand(crackCmd)
	crackCmd.AddCommand(crackSeed16Cmd)
	crackCmd.AddCommand(crackTokenCmd)

	flags := crackSeed16Cmd.Flags()
	flags.StringVar(&crackKnown, "known", "", "known plaintext suffix")
	crackSeed16Cmd.MarkFlagRequired("known")

	flags = crackTokenCmd.Flags()
	flags.StringVar(&crackMarker, "marker", token.Marker, "expected plaintext suffix")
	flags.Duration("tolerance", 100*time.Second, "how far back to search")
	viper.BindPFlag("tolerance", flags.Lookup("tolerance"))
}
