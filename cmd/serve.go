package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/twister/feed"
	"github.com/tutils/twister/mt19937"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Publish generator outputs over websocket",
	Long: `Start a feed server streaming the outputs of one shared generator, For example:
  twister serve --listen=ws://0.0.0.0:8080/stream --seed=816559`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := mt19937.TimeSeed(time.Now())
		if cmd.Flags().Changed("seed") {
			seed = serveSeed
		}
		addr := viper.GetString("feed.listen")
		s, err := feed.NewServer(
			feed.WithListenAddress(addr),
			feed.WithSource(mt19937.New(seed)),
			feed.WithBatch(viper.GetInt("feed.batch")),
			feed.WithLimit(viper.GetInt("feed.limit")),
		)
		if err != nil {
			return err
		}
		log.Printf("[INFO] feed listening on %s", addr)
		return s.ListenAndServe()
	},
}

var (
	serveSeed uint32
)

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", feed.DefaultListenAddress, "feed listen address")
	flags.Uint32VarP(&serveSeed, "seed", "s", 0, "seed (default current Unix time)")
	flags.Int("batch", feed.DefaultBatch, "words per message")
	flags.Int("limit", feed.DefaultLimit, "words per connection")
	viper.BindPFlag("feed.listen", flags.Lookup("listen"))
	viper.BindPFlag("feed.batch", flags.Lookup("batch"))
	viper.BindPFlag("feed.limit", flags.Lookup("limit"))
}
