package cmd

import (
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "twister",
	Short: "MT19937 toolkit.",
	Long: `MT19937 toolkit.
Repo: https://github.com/tutils/twister
Generate, encrypt with, clone and crack 32-bit Mersenne Twister streams, For example:
  twister extract --seed=5489 --count=10
  twister encrypt --key=48879 --key16 secret.txt
  twister crack seed16 --known="kick boxing" 8c7f0aac...
  twister serve --listen=ws://0.0.0.0:8080/stream
  twister clone --connect=ws://127.0.0.1:8080/stream --predict=10`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.twister.yaml)")
	flags.IntP("workers", "w", 0, "seed search goroutines (default number of CPUs)")
	viper.BindPFlag("workers", flags.Lookup("workers"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".twister" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".twister")
	}

	viper.SetEnvPrefix("twister")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
