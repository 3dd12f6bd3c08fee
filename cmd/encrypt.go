package cmd

import (
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tutils/twister/crypt/xor"
	"github.com/tutils/twister/mt19937"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:     "encrypt [FILE]...",
	Aliases: []string{"decrypt"},
	Short:   "XOR data with an MT19937 keystream",
	Long: `XOR files (or stdin) with the keystream of a seed. Encryption and
decryption are the same operation, For example:
  twister encrypt --key=48879 --key16 secret.txt > secret.bin
  twister decrypt --key=48879 --key16 secret.bin
  twister encrypt --now --hex-in token.hex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := cipherSeed()
		if err != nil {
			return err
		}
		data, err := readInput(args)
		if err != nil {
			return err
		}
		if cipherHexIn {
			if data, err = decodeHex(data); err != nil {
				return err
			}
		}
		return writeOutput(os.Stdout, xor.Encrypt(data, seed), cipherHexOut)
	},
}

// cipherSeed maps the key flags onto a seed
func cipherSeed() (uint32, error) {
	switch {
	case cipherNow:
		return mt19937.TimeSeed(time.Now()), nil
	case cipherKey16:
		if cipherKey > math.MaxUint16 {
			return 0, errors.Errorf("key %d does not fit in 16 bits", cipherKey)
		}
		return mt19937.Uint16Seed(uint16(cipherKey)), nil
	default:
		return mt19937.Uint32Seed(cipherKey), nil
	}
}

var (
	cipherKey    uint32
	cipherKey16  bool
	cipherNow    bool
	cipherHexIn  bool
	cipherHexOut bool
)

func init() {
	rootCmd.AddCommand(encryptCmd)

	flags := encryptCmd.Flags()
	flags.Uint32VarP(&cipherKey, "key", "k", 0, "key")
	flags.BoolVar(&cipherKey16, "key16", false, "key is 16 bits")
	flags.BoolVar(&cipherNow, "now", false, "key with the current Unix time")
	flags.BoolVar(&cipherHexIn, "hex-in", false, "input is hex encoded")
	flags.BoolVar(&cipherHexOut, "hex", false, "hex encode output even when not a terminal")
	encryptCmd.MarkFlagsMutuallyExclusive("key", "now")
	encryptCmd.MarkFlagsMutuallyExclusive("key16", "now")
}
