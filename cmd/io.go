package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readInput returns the concatenated files, or stdin if there are none.
func readInput(files []string) ([]byte, error) {
	if len(files) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// decodeHex accepts hex with arbitrary whitespace.
func decodeHex(b []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(b)), "")
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex input")
	}
	return out, nil
}

// writeOutput writes hex to a terminal and raw bytes otherwise, unless
// forceHex is set.
func writeOutput(w io.Writer, b []byte, forceHex bool) error {
	if forceHex || isTerminal(w) {
		_, err := fmt.Fprintln(w, hex.EncodeToString(b))
		return err
	}
	_, err := w.Write(b)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseWord accepts decimal or 0x-prefixed hex.
func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse word %q", s)
	}
	return uint32(v), nil
}

// readWords reads whitespace separated words.
func readWords(r io.Reader) ([]uint32, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []uint32
	for sc.Scan() {
		v, err := parseWord(sc.Text())
		if err != nil {
			return nil, err
		}
		words = append(words, v)
	}
	return words, sc.Err()
}
