package untilcmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/brendoncarroll/stdctx/logctx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tychoish/until"
	"github.com/tychoish/until/varint"
)

func newVarintCmd(ctx context.Context) *cobra.Command {
	var (
		encode bool
		stopAt uint64
	)
	c := &cobra.Command{
		Use:   "varint [TOKEN...]",
		Short: "decodes hex encoded varints, or encodes decimal values with --encode",
		Long: "decodes hex encoded varints and prints one value per line.\n" +
			"Tokens are read from stdin, separated by whitespace, when none are\n" +
			"given as arguments. Tokens are concatenated, so a value may span two.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := args
			if len(tokens) == 0 {
				var err error
				if tokens, err = readTokens(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if encode {
				return EncodeVarints(cmd.OutOrStdout(), tokens)
			}
			var stop *uint64
			if cmd.Flags().Changed("stop-at") {
				stop = &stopAt
			}
			return DecodeVarints(ctx, cmd.OutOrStdout(), tokens, stop)
		},
	}
	c.Flags().BoolVarP(&encode, "encode", "e", false, "encode decimal values as hex varints")
	c.Flags().Uint64Var(&stopAt, "stop-at", 0, "stop after decoding this value")
	return c
}

func readTokens(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, errors.Wrap(sc.Err(), "reading tokens")
}

// DecodeVarints decodes the concatenated hex tokens as a stream of
// varints and writes each value to w. When stop is not nil, decoding
// ends after the first value equal to *stop.
func DecodeVarints(ctx context.Context, w io.Writer, tokens []string, stop *uint64) error {
	var raw []byte
	for _, tok := range tokens {
		b, err := hex.DecodeString(tok)
		if err != nil {
			return errors.Wrapf(err, "token %q", tok)
		}
		raw = append(raw, b...)
	}

	rd := varint.NewReader[uint64](bytes.NewReader(raw))
	var values iter.Seq2[uint64, error] = rd.Values()
	if stop != nil {
		values = until.TakeUntil2(values, func(v uint64, err error) bool { return err == nil && v == *stop })
	}

	count := 0
	for v, err := range values {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return errors.Wrap(err, "writing output")
		}
		count++
	}
	logctx.Infof(ctx, "decoded %d values from %d of %d bytes", count, rd.Offset(), len(raw))
	return nil
}

// EncodeVarints parses each token as a decimal uint64 and writes its
// varint encoding as hex, one per line.
func EncodeVarints(w io.Writer, tokens []string) error {
	var buf []byte
	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "token %q", tok)
		}
		buf = varint.Append(buf[:0], v)
		if _, err := fmt.Fprintln(w, hex.EncodeToString(buf)); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
