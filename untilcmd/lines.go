package untilcmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/brendoncarroll/stdctx/logctx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/tychoish/until"
)

func newLinesCmd(ctx context.Context, conf *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "lines [FILE...]",
		Short: "prints lines up to and including the first line matching --match",
		Long: "prints lines up to and including the first line matching --match.\n" +
			"Reads stdin when no files are given. With several files each\n" +
			"is read concurrently and printed in order under a header.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := conf.GetString("match")
			if pattern == "" {
				return errors.New("--match is required")
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return errors.Wrap(err, "--match")
			}
			if len(args) == 0 {
				_, err := TakeLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), re)
				return err
			}
			return takeFiles(ctx, cmd.OutOrStdout(), args, re, conf.GetInt("jobs"))
		},
	}
	c.Flags().StringP("match", "m", "", "regular expression that ends the output")
	c.Flags().IntP("jobs", "j", conf.GetInt("jobs"), "files to read at once")
	for _, name := range []string{"match", "jobs"} {
		if err := conf.BindPFlag(name, c.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	return c
}

func scanLines(sc *bufio.Scanner) until.Source[string] {
	return until.FuncSource(func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	})
}

// TakeLines copies lines from r to w up to and including the first
// line that matches re, and returns the number of lines written. It
// stops reading as soon as the matching line is written.
func TakeLines(ctx context.Context, r io.Reader, w io.Writer, re *regexp.Regexp) (int, error) {
	sc := bufio.NewScanner(r)
	it := until.New(scanLines(sc), re.MatchString)

	count := 0
	for line := range it.Seq() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return count, errors.Wrap(err, "writing output")
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, errors.Wrap(err, "reading input")
	}

	if it.Done() {
		logctx.Infof(ctx, "matched %q at line %d", re.String(), count)
	} else {
		logctx.Infof(ctx, "no line matched %q in %d lines", re.String(), count)
	}
	return count, nil
}

func takeFiles(ctx context.Context, w io.Writer, paths []string, re *regexp.Regexp, jobs int) error {
	outputs := make([]bytes.Buffer, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for i, path := range paths {
		eg.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "opening %s", path)
			}
			defer f.Close()

			if _, err := TakeLines(ctx, f, &outputs[i], re); err != nil {
				return errors.Wrap(err, path)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", path)
		}
		if _, err := outputs[i].WriteTo(w); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
