package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/fatih/color"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"
	"golang.org/x/xerrors"

	"github.com/calebcase/radix/classify"
	"github.com/calebcase/radix/report"
)

var log = logging.Logger("radix")

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := newApp(cfg)

	if err := app.Run(os.Args); err != nil {
		log.Debugf("%+v", err)
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(cfg Config) *cli.App {
	return &cli.App{
		Name:      "radix",
		Usage:     "convert numbers between binary, octal, decimal and hexadecimal",
		ArgsUsage: "[input...]",
		Description: `Each input is converted and reported. Prefix binary with 0b, octal with 0o
   and hexadecimal with 0x. Anything else must be a decimal integer, which is
   also shown in two's and one's complement. Negative numbers must follow --,
   as in: radix -- -128

   With no arguments inputs are read from stdin, one per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "signed",
				Value: cfg.Signed,
				Usage: "read the leading bit of the minimal binary form of 0x/0o input, or of 0b input as written, as a sign bit",
			},
			&cli.BoolFlag{
				Name:  "color",
				Value: cfg.Color,
				Usage: "highlight invalid characters",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevel("radix", cctx.String("log-level"))
		},
		Action: func(cctx *cli.Context) error {
			mode := report.Unsigned
			if cctx.Bool("signed") {
				mode = report.Signed
			}

			c := &converter{
				w:     cctx.App.Writer,
				mode:  mode,
				color: cctx.Bool("color"),
			}

			if cctx.NArg() > 0 {
				for _, input := range cctx.Args().Slice() {
					if err := c.convert(input); err != nil {
						return err
					}
				}

				return nil
			}

			return c.convertAll(cctx.App.Reader)
		},
	}
}

type converter struct {
	w     io.Writer
	mode  report.Mode
	color bool
}

// convertAll converts every non-blank line of r. Failures do not stop the
// remaining lines.
func (c *converter) convertAll(r io.Reader) error {
	var group errs.Group

	// Lines are read whole, however long they are.
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')

		input := strings.TrimSpace(line)
		if input != "" {
			if cerr := c.convert(input); cerr != nil {
				log.Warnw("conversion failed", "input", input, "error", cerr)
				group.Add(cerr)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			group.Add(xerrors.Errorf("reading input: %w", err))
			break
		}
	}

	return group.Err()
}

func (c *converter) convert(input string) error {
	tok, err := classify.Classify(input)
	if err != nil {
		return c.describe(input, err)
	}

	log.Debugw("classified", "input", input, "kind", tok.Kind.Abbr, "base", tok.Base(), "mode", c.mode)

	out, err := report.Render(tok, c.mode)
	if err != nil {
		return xerrors.Errorf("converting %s: %w", input, err)
	}

	_, err = fmt.Fprintln(c.w, out)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// describe turns a classification failure into the message shown to users.
func (c *converter) describe(input string, err error) error {
	if ice, ok := classify.InvalidChars(err); ok {
		var style func(string) string
		if c.color {
			style = func(s string) string {
				return color.New(color.FgRed, color.Bold).Sprint(s)
			}
		}

		return xerrors.Errorf("Invalid characters at marked positions:\n%s", report.ErrorDisplay(ice.Input, ice.Positions, style))
	}

	if classify.InvalidFormat.Has(err) {
		return xerrors.Errorf("Unknown number format: %s. Expected format: 0b for binary, 0o for octal, 0x for hex, or a plain decimal number", input)
	}

	return oops.Trace(err)
}
