// Command decode-der reads DER-encoded bytes from standard input and
// pretty-prints the decoded element tree to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tlvcodec/asn1"
	"github.com/tlvcodec/asn1/internal/cmdio"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "decode-der: unexpected error:", r)
			os.Exit(cmdio.ExitUnexpected)
		}
	}()

	app := &cli.App{
		Name:  "decode-der",
		Usage: "pretty-print a DER-encoded element tree read from stdin",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "n", Usage: "strip one trailing LF from input"},
			&cli.BoolFlag{Name: "r", Usage: "strip a trailing CRLF from input"},
		},
		Action: func(c *cli.Context) error {
			os.Exit(run(c.Bool("n"), c.Bool("r")))
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "decode-der:", err)
		os.Exit(cmdio.ExitUnexpected)
	}
}

func run(stripLF, stripCRLF bool) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode-der:", err)
		return cmdio.ExitUnexpected
	}
	data = cmdio.TrimTrailingNewline(data, stripLF, stripCRLF)

	off := 0
	for off < len(data) {
		el, n, err := asn1.DecodeDERElement(data[off:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "decode-der:", err)
			if asn1.IsKind(err, asn1.KindTruncation) {
				return cmdio.ExitTruncation
			}
			return cmdio.ExitInvalidValue
		}
		fmt.Print(el.PrettyPrint())
		off += n
	}
	return cmdio.ExitOK
}
