// Command encode-ber parses value descriptors from its arguments and
// writes the concatenated BER-encoded bytes to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tlvcodec/asn1"
	"github.com/tlvcodec/asn1/internal/descriptor"
)

func main() {
	app := &cli.App{
		Name:      "encode-ber",
		Usage:     "encode [class construction tag]::=type:literal descriptors as BER",
		ArgsUsage: "DESCRIPTOR...",
		Action: func(c *cli.Context) error {
			for _, arg := range c.Args().Slice() {
				d, err := descriptor.Parse(arg)
				if err != nil {
					return err
				}
				out, err := descriptor.Encode(d, asn1.BER)
				if err != nil {
					return err
				}
				os.Stdout.Write(out)
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "encode-ber:", err)
		os.Exit(1)
	}
}
