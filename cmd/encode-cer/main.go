// Command encode-cer parses value descriptors from its arguments and
// writes the concatenated CER-encoded bytes to standard output.
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
		Name:      "encode-cer",
		Usage:     "encode [class construction tag]::=type:literal descriptors as CER",
		ArgsUsage: "DESCRIPTOR...",
		Action: func(c *cli.Context) error {
			for _, arg := range c.Args().Slice() {
				d, err := descriptor.Parse(arg)
				if err != nil {
					return err
				}
				out, err := descriptor.Encode(d, asn1.CER)
				if err != nil {
					return err
				}
				os.Stdout.Write(out)
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "encode-cer:", err)
		os.Exit(1)
	}
}
