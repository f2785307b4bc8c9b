package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func textToNumberCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "text-to-number <phrase...>",
		Aliases: []string{"t2n"},
		Short:   "Parse an English cardinal phrase, e.g. \"one hundred and five\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			n, err := c.converter.TextToNumber(phrase)
			if err != nil {
				return err
			}
			return c.print(phrase, n)
		},
	}
}

func numberToTextCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "number-to-text <integer>",
		Aliases: []string{"n2t"},
		Short:   "Render an integer as an English ordinal phrase",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.converter.NumberToText(args[0])
			if err != nil {
				return err
			}
			return c.print(args[0], text)
		},
	}
}

func base64ToNumberCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "base64-to-number <base64>",
		Aliases: []string{"b2n"},
		Short:   "Decode base64 little-endian two's-complement bytes into an integer",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.converter.Base64ToNumber(args[0])
			if err != nil {
				return err
			}
			return c.print(args[0], n)
		},
	}
}

func numberToBase64Cmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "number-to-base64 <integer>",
		Aliases: []string{"n2b"},
		Short:   "Encode an integer as minimal little-endian two's-complement bytes in base64",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := c.converter.NumberToBase64(args[0])
			if err != nil {
				return err
			}
			return c.print(args[0], encoded)
		},
	}
}
