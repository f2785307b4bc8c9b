package commands

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"NumConv"
	"NumConv/config"
	"NumConv/log"
)

// cli carries what the persistent flags and the config file resolve to
type cli struct {
	cfgFile string
	asJSON  bool
	noColor bool
	verbose bool

	fileCfg   *config.FileConfig
	converter *NumConv.Converter

	out      io.Writer
	colorOut bool
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree; tests call it once per run
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "numconv",
		Short:        "Convert between number words, integers and base64 two's-complement text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.out = cmd.OutOrStdout()
			c.colorOut = !c.noColor
			if c.out == os.Stdout {
				c.out = colorable.NewColorableStdout()
			} else {
				c.colorOut = false
			}

			log.SetLogger(log.NewConsoleLogger(c.verbose))

			fileCfg, err := config.ReadConfig(c.cfgFile)
			if err != nil {
				return err
			}
			c.fileCfg = fileCfg
			c.converter = NumConv.NewConverter(NumConv.WithLimits(fileCfg.Limits))
			log.Debugf("limits: phrase %d bytes, base64 %d chars", fileCfg.Limits.MaxPhraseLength, fileCfg.Limits.MaxEncodedLength)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.numconv/config.yaml)")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print input and result as JSON")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable coloured JSON output")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		textToNumberCmd(c),
		numberToTextCmd(c),
		base64ToNumberCmd(c),
		numberToBase64Cmd(c),
		serveCmd(c),
	)
	return root
}
