package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"NumConv/internal/server"
	"NumConv/log"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		addr     string
		logDir   string
		lockFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversions over the redis protocol",
		Long: `Serve the conversions over the redis protocol.

Commands: PING, QUIT, COMMAND, TEXT2NUM <phrase...>, NUM2TEXT <int>,
B642NUM <base64>, NUM2B64 <int>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srvCfg := c.fileCfg.Server
			if cmd.Flags().Changed("addr") {
				srvCfg.Addr = addr
			}
			if cmd.Flags().Changed("log-dir") {
				srvCfg.LogDir = logDir
			}
			if cmd.Flags().Changed("lock-file") {
				srvCfg.LockFilePath = lockFile
			}

			log.InitLogger(srvCfg.LogDir)
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(&srvCfg, c.converter).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :6380)")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "log directory (default ~/.numconv/logs)")
	cmd.Flags().StringVar(&lockFile, "lock-file", "", "single-instance lock file, empty disables it")
	return cmd
}
