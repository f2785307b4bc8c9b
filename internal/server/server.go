package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/redcon"

	"NumConv/config"
	"NumConv/convops"
	"NumConv/internal/utils/fileutils"
	"NumConv/log"
)

// Server exposes a converter over the redis protocol
type Server struct {
	cfg  *config.ServerCfgOpts
	conv convops.ConversionOps
}

func New(cfg *config.ServerCfgOpts, conv convops.ConversionOps) *Server {
	return &Server{cfg: cfg, conv: conv}
}

// Handle dispatches one command. Conversions are pure, so no locking is needed.
func (s *Server) Handle(conn redcon.Conn, cmd redcon.Command) {
	if len(cmd.Args) == 0 {
		conn.WriteError(fmt.Sprintf("ERR no arguments for command: [%s]", string(cmd.Raw)))
		return
	}

	commandName := strings.ToLower(string(cmd.Args[0]))

	commandFunc, supported := CommandMap[commandName]
	if !supported {
		conn.WriteError("ERR unknown command '" + commandName + "'")
		return
	}
	log.Debugf("%s: %s", conn.RemoteAddr(), commandName)
	commandFunc(conn, cmd.Args, s.conv)
}

// ListenAndServe holds the configured lock file and serves until ctx is done
// or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.cfg.LockFilePath != "" {
		lockFile, err := fileutils.AcquireLockFile(s.cfg.LockFilePath)
		if err != nil {
			return fmt.Errorf("another numconv server may be running: %w", err)
		}
		defer func() {
			if err := fileutils.FreeLockFile(lockFile); err != nil {
				log.Warnf("%v", err)
			}
		}()
	}

	srv := redcon.NewServer(s.cfg.Addr,
		s.Handle,
		func(conn redcon.Conn) bool {
			log.Debugf("accept: %s", conn.RemoteAddr())
			return true
		},
		func(conn redcon.Conn, err error) {
			log.Debugf("closed: %s, err: %v", conn.RemoteAddr(), err)
		},
	)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			log.Infof("shutting down numconv server on %s", s.cfg.Addr)
			srv.Close()
		case <-stop:
		}
	}()

	log.Infof("numconv server listening on %s", s.cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
