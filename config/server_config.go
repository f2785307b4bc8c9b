package config

import (
	"path/filepath"
)

type ServerCfgOpts struct {
	Addr         string `yaml:"addr"`
	LogDir       string `yaml:"log-dir"`
	LockFilePath string `yaml:"lock-file"`
}

const (
	defaultAddr     = ":6380"
	defaultDataDir  = ".numconv"
	defaultLockName = "numconv-redis.lock"
	defaultLogsName = "logs"
)

// DefaultServerOpts returns server options rooted at baseDir
// (normally the user's home directory).
func DefaultServerOpts(baseDir string) *ServerCfgOpts {
	root := filepath.Join(baseDir, defaultDataDir)
	return &ServerCfgOpts{
		Addr:         defaultAddr,
		LogDir:       filepath.Join(root, defaultLogsName),
		LockFilePath: filepath.Join(root, defaultLockName),
	}
}
