package main

import (
	_ "embed"
	"net"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tomz197/shmup/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	tuning, err := config.Load(config.GetEnv("SHMUP_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := newRouter(tuning, sshHost, logger)

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
