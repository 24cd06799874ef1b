package main

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/snapshot"
)

// snapshotQuery is the query string of /snapshot.png.
type snapshotQuery struct {
	Ticks int    `form:"ticks"`
	Seed  uint64 `form:"seed"`
	Width int    `form:"width"`
}

const defaultSnapshotTicks = 600

func newRouter(tuning config.Tuning, sshHost string, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/snapshot.png", func(c *gin.Context) {
		q := snapshotQuery{Ticks: defaultSnapshotTicks, Seed: 1}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts := snapshot.Options{Ticks: q.Ticks, Seed: q.Seed, Width: q.Width}
		if err := opts.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		if err := snapshot.WritePNG(&buf, tuning, opts); err != nil {
			logger.Error("snapshot failed", "err", err, "ticks", q.Ticks, "seed", q.Seed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})

	return r
}
