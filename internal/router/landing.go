package router

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/budgettrack/backend/internal/static"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Landing serves index.html from staticDir. If staticDir is empty or does
// not contain an index.html, the built-in page is served.
func Landing(staticDir string) gin.HandlerFunc {
	index := ""
	if staticDir != "" {
		index = filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Error().Err(err).Str("path", index).Msg("Landing")
			}
			log.Warn().Str("path", index).Msg("Landing page not found, using the built-in one")
			index = ""
		}
	}

	page, err := fs.ReadFile(static.Files, "index.html")
	if err != nil {
		// The file is embedded at build time
		panic(err)
	}

	return func(c *gin.Context) {
		if index != "" {
			c.File(index)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
