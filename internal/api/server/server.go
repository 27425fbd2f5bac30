package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// New builds the HTTP server. No write timeout is set because /api/events
// keeps its response open for as long as the dashboard is connected.
func New(addr string, router *ginext.Engine, readTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}
}
