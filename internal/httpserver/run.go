package httpserver

import (
	"fmt"

	pkgErrors "smartcity-complaints/pkg/errors"
)

var errNotReady = pkgErrors.NewHTTPError(503, "storage is not reachable")

// Run wires all handlers and blocks serving HTTP until the listener
// fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("map handlers: %w", err)
	}

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
