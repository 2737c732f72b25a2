// This file is part of Animplayer.
//
// Animplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Animplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Animplayer.  If not, see <https://www.gnu.org/licenses/>.


package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/animplayer/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Server is a running statistics server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch a new goroutine running the statistics server. The address of the
// server is written to output.
func Launch(output io.Writer) *Server {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	srv := &Server{
		mgr: statsview.New(),
	}

	go func() {
		srv.mgr.Start()
		logger.Log(logger.Allow, "statsview", "server stopped")
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	logger.Logf(logger.Allow, "statsview", "launched at %s", Address)

	return srv
}

// Stop the statistics server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
