package server

import (
	"fmt"
	"net/http"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// Server hosts the render viewer: an HTML page that streams per-iteration
// frames from the renderer over server-sent events. Presentation timing
// belongs to the browser; the renderer just emits one frame per iteration.
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a viewer server on the given port
func NewServer(port int, logger core.Logger) *Server {
	return &Server{port: port, logger: logger}
}

// Start registers routes and blocks serving HTTP
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Viewer listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Wavefront Path Tracer</title>
<style>
body { background: #1b1b1b; color: #ddd; font-family: monospace; text-align: center; }
img { image-rendering: pixelated; margin-top: 1em; border: 1px solid #444; }
</style>
</head>
<body>
<h3>Wavefront Path Tracer</h3>
<div>
  scene <select id="scene"><option>cornell</option><option>default</option></select>
  iterations <input id="iterations" value="200" size="5">
  <button onclick="start()">render</button>
  <span id="status"></span>
</div>
<img id="frame" width="400">
<script>
let source;
function start() {
  if (source) source.close();
  const scene = document.getElementById('scene').value;
  const iters = document.getElementById('iterations').value;
  source = new EventSource('/render?scene=' + scene + '&iterations=' + iters);
  source.onmessage = (e) => {
    const frame = JSON.parse(e.data);
    document.getElementById('frame').src = 'data:image/png;base64,' + frame.imageData;
    document.getElementById('status').textContent =
      'iteration ' + frame.iteration + '/' + frame.total;
    if (frame.isLast) source.close();
  };
  source.onerror = () => source.close();
}
</script>
</body>
</html>`
