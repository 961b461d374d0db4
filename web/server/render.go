package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/renderer"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/scene"
)

// FrameUpdate is one iteration's frame sent to the browser via SSE
type FrameUpdate struct {
	Iteration int    `json:"iteration"`
	Total     int    `json:"total"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	IsLast    bool   `json:"isLast"`
}

// handleRender starts a render session for the request and streams one
// frame per completed iteration until done or the client disconnects
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sc, iterations, err := parseRenderRequest(r)
	if err != nil {
		s.sseError(w, flusher, err)
		return
	}

	session, err := renderer.NewSession(sc, renderer.DefaultConfig(), s.logger)
	if err != nil {
		s.sseError(w, flusher, err)
		return
	}
	defer session.Close()

	ctx := r.Context()
	frameChan, errChan := session.Render(ctx, renderer.RenderOptions{Iterations: iterations})

	for frame := range frameChan {
		var buf bytes.Buffer
		if err := png.Encode(&buf, frame.Image); err != nil {
			s.sseError(w, flusher, err)
			return
		}

		update := FrameUpdate{
			Iteration: frame.Iteration,
			Total:     iterations,
			ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
			IsLast:    frame.IsLast,
		}
		payload, err := json.Marshal(update)
		if err != nil {
			s.sseError(w, flusher, err)
			return
		}

		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	if err := <-errChan; err != nil {
		s.logger.Printf("Render stopped: %v\n", err)
	}
}

// parseRenderRequest validates the scene and iteration query parameters
func parseRenderRequest(r *http.Request) (*scene.Scene, int, error) {
	var sc *scene.Scene
	switch name := r.URL.Query().Get("scene"); name {
	case "", "cornell":
		sc = scene.NewCornellScene()
	case "default":
		sc = scene.NewDefaultScene()
	default:
		return nil, 0, fmt.Errorf("unknown scene: %s", name)
	}

	iterations := 200
	if raw := r.URL.Query().Get("iterations"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, 0, fmt.Errorf("invalid iterations: %s", raw)
		}
		iterations = parsed
	}
	return sc, iterations, nil
}

func (s *Server) sseError(w http.ResponseWriter, flusher http.Flusher, err error) {
	fmt.Fprintf(w, "event: error\ndata: %s\n\n", err)
	flusher.Flush()
}
