package main

import (
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/renderer"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/scene"
)

// Checkpoint is the saved render state: the un-normalized accumulation
// buffer plus the iteration count it contains
type Checkpoint struct {
	Width      int
	Height     int
	Iterations int
	Accum      []core.Vec3
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cornell'")
	iterations := flag.Int("iterations", 100, "Number of render iterations")
	depth := flag.Int("depth", 0, "Trace depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	noAA := flag.Bool("no-aa", false, "Disable antialiasing jitter")
	sortMaterials := flag.Bool("sort-materials", false, "Sort active paths by material before shading")
	motionBlur := flag.Bool("motion-blur", false, "Enable the per-iteration geometry update stage")
	resume := flag.String("resume", "", "Checkpoint file to resume from")
	checkpoint := flag.String("checkpoint", "", "Checkpoint file to write after rendering")
	flag.Parse()

	fmt.Println("Starting wavefront path tracer...")

	sc, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.Config{
		TraceDepth:     *depth,
		Antialiasing:   !*noAA,
		SortByMaterial: *sortMaterials,
		MotionBlur:     *motionBlur,
		NumWorkers:     *workers,
	}

	session, err := renderer.NewSession(sc, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating render session: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	if *resume != "" {
		if err := loadCheckpoint(session, *resume); err != nil {
			fmt.Printf("Error resuming from %s: %v\n", *resume, err)
			os.Exit(1)
		}
		fmt.Printf("Resumed from %s at iteration %d\n", *resume, session.Iterations())
	}

	frameChan, errChan := session.Render(context.Background(), renderer.RenderOptions{
		Iterations: *iterations,
		LogEvery:   10,
	})

	for range frameChan {
		// Frames stream per iteration; the CLI only keeps the last one
	}
	if err := <-errChan; err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	if *checkpoint != "" {
		if err := saveCheckpoint(session, *checkpoint); err != nil {
			fmt.Printf("Error writing checkpoint: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Checkpoint written to %s\n", *checkpoint)
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(session, filename); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s after %d iterations\n", filename, session.Iterations())
}

// createScene builds one of the built-in scenes by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func savePNG(session *renderer.Session, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, session.Frame())
}

func saveCheckpoint(session *renderer.Session, filename string) error {
	accum, iterations := session.Snapshot()
	width, height := session.Size()

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(Checkpoint{
		Width:      width,
		Height:     height,
		Iterations: iterations,
		Accum:      accum,
	})
}

func loadCheckpoint(session *renderer.Session, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var cp Checkpoint
	if err := gob.NewDecoder(file).Decode(&cp); err != nil {
		return err
	}

	width, height := session.Size()
	if cp.Width != width || cp.Height != height {
		return fmt.Errorf("checkpoint is %dx%d, session is %dx%d", cp.Width, cp.Height, width, height)
	}
	return session.Resume(cp.Accum, cp.Iterations)
}
