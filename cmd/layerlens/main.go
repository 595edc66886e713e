// Command layerlens converts layer-dump JSON documents into inferred
// structure trees. Each input file is processed independently; with
// -jobs > 1 files are converted concurrently.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"layerlens"
	"layerlens/config"
	"layerlens/model"
	"layerlens/preview"
)

// document is the layer-dump format produced by the upstream decoder.
type document struct {
	CanvasWidth float64           `json:"canvasWidth"`
	Layers      []model.LayerNode `json:"layers"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("layerlens: ")

	configPath := flag.String("config", "", "path to a YAML tuning file (defaults apply when empty)")
	outDir := flag.String("out", ".", "directory for output files")
	writePreview := flag.Bool("preview", false, "also write a wireframe PNG per input")
	pretty := flag.Bool("pretty", false, "indent the output JSON")
	jobs := flag.Int("jobs", runtime.NumCPU(), "maximum concurrent file conversions")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no input files; usage: layerlens [flags] file.json ...")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg = loaded
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	var g errgroup.Group
	g.SetLimit(*jobs)

	for _, path := range flag.Args() {
		path := path
		g.Go(func() error {
			return convertFile(path, *outDir, cfg, *pretty, *writePreview)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("%v", err)
	}
}

// convertFile runs one document through the pipeline and writes the
// tree JSON (and optionally a preview PNG) next to the output dir.
func convertFile(path, outDir string, cfg config.Config, pretty, writePreview bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	conv := layerlens.New(layerlens.WithConfig(cfg))
	tree, stats, err := conv.Convert(doc.Layers, doc.CanvasWidth)
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(tree, "", "  ")
	} else {
		out, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	treePath := filepath.Join(outDir, base+".tree.json")
	if err := os.WriteFile(treePath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", treePath, err)
	}

	if writePreview {
		pngPath := filepath.Join(outDir, base+".png")
		f, err := os.Create(pngPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", pngPath, err)
		}
		if err := preview.WritePNG(f, tree, preview.DefaultOptions()); err != nil {
			f.Close()
			return fmt.Errorf("render %s: %w", pngPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	log.Printf("%s: %d leaves -> %d nodes in %d rows (%d filtered)",
		path, stats.Leaves, stats.Nodes, stats.Rows, stats.Filtered)
	return nil
}
