package export

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"localboard/internal/state"
)

func document() []state.Shape {
	return []state.Shape{
		{ID: "p", Kind: state.KindPen, Stroke: "#ff0000", StrokeWidth: 3, Geom: state.Freehand{Points: []state.Point{{X: 1, Y: 1}, {X: 20, Y: 30}}}},
		{ID: "c", Kind: state.KindCylinder, Stroke: "blue", StrokeWidth: 2, Rotation: 20, Geom: state.Box{X: 40, Y: 40, Width: 30, Height: 50}},
		{ID: "a", Kind: state.KindArrow, StrokeWidth: 2, Geom: state.Segment{A: state.Point{X: 5, Y: 90}, B: state.Point{X: 90, Y: 5}}},
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	want := document()
	err := SaveFile(path, func(w io.Writer) error { return WriteJSON(w, want) })
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadJSONFile(path)
	if err != nil {
		t.Fatalf("LoadJSONFile: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("not json")); err == nil {
		t.Error("expected an error")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, RenderToRaster(document(), 64, 48, Options{})); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("size = %v, want 64x48", b)
	}
}

func TestLoadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(green, 3, 2)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, src := range []string{path, "file://" + filepath.ToSlash(path)} {
		img, err := LoadImageFile(src)
		if err != nil {
			t.Fatalf("LoadImageFile(%q): %v", src, err)
		}
		if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
			t.Errorf("%s: size %v", src, b)
		}
	}
	if _, err := LoadImageFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestWritePDF(t *testing.T) {
	shapes := append(document(), state.Shape{
		ID:   "i",
		Kind: state.KindImage,
		Geom: state.Picture{X: 10, Y: 10, Width: 20, Height: 20, Src: "green"},
	})
	opts := Options{
		Background: white,
		Images:     func(string) (image.Image, error) { return solid(green, 4, 4), nil },
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, shapes, 200, 100, opts); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}
