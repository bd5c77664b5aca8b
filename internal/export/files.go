package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"localboard/internal/state"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteJSON writes the document layout: an indented JSON array of shapes.
func WriteJSON(w io.Writer, shapes []state.Shape) error {
	data, err := state.MarshalShapes(shapes)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ReadJSON reads a document written by WriteJSON.
func ReadJSON(r io.Reader) ([]state.Shape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return state.UnmarshalShapes(data)
}

// LoadJSONFile reads a document from path.
func LoadJSONFile(path string) ([]state.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// SaveFile creates path and hands it to write, closing it afterwards and
// reporting the first error.
func SaveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(f)
}
