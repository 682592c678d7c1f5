package meshing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Dump сериализуемый снимок сеток одного чанка
type Dump struct {
	Chunk    [3]int        `json:"chunk"`
	Mode     string        `json:"mode"`
	Render   *RenderMesh   `json:"render,omitempty"`
	Collider *ColliderMesh `json:"collider,omitempty"`
}

// WriteJSONZstd пишет снимок в w как JSON, сжатый zstd
func WriteJSONZstd(w io.Writer, dump Dump) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	if err := json.NewEncoder(bw).Encode(&dump); err != nil {
		enc.Close()
		return fmt.Errorf("json encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadJSONZstd читает снимок, записанный WriteJSONZstd
func ReadJSONZstd(r io.Reader) (Dump, error) {
	var dump Dump

	dec, err := zstd.NewReader(r)
	if err != nil {
		return dump, err
	}
	defer dec.Close()

	if err := json.NewDecoder(bufio.NewReader(dec)).Decode(&dump); err != nil {
		return dump, fmt.Errorf("json decode: %w", err)
	}
	return dump, nil
}

// WriteDumpFile пишет снимок в файл, создавая каталоги
func WriteDumpFile(path string, dump Dump) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	return writeAndClose(f, dump)
}

// writeAndClose пишет снимок и закрывает wc; ошибка закрытия тоже возвращается
func writeAndClose(wc io.WriteCloser, dump Dump) error {
	if err := WriteJSONZstd(wc, dump); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

// ReadDumpFile читает снимок из файла
func ReadDumpFile(path string) (Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dump{}, err
	}
	defer f.Close()

	return ReadJSONZstd(f)
}
