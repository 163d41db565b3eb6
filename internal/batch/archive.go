package batch

import (
	"archive/zip"
	"bytes"
	"time"

	"github.com/youruser/cardforge/internal/export"
)

// writeArchive packs artifacts in order. Everything stays in memory.
func writeArchive(arts []*export.Artifact) ([]byte, []string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	now := time.Now()
	names := make([]string, 0, len(arts))
	for _, a := range arts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     a.Filename,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return nil, nil, err
		}
		if _, err := w.Write(a.Data); err != nil {
			return nil, nil, err
		}
		names = append(names, a.Filename)
	}
	if err := zw.Close(); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), names, nil
}
