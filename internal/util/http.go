package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxDownloadBytes caps remote fetches.
const MaxDownloadBytes = 16 << 20

func GetBytes(url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxDownloadBytes))
}
