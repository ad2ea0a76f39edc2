package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Read returns at most maxLines from the first limit bytes of the file at
// path, counted back from limit. A negative limit reads the whole file.
func Read(fs afero.Fs, path string, maxLines int, limit int64) ([]string, error) {
	if maxLines <= 0 || limit == 0 {
		return nil, nil
	}
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit)
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadBytes('\n')
		if len(chunk) > 0 {
			ring[idx] = trimEOL(chunk)
			idx = (idx + 1) % maxLines
			if count < maxLines {
				count++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
