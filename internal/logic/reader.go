package logic

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"listgrip/internal/domain"
)

// ParseItem turns one input line into an item. A tab separates an optional
// id from the label.
func ParseItem(line string) *domain.Item {
	line = strings.TrimRight(line, "\r\n")
	if id, label, ok := strings.Cut(line, "\t"); ok {
		return domain.NewItem(strings.TrimSpace(id), label)
	}
	return domain.NewItem("", line)
}

// ReadItems reads one item per line, skipping blank lines
func ReadItems(r io.Reader) ([]*domain.Item, error) {
	var items []*domain.Item
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, ParseItem(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}
