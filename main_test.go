package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listgrip/internal/domain"
)

func TestLoadItemsPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\tone\ntwo\n"), 0644))

	items, err := loadItems(path, []string{"ignored"}, true, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, domain.Labels(items))
	assert.Equal(t, "1", items[0].ID)
}

func TestLoadItemsFromArgsAndConfig(t *testing.T) {
	items, err := loadItems("", []string{"a", "b"}, true, []string{"c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, domain.Labels(items))

	items, err = loadItems("", nil, true, []string{"x\tc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, domain.Labels(items))
	assert.Equal(t, "x", items[0].ID)
}

func TestLoadItemsMissingFile(t *testing.T) {
	_, err := loadItems(filepath.Join(t.TempDir(), "none"), nil, true, nil)
	assert.ErrorContains(t, err, "failed to open items file")
}

func TestPrintSelection(t *testing.T) {
	items := []*domain.Item{domain.NewItem("1", "one"), domain.NewItem("", "two")}

	var labels, ids bytes.Buffer
	printSelection(&labels, items, false)
	printSelection(&ids, items, true)

	assert.Equal(t, "one\ntwo\n", labels.String())
	assert.Equal(t, "1\ntwo\n", ids.String(), "items without an id fall back to the label")
}
