package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkubicek/preklad"
)

// readURLs resolves the batch input into a URL list. A http(s) input is
// treated as a sitemap; a .csv file is read column-wise; anything else
// is a newline-separated list.
func readURLs(deps *Dependencies, input string) ([]string, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return deps.Sitemaps.DiscoverURLs(deps.Ctx, input)
	}
	if strings.EqualFold(filepath.Ext(input), ".csv") {
		return readCSV(input)
	}
	return readList(input)
}

// readList reads a newline-separated URL list. Blank lines and lines
// starting with # are ignored.
func readList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "read URL list: %v", err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

// readCSV reads URLs from the first column of a CSV file. A header row
// whose first cell is "url" is skipped.
func readCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "read CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, preklad.Errorf(preklad.EINVALID, "parse CSV file %s: %v", path, err)
	}

	var urls []string
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		cell := strings.TrimSpace(record[0])
		if cell == "" {
			continue
		}
		if i == 0 && strings.EqualFold(cell, "url") {
			continue
		}
		urls = append(urls, cell)
	}
	return urls, nil
}
