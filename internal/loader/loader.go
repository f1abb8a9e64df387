// Package loader reads process descriptions from CSV and YAML files.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// ProcessFile is the YAML layout of a process list.
type ProcessFile struct {
	Processes []core.Process `yaml:"processes"`
}

// LoadFile picks the parser from the file extension: .csv, .yaml or .yml.
func LoadFile(path string) ([]core.Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(bytes.NewReader(data))
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadCSV parses rows of id,burst,arrival[,priority]. A first row is treated as
// a header only when neither its burst nor its arrival column is a number.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	line := 1
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
		line++
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		n := i + line
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: expected 3 or 4 columns, got %d", n, len(row))
		}
		burst, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: burst: %w", n, err)
		}
		arrival, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: arrival: %w", n, err)
		}
		p := core.Process{
			ID:            row[0],
			Name:          "P" + row[0],
			ArrivalTime:   arrival,
			BurstTime:     burst,
			RemainingTime: burst,
		}
		if len(row) == 4 {
			if p.Priority, err = strconv.Atoi(row[3]); err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", n, err)
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func isHeader(row []string) bool {
	if len(row) < 3 {
		return false
	}
	for _, column := range row[1:3] {
		if _, err := strconv.Atoi(column); err == nil {
			return false
		}
	}
	return true
}

// LoadYAML decodes a ProcessFile strictly; unknown keys are rejected.
func LoadYAML(r io.Reader) ([]core.Process, error) {
	var file ProcessFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing process file: %w", err)
	}

	for i := range file.Processes {
		p := &file.Processes[i]
		if p.ID == "" {
			p.ID = strconv.Itoa(i + 1)
		}
		if p.Name == "" {
			p.Name = "P" + p.ID
		}
		p.RemainingTime = p.BurstTime
	}
	return file.Processes, nil
}
