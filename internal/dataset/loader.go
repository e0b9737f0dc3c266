package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DataFiles registers the benchmark CSV datasets served by the platform.
var DataFiles = map[string]string{
	"generic_talent_data": "generic_talent_data.csv",
	"field_tests":         "field_tests.csv",
	"medical_data":        "medical_data.csv",
	"sport_specific_kpis": "sport_specific_kpis.csv",
	"athletes":            "athletes.csv",
	"athlete_tests":       "athlete_tests.csv",
}

// ErrUnknownDataset is returned for names outside the registry.
var ErrUnknownDataset = errors.New("unknown dataset")

// Status reports one dataset's load outcome for the catalog endpoint.
type Status struct {
	Dataset string `json:"dataset"`
	File    string `json:"file"`
	Loaded  bool   `json:"loaded"`
	Rows    int    `json:"rows"`
	Error   string `json:"error,omitempty"`
}

// Loader reads registered CSV datasets from a directory on the given fs.
type Loader struct {
	fs  afero.Fs
	dir string
	log *logrus.Logger
}

func NewLoader(fs afero.Fs, dir string, log *logrus.Logger) *Loader {
	return &Loader{fs: fs, dir: dir, log: log}
}

// Load reads one registered dataset into a Table. The first CSV record is
// the header row; ragged data rows are tolerated.
func (l *Loader) Load(name string) (*Table, error) {
	filename, ok := DataFiles[name]
	if !ok {
		return nil, ErrUnknownDataset
	}

	f, err := l.fs.Open(filepath.Join(l.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", filename, err)
	}
	if len(records) == 0 {
		return NewTable(name, nil, nil), nil
	}

	return NewTable(name, records[0], records[1:]), nil
}

// LoadAll loads every registered dataset, skipping missing or malformed
// files with a warning. The status list mirrors the dashboard's data-file
// panel and is sorted by dataset name.
func (l *Loader) LoadAll() (map[string]*Table, []Status) {
	tables := make(map[string]*Table, len(DataFiles))
	statuses := make([]Status, 0, len(DataFiles))

	for name, filename := range DataFiles {
		status := Status{Dataset: name, File: filename}
		table, err := l.Load(name)
		if err != nil {
			status.Error = err.Error()
			l.log.Warnf("Failed to load dataset %s: %+v", name, err)
		} else {
			status.Loaded = true
			status.Rows = len(table.Rows)
			tables[name] = table
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Dataset < statuses[j].Dataset })
	return tables, statuses
}
