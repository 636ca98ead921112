package hvac

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// HistoryRecord is a computed formula result, as saved in the history.
type HistoryRecord struct {
	ID      string    `yaml:"id"`
	Formula FormulaID `yaml:"formula"`
	Inputs  []string  `yaml:"inputs,flow"`
	Output  string    `yaml:"output"`
	Date    time.Time `yaml:"date"`
}

type historyFile struct {
	Version string          `yaml:"version"`
	Records []HistoryRecord `yaml:"records"`
}

// History is a ResultSink persisting records in a YAML file.
type History struct {
	path   string
	logger *logrus.Entry
	file   historyFile
}

// DefaultHistoryPath returns the per-user history file location.
func DefaultHistoryPath() (string, error) {
	return xdg.DataFile("hvacworks/history.yaml")
}

// OpenHistory loads the history saved at path. A missing file is an
// empty history.
func OpenHistory(path string) (*History, error) {
	h := &History{
		path:   path,
		logger: tm.NewLogger("history"),
		file:   historyFile{Version: HVACWORKS_VERSION},
	}
	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return h, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, &h.file); err != nil {
		return nil, fmt.Errorf("invalid history file '%s': %w", path, err)
	}
	ok, err := VersionAreCompatible(HVACWORKS_VERSION, h.file.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid history file '%s': %w", path, err)
	}
	if ok == false {
		return nil, fmt.Errorf("history file '%s' was written by incompatible version %s (current: %s)",
			path, h.file.Version, HVACWORKS_VERSION)
	}
	h.file.Version = HVACWORKS_VERSION
	return h, nil
}

func (h *History) Path() string {
	return h.path
}

func (h *History) save() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}
	content, err := yaml.Marshal(h.file)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(h.path, content, 0644)
}

// Record appends a record and saves the history. Failures are logged.
func (h *History) Record(formula FormulaID, inputs []string, output string) {
	r := HistoryRecord{
		ID:      uuid.New().String(),
		Formula: formula,
		Inputs:  append([]string(nil), inputs...),
		Output:  output,
		Date:    clock.Now(),
	}
	h.file.Records = append(h.file.Records, r)
	if err := h.save(); err != nil {
		h.logger.WithError(err).WithField("path", h.path).Error("could not save history")
		return
	}
	h.logger.WithFields(logrus.Fields{
		"formula": formula,
		"output":  output,
	}).Debug("recorded")
}

// Records lists saved records, oldest first. An empty formula lists
// them all.
func (h *History) Records(formula FormulaID) []HistoryRecord {
	res := make([]HistoryRecord, 0, len(h.file.Records))
	for _, r := range h.file.Records {
		if len(formula) > 0 && r.Formula != formula {
			continue
		}
		res = append(res, r)
	}
	return res
}

// Clear removes all records.
func (h *History) Clear() error {
	h.file.Records = nil
	return h.save()
}

// Export writes a text report of the records next to fpath, never
// overwriting an existing file. It returns the file name used.
func (h *History) Export(fpath string, formula FormulaID) (string, error) {
	f, fname, err := CreateFileWithoutOverwrite(fpath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Exported date %s\n", clock.Now().Format(time.RFC3339))
	fmt.Fprintf(f, "# Date Formula Output Inputs\n")
	for _, r := range h.Records(formula) {
		fmt.Fprintf(f, "%s %s %s %s\n",
			r.Date.Format(time.RFC3339),
			r.Formula,
			r.Output,
			strings.Join(quoteAll(r.Inputs), " "))
	}
	return fname, f.Close()
}

func quoteAll(values []string) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = fmt.Sprintf("%q", v)
	}
	return res
}
