package sweep

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// ResultRecord is one aggregated trial result, as persisted to the output
// file.
type ResultRecord struct {
	Kind   Kind
	Bench  string
	Cores  int
	Median float64
	StdErr float64
}

// ResultWriter owns the sweep's output file exclusively. The file is
// truncated on creation, one CSV line is appended per record and flushed
// immediately, so a crash mid-sweep loses at most the in-progress trial.
type ResultWriter struct {
	file *os.File
	csv  *csv.Writer
}

// NewResultWriter creates, truncating, the output file at path.
func NewResultWriter(path string) (*ResultWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create result file %q", path)
	}

	return &ResultWriter{
		file: file,
		csv:  csv.NewWriter(file),
	}, nil
}

// Append writes one record as a kind,bench,cores,median,stderr line and
// flushes it to the file.
func (w *ResultWriter) Append(record ResultRecord) error {
	row := []string{
		string(record.Kind),
		record.Bench,
		strconv.Itoa(record.Cores),
		formatStat(record.Median),
		formatStat(record.StdErr),
	}

	if err := w.csv.Write(row); err != nil {
		return errors.Wrapf(err, "could not write record for kind %q", record.Kind)
	}

	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrapf(err, "could not flush record for kind %q", record.Kind)
	}

	return nil
}

// Close releases the output file. The writer must not be used afterwards.
func (w *ResultWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return errors.Wrap(err, "could not flush result file")
	}

	if err := w.file.Close(); err != nil {
		return errors.Wrapf(err, "could not close result file %q", w.file.Name())
	}
	return nil
}

func formatStat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
