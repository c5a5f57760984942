package sweep

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/francescodonato/libfork/pkg/executor"
)

// Sweep wires the planner, the trial runner and the result writer into one
// linear pipeline, executed once per invocation.
type Sweep struct {
	config SweepConfig
	runner *Runner
	writer *ResultWriter
}

// New builds a sweep for the given config, executing trials through exec.
// It creates (truncating) the output file immediately.
func New(config SweepConfig, exec executor.Executor) (*Sweep, error) {
	writer, err := NewResultWriter(config.OutputPath())
	if err != nil {
		return nil, err
	}

	return &Sweep{
		config: config,
		runner: NewRunner(exec, config),
		writer: writer,
	}, nil
}

// Run executes every planned trial in order and returns the written records.
// The first failing sample aborts the whole sweep; records already flushed
// stay valid on disk. The output file is released when Run returns.
func (s *Sweep) Run() ([]ResultRecord, error) {
	defer s.writer.Close()

	bench := strings.TrimSpace(s.config.Bench)
	var records []ResultRecord

	for _, trial := range Plan(s.config) {
		log.Infof("Running %s %s", trial.Kind, bench)

		samples, err := s.runner.CollectSamples(trial)
		if err != nil {
			return nil, errors.Wrapf(err, "trial of kind %q failed", trial.Kind)
		}

		record := ResultRecord{
			Kind:   trial.Kind,
			Bench:  bench,
			Cores:  trial.Cores,
			Median: Median(samples),
			StdErr: StdErr(samples),
		}
		log.Debugf("mems=%v -> %g, %g", samples, record.Median, record.StdErr)

		if err := s.writer.Append(record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
