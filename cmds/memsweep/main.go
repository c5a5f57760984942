package main

import (
	"github.com/sirupsen/logrus"

	"github.com/francescodonato/libfork/pkg/conf"
	"github.com/francescodonato/libfork/pkg/executor"
	"github.com/francescodonato/libfork/pkg/sweep"
	"github.com/francescodonato/libfork/pkg/utils/errutil"
)

var (
	// Positional arguments, in invocation order.
	binaryArg = conf.NewStringArg("binary", "The benchmark binary to run.")
	benchArg  = conf.NewStringArg("bench", "The benchmark token; a leading 'T' selects the allocation-sensitive kind family.")
	coresArg  = conf.NewIntArg("cores", "Maximum number of cores to sweep.")

	timeCommandFlag = conf.NewStringFlag(
		"time_command",
		"GNU time compatible wrapper used to measure peak resident memory.",
		sweep.DefaultTimeCommand)
	outputDirFlag = conf.NewStringFlag(
		"output_dir",
		"Directory the result file is written to.",
		".")
)

func main() {
	conf.SetAppName("memsweep")
	conf.SetHelp(`Memsweep measures peak resident memory of libfork's benchmarks.
It sweeps (kind, core-count) combinations against one benchmark binary, wraps every
run in a memory-measuring facility and appends one aggregated record per trial to
a CSV file, flushed after every write.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	config := sweep.SweepConfig{
		BinaryPath:  binaryArg.Value(),
		Bench:       benchArg.Value(),
		MaxCores:    coresArg.Value(),
		TimeCommand: timeCommandFlag.Value(),
		OutputDir:   outputDirFlag.Value(),
	}

	s, err := sweep.New(config, executor.NewLocal())
	errutil.Check(err)

	records, err := s.Run()
	errutil.CheckWithContext(err, "sweep failed")

	errutil.Check(sweep.RenderSummary(records))
}
