package sweep

import (
	"strconv"

	"github.com/francescodonato/libfork/pkg/visualization"
)

// RenderSummary prints the collected records as a table on stdout, in the
// same column order the output file uses.
func RenderSummary(records []ResultRecord) error {
	headers := []string{"kind", "bench", "cores", "median (KB)", "stderr (KB)"}

	data := make([][]string, 0, len(records))
	for _, record := range records {
		data = append(data, []string{
			string(record.Kind),
			record.Bench,
			strconv.Itoa(record.Cores),
			formatStat(record.Median),
			formatStat(record.StdErr),
		})
	}

	return visualization.DrawTable(visualization.NewTable(headers, data))
}
