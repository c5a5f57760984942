package visualization

import (
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// DrawTable draws a struct with headers and data rows on stdout.
func DrawTable(table *Table) error {
	return FprintTable(os.Stdout, table)
}

// FprintTable draws a struct with headers and data rows on the given writer.
func FprintTable(writer io.Writer, table *Table) error {
	output := tablewriter.NewWriter(writer)
	output.SetHeader(table.headers)
	for _, v := range table.data {
		output.Append(v)
	}
	output.Render()
	return nil
}
