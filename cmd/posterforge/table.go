package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderFieldTable renders label/value pairs as a rounded two-column table.
func renderFieldTable(rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
