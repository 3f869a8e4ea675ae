// Package render prints simulation results as text tables.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

var symbols = map[core.State]string{
	core.StateIdle:      "",
	core.StateWaiting:   "--",
	core.StateRunning:   "##",
	core.StateCompleted: "✓",
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Schedule prints one row per process with the averages in the footer.
func Schedule(w io.Writer, result responses.SimulationResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	for _, d := range result.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstDuration),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Switches\n%d", result.ContextSwitches),
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.CpuThroughput)})
	table.Render()
}

// Diagram prints the time diagram with one row per unit and one column per
// process: "##" running, "--" waiting, "✓" completed, blank otherwise.
func Diagram(w io.Writer, diagram responses.DiagramData) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetBorder(false)

	header := []string{"time"}
	for _, p := range diagram.Processes {
		header = append(header, fmt.Sprintf("P%d", p.ID))
	}
	table.SetHeader(header)

	for unit := 0; unit < diagram.Makespan; unit++ {
		row := []string{fmt.Sprintf("%d-%d", unit, unit+1)}
		for _, p := range diagram.Processes {
			var symbol string
			if unit < len(p.Timeline) {
				symbol = symbols[p.Timeline[unit]]
			}
			row = append(row, symbol)
		}
		table.Append(row)
	}
	table.Render()
}

func DiagramString(diagram responses.DiagramData) string {
	var buf bytes.Buffer
	Diagram(&buf, diagram)
	return buf.String()
}

// Result prints the title, the schedule table and the diagram.
func Result(w io.Writer, result responses.SimulationResult) {
	Title(w, result.Algorithm)
	Schedule(w, result)
	_, _ = fmt.Fprintln(w, "Time diagram")
	Diagram(w, result.DiagramData)
	_, _ = fmt.Fprintln(w)
}
