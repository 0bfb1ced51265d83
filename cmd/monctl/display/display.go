// Package display provides output formatting and display functions for monctl.
//
// This package handles all user-facing output: the payload of a successful
// control API call, the host and service listings produced from the topology
// snapshot, and the final error report printed before a non-zero exit.
//
// The display functions handle:
//   - Text outcomes printed verbatim, structured outcomes as indented JSON
//   - Host and service listings as tabwriter tables or JSON arrays
//   - Error reports with the classified kind, message and suggestion
//
// Every function writes to an explicit io.Writer so that handlers can be
// exercised in tests without touching the process's stdout.
package display

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/monctl/cmd/monctl/client"
	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/topology"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer renders command results in the configured output format.
type Printer struct {
	out     io.Writer
	json    bool
	verbose bool
}

// NewPrinter creates a Printer writing to out. jsonOutput selects JSON for
// listings; verbose adds service columns to the host table.
func NewPrinter(out io.Writer, jsonOutput, verbose bool) *Printer {
	return &Printer{out: out, json: jsonOutput, verbose: verbose}
}

// Outcome prints the payload of a successful control API call. Text payloads
// are printed as-is, structured payloads as indented JSON, and a null payload
// prints nothing.
func (p *Printer) Outcome(outcome client.Outcome) error {
	if outcome.IsText() {
		text := outcome.Text()
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(p.out, strings.TrimRight(text, "\n"))
		return err
	}

	if outcome.Value() == nil {
		return nil
	}
	return p.encodeJSON(outcome.Value())
}

// Hosts lists every host in the topology snapshot with its service count.
func (p *Printer) Hosts(idx *topology.Index) error {
	hosts := idx.Hosts()

	if p.json {
		obj := make(map[string][]string, len(hosts))
		for _, host := range hosts {
			services, _ := idx.Services(host)
			obj[host] = services
		}
		return p.encodeJSON(obj)
	}

	if len(hosts) == 0 {
		_, err := fmt.Fprintln(p.out, "No hosts found")
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	if p.verbose {
		fmt.Fprintln(w, "HOST\tCOUNT\tSERVICES")
	} else {
		fmt.Fprintln(w, "HOST\tSERVICES")
	}

	for _, host := range hosts {
		services, _ := idx.Services(host)
		if p.verbose {
			fmt.Fprintf(w, "%s\t%d\t%s\n", host, len(services), strings.Join(services, ", "))
		} else {
			fmt.Fprintf(w, "%s\t%d\n", host, len(services))
		}
	}

	return w.Flush()
}

// Services lists the services known on host, one per line.
func (p *Printer) Services(host string, services []string) error {
	if p.json {
		if services == nil {
			services = []string{}
		}
		return p.encodeJSON(services)
	}

	if len(services) == 0 {
		_, err := fmt.Fprintf(p.out, "No services found on host '%s'\n", host)
		return err
	}

	for _, svc := range services {
		if _, err := fmt.Fprintln(p.out, svc); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encodeJSON(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// Error writes the final error report for a failed invocation. Classified
// errors carry their suggestion on a second line.
func Error(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), err.Error())

	var classified *monerrors.Error
	if errors.As(err, &classified) && classified.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", hintStyle.Render(classified.Suggestion))
	}
}
