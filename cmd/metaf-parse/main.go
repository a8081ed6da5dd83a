// Command-line entry point for metaf (debug/demo-focused).
//
// This tool is a thin presentation layer over the metaf package: it reads
// METAR/TAF reports one per line and prints the recognized syntax tree as
// JSON. It does no network or storage I/O; it exists so the parser can be
// exercised from a terminal, with a single "parse" subcommand on a minimal
// cobra harness.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"metaf"
)

// GroupOut is the JSON rendering of one metaf.GroupInfo: the group kind by
// name, the section it was recognized in, and the raw source text it was
// built from (several tokens joined when the combiner fused more than one).
type GroupOut struct {
	Kind    string `json:"kind"`
	Section string `json:"section"`
	Raw     string `json:"raw"`
}

// ReportOut is the JSON rendering of one parsed report.
type ReportOut struct {
	Report string     `json:"report"`
	Kind   string     `json:"kind"`
	Error  string     `json:"error"`
	Groups []GroupOut `json:"groups"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "metaf-parse",
		Short:   "Parse METAR/TAF reports into JSON syntax trees",
		Version: "0.1.0",
	}
	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	var inPath, outPath string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse one report per line and print JSON",
		Long: "Reads raw METAR/TAF reports, one per line, from --input (or stdin\n" +
			"when unset) and writes a JSON array describing each report's parsed\n" +
			"groups to --output (or stdout).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), inPath, outPath, pretty)
		},
	}

	cmd.Flags().StringVar(&inPath, "input", "", "Input file, one report per line (default: stdin)")
	cmd.Flags().StringVar(&outPath, "output", "", "Output JSON file (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runParse(stdout io.Writer, inPath, outPath string, pretty bool) error {
	var r io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	out := make([]ReportOut, 0, 16)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, toReportOut(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	w := stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc, err := marshalJSON(out, pretty)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := w.Write(enc); err != nil {
		return err
	}
	if w == stdout {
		_, _ = w.Write([]byte("\n"))
	}
	return nil
}

func toReportOut(report string) ReportOut {
	r := metaf.ParseExtended(report)
	groups := make([]GroupOut, 0, len(r.Groups))
	for _, gi := range r.Groups {
		groups = append(groups, GroupOut{
			Kind:    gi.Group.Kind.String(),
			Section: gi.Section.String(),
			Raw:     gi.Raw,
		})
	}
	return ReportOut{
		Report: report,
		Kind:   r.Kind.String(),
		Error:  r.Error.String(),
		Groups: groups,
	}
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
