// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

// writePaper renders a paper for reading in a terminal.
func writePaper(w io.Writer, p types.PaperRecord) {
	fmt.Fprintln(w, p.Title)
	fmt.Fprintf(w, "Authors: %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(w, "Published: %s\n", p.Published)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, "Abstract")
	fmt.Fprintln(w, p.Summary)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "PDF: %s\n", p.PDFURL)
}

// writeReply renders a router reply as text or as a structured document.
func writeReply(w io.Writer, format string, reply types.Reply) error {
	if format != formatText {
		return writeStructured(w, format, reply)
	}
	if reply.Kind == types.ReplyPaper && reply.Paper != nil {
		writePaper(w, *reply.Paper)
		return nil
	}
	fmt.Fprintln(w, "Research Assistant Response")
	fmt.Fprintln(w)
	fmt.Fprintln(w, reply.Answer)
	return nil
}
