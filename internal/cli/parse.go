package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mgpai22/vtt/pkg/webvtt"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a WebVTT file and print its cues",
	Long: `Parse a WebVTT file and print every cue with its identifier, timing,
settings and text.

Output is plain text by default; --json prints a JSON document instead.
Cues can be filtered by region or by vertical writing direction.

Examples:
  vtt parse captions.vtt
  vtt parse captions.vtt --json -o captions.json
  vtt parse captions.vtt --region fred
  vtt parse captions.vtt --vertical`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("json", false, "Print cues as JSON")
	parseCmd.Flags().String("region", "", "Only print cues anchored to this region")
	parseCmd.Flags().Bool("vertical", false, "Only print cues with vertical writing direction")
}

// JSON view of a parsed document
type documentJSON struct {
	Description *string   `json:"description,omitempty"`
	Cues        []cueJSON `json:"cues"`
}

type cueJSON struct {
	ID       string `json:"id,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	StartMs  int64  `json:"start_ms"`
	EndMs    int64  `json:"end_ms"`
	Region   string `json:"region,omitempty"`
	Vertical string `json:"vertical,omitempty"`
	Text     string `json:"text"`
}

type cueFilter struct {
	Region   string
	Vertical bool
}

func runParse(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	asJSON, _ := cmd.Flags().GetBool("json")
	region, _ := cmd.Flags().GetString("region")
	vertical, _ := cmd.Flags().GetBool("vertical")
	outputPath, _ := cmd.Flags().GetString("output")

	format := cfg.Output.Format
	if asJSON {
		format = "json"
	}

	logger.Infow("Parsing subtitle file", "input", subtitlePath)

	doc, err := webvtt.Open(subtitlePath, parseOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	cues := filterCues(doc.Cues(), cueFilter{Region: region, Vertical: vertical})

	logger.Infow("Parsed subtitle file",
		"blocks", len(doc.Blocks),
		"cues", len(cues),
	)

	out := cmd.OutOrStdout()
	if outputPath != "" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return err
		}
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		out = file
	}

	switch format {
	case "json":
		return writeJSON(out, doc.Description, cues)
	default:
		return writeText(out, doc.Description, cues)
	}
}

func filterCues(cues []*webvtt.Cue, f cueFilter) []*webvtt.Cue {
	return lo.Filter(cues, func(c *webvtt.Cue, _ int) bool {
		if f.Region != "" && c.Settings.Region != f.Region {
			return false
		}
		if f.Vertical && c.Settings.WritingDirection == webvtt.Horizontal {
			return false
		}
		return true
	})
}

func writeJSON(w io.Writer, description *string, cues []*webvtt.Cue) error {
	doc := documentJSON{
		Description: description,
		Cues: lo.Map(cues, func(c *webvtt.Cue, _ int) cueJSON {
			v := cueJSON{
				ID:      c.ID,
				Start:   formatTimestamp(c.Start),
				End:     formatTimestamp(c.End),
				StartMs: c.Start.Milliseconds(),
				EndMs:   c.End.Milliseconds(),
				Region:  c.Settings.Region,
				Text:    c.Text,
			}
			if c.Settings.WritingDirection != webvtt.Horizontal {
				v.Vertical = c.Settings.WritingDirection.String()
			}
			return v
		}),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeText(w io.Writer, description *string, cues []*webvtt.Cue) error {
	var sb strings.Builder

	if description != nil {
		sb.WriteString(fmt.Sprintf("# %s\n\n", *description))
	}

	for _, c := range cues {
		if c.ID != "" {
			sb.WriteString(c.ID + "\n")
		}

		sb.WriteString(fmt.Sprintf("%s --> %s",
			formatTimestamp(c.Start),
			formatTimestamp(c.End)))
		if c.Settings.Region != "" {
			sb.WriteString(" region:" + c.Settings.Region)
		}
		if c.Settings.WritingDirection != webvtt.Horizontal {
			sb.WriteString(" vertical:" + c.Settings.WritingDirection.String())
		}
		sb.WriteString("\n")

		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// hours are not wrapped, so long media keeps its full offset
func formatTimestamp(d time.Duration) string {
	hours := int64(d.Hours())
	minutes := int64(d.Minutes()) % 60
	seconds := int64(d.Seconds()) % 60
	millis := d.Milliseconds() % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
