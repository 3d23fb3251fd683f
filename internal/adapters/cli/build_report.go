package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type BuildIssue struct {
	Field   string
	Message string
}

type BuildReport struct {
	colors      cliOutputWithColors
	out         io.Writer
	steps       []BuildStep
	issues      []BuildIssue
	files       []string
	startTime   time.Time
	outputDir   string
	hasFailures bool
}

func NewBuildReport(colors cliOutputWithColors, out io.Writer, outputDir string) *BuildReport {
	return &BuildReport{
		colors:    colors,
		out:       out,
		steps:     make([]BuildStep, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) StartStep(name string) int {
	r.steps = append(r.steps, BuildStep{
		Name:      name,
		StartTime: time.Now(),
	})
	return len(r.steps) - 1
}

func (r *BuildReport) EndStep(idx int, err error) {
	step := &r.steps[idx]
	step.EndTime = time.Now()
	step.Success = err == nil
	if err != nil {
		step.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *BuildReport) AddIssue(field, message string) {
	r.issues = append(r.issues, BuildIssue{Field: field, Message: message})
	r.hasFailures = true
}

func (r *BuildReport) AddFile(path string) {
	r.files = append(r.files, path)
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Fprintf(r.out, "  %s %s %s\n", status, step.Name, r.colors.Gray(formatDuration(step.EndTime.Sub(step.StartTime))))
		if step.Error != "" && len(r.issues) == 0 {
			fmt.Fprintf(r.out, "      %s\n", step.Error)
		}
	}

	if len(r.issues) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Red("✗ ")+"Content issues (%d):\n", len(r.issues))
		for _, issue := range r.issues {
			fmt.Fprintf(r.out, "      • %s: %s\n", issue.Field, issue.Message)
		}
	}

	fmt.Fprintln(r.out)
	if r.hasFailures {
		fmt.Fprintf(r.out, "  %s\n", r.colors.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
		return
	}

	fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%d files written in %s\n", len(r.files), formatDuration(duration))
	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
