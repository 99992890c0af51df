/*
render displays the execution trace of a chain run for a human
observer, one block per step, with weather outputs shown as tables
*/
package render

import (
	"encoding/json"
	"fmt"
	"io"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	chain "github.com/mutablelogic/go-toolchain/pkg/chain"
	gjson "github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Renderer struct {
	w io.Writer
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // green
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Trace renders each entry of an execution trace in order, stopping
// after the first entry which carries an error
func (r *Renderer) Trace(trace chain.Trace) {
	for i, step := range trace {
		r.step(i+1, step)
		if step.Error != "" {
			break
		}
	}
}

// Status renders the terminal status of a chain run
func (r *Renderer) Status(status chain.Status) {
	switch status {
	case chain.Succeeded:
		fmt.Fprintln(r.w, successStyle.Render(status.String()))
	case chain.Failed:
		fmt.Fprintln(r.w, errorStyle.Render(status.String()))
	default:
		fmt.Fprintln(r.w, dimStyle.Render(status.String()))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Renderer) step(index int, step *chain.StepResult) {
	fmt.Fprintln(r.w, stepStyle.Render(fmt.Sprintf("Step %d: %s", index, step.Func)))
	if args, err := json.Marshal(step.Args); err == nil {
		fmt.Fprintln(r.w, dimStyle.Render(string(args)))
	}
	if step.Error != "" {
		fmt.Fprintln(r.w, errorStyle.Render(step.Error))
		return
	}
	fmt.Fprintln(r.w, r.output(step.Output))
}

// output selects a presentation for a step output: weather reports
// become tables or key-value listings, everything else is printed as-is
func (r *Renderer) output(output any) string {
	text, ok := output.(string)
	if !ok {
		if data, err := json.Marshal(output); err == nil {
			text = string(data)
		} else {
			return successStyle.Render(fmt.Sprint(output))
		}
	}
	if !gjson.Valid(text) {
		return successStyle.Render(text)
	}
	parsed := gjson.Parse(text)
	if parsed.Get("daily").IsArray() {
		return Render(forecastTable{parsed})
	}
	if parsed.Get("current").Exists() {
		return currentConditions(parsed)
	}
	return successStyle.Render(text)
}

// currentConditions renders a current weather block as key-value lines
func currentConditions(report gjson.Result) string {
	location := report.Get("location")
	current := report.Get("current")
	result := fmt.Sprintf("%s, %s (%s)\n",
		location.Get("name").String(),
		location.Get("country").String(),
		location.Get("timezone").String())
	result += fmt.Sprintf("  %s%s  %s\n",
		current.Get("temperature").String(),
		current.Get("temperature_unit").String(),
		current.Get("weather_description").String())
	result += dimStyle.Render(fmt.Sprintf("  humidity %s%%  wind %s at %s°  observed %s",
		current.Get("relative_humidity").String(),
		current.Get("wind_speed").String(),
		current.Get("wind_direction").String(),
		current.Get("observed_at").String()))
	return result
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST TABLE

type forecastTable struct {
	report gjson.Result
}

func (forecastTable) Header() []string {
	return []string{"Date", "Conditions", "Min", "Max", "Precip", "Wind"}
}

func (t forecastTable) Len() int {
	return int(t.report.Get("daily.#").Int())
}

func (t forecastTable) Row(i int) []any {
	day := t.report.Get(fmt.Sprintf("daily.%d", i))
	return []any{
		Bold{day.Get("date").String()},
		day.Get("weather_description").String(),
		day.Get("temp_min").String(),
		day.Get("temp_max").String(),
		day.Get("precipitation_sum").String(),
		day.Get("wind_speed_max").String(),
	}
}
