package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ja7ad/kinema/pkg/drive"
)

var csvHeader = []string{
	"time", "drive", "efficiency", "power_kw", "speed_rpm", "ratio",
	"input_torque_nm", "output_speed_rpm", "output_torque_nm",
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// WriteCSV writes a header and one record per row. Result columns carry full
// precision.
func WriteCSV(w io.Writer, rows ...Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		eff := ""
		if r.Efficiency > 0 {
			eff = fmtFloat(r.Efficiency)
		}
		if err := cw.Write([]string{
			r.At.Format(time.RFC3339),
			r.Drive, eff,
			fmtFloat(r.PowerKW), fmtFloat(r.SpeedRPM), fmtFloat(r.Ratio),
			fmtFloat(r.InputTorqueNm), fmtFloat(r.OutputSpeedRPM), fmtFloat(r.OutputTorqueNm),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows ...Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteHTML renders rows together with the drive and formula reference tables
// as a standalone page.
func WriteHTML(w io.Writer, rows ...Row) error {
	type view struct {
		Rows     []Row
		Drives   []drive.Descriptor
		Formulas []drive.Formula
		Notation []drive.Symbol
		Steps    []string
	}

	var buf bytes.Buffer
	data := view{
		Rows:     rows,
		Drives:   drive.DriveTypes(),
		Formulas: drive.Formulas(),
		Notation: drive.Notation(),
		Steps:    drive.UsageSteps(),
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile creates path (and its parent directories) and fills it with fn.
func WriteFile(path string, fn func(io.Writer, ...Row) error, rows ...Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f, rows...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Drive Kinematics Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:18px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
code{background:#f5f5f5;padding:2px 4px;border-radius:4px}
.small{color:#555}
</style>

<h1>Drive Kinematics Report</h1>

<p class="small">Calculations: {{len .Rows}}</p>

<h2>Results</h2>
<table>
<thead>
<tr>
<th>time</th><th>drive</th><th>P (kW)</th><th>n (rpm)</th><th>i</th>
<th>M in (N·m)</th><th>n out (rpm)</th><th>M out (N·m)</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.At.Format "2006-01-02 15:04:05"}}</td>
<td>{{if .Drive}}{{.Drive}}{{else}}-{{end}}</td>
<td>{{.PowerKW}}</td>
<td>{{.SpeedRPM}}</td>
<td>{{.Ratio}}</td>
<td>{{.InputTorque}}</td>
<td>{{.OutputSpeed}}</td>
<td>{{.OutputTorque}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Formulas</h2>
<table>
<thead><tr><th>name</th><th>formula</th><th>units</th></tr></thead>
<tbody>
{{range .Formulas}}
<tr><td>{{.Name}}</td><td><code>{{.Expression}}</code></td><td>{{.Units}}</td></tr>
{{end}}
</tbody>
</table>

<h2>Drive types</h2>
<table>
<thead><tr><th>drive</th><th>efficiency</th><th>properties</th></tr></thead>
<tbody>
{{range .Drives}}
<tr><td>{{.DisplayName}}</td><td>{{.Efficiency.Percent}}</td><td>{{.Description}}</td></tr>
{{end}}
</tbody>
</table>

<h2>How to use</h2>
<ol>
{{range .Steps}}<li>{{.}}</li>
{{end}}</ol>

<h2>Notation</h2>
<table>
<thead><tr><th>symbol</th><th>meaning</th><th>units</th></tr></thead>
<tbody>
{{range .Notation}}
<tr><td>{{.Symbol}}</td><td>{{.Meaning}}</td><td>{{.Units}}</td></tr>
{{end}}
</tbody>
</table>
</html>`))
