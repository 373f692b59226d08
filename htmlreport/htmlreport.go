// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlreport renders a maps.ReportData as a single self-contained
// HTML document, overlaying any resolved crash registers on the region
// table. It uses html/template, not the teacher's {{KEY}} string
// substitution, because that substitution is unescaped and a pathname
// containing "<" or "&" would corrupt the page; auto-escaping costs
// nothing here and the teacher's other rendering layer (cmd/viewcore) is
// plain text anyway, so there's no precedent to match byte-for-byte.
package htmlreport

import (
	"fmt"
	"html/template"
	"io"

	"github.com/vmaps/procmaps/maps"
)

type rowView struct {
	Start, End, Perm, Class, Pathname string
	Size, Offset                      uint64
	Highlighted                       bool
	Landings                          []string
}

type crashView struct {
	Reg, Addr, Outcome, Offset, Binary string
	Diagnostics                        []string
}

type statView struct {
	Class   string
	Count   int
	Bytes   uint64
	Percent string
}

type securityView struct {
	Start, End, Perm, Pathname string
}

type pageData struct {
	ProcessName string
	PID         string
	RegionCount int
	TotalSize   uint64
	LowAddress  string
	HighAddress string
	Rows        []rowView
	Stats       []statView
	Security    []securityView
	HasCrash    bool
	Crash       []crashView
}

// Write renders data as HTML to w.
func Write(w io.Writer, data maps.ReportData) error {
	page := buildPage(data)
	return reportTemplate.Execute(w, page)
}

func buildPage(data maps.ReportData) pageData {
	highlighted := map[*maps.Region]bool{}
	landings := map[*maps.Region][]string{}
	for _, c := range data.Crash {
		if c.Resolved {
			highlighted[c.Region] = true
			landings[c.Region] = append(landings[c.Region], c.Role.String())
		}
	}

	p := pageData{
		ProcessName: data.Metadata.ProcessName,
		RegionCount: data.Metadata.RegionCount,
		TotalSize:   data.Metadata.TotalSize,
		LowAddress:  data.Metadata.LowAddress.String(),
		HighAddress: data.Metadata.HighAddress.String(),
		HasCrash:    data.HasCrash,
	}
	if data.Metadata.PID != nil {
		p.PID = fmt.Sprintf("%d", *data.Metadata.PID)
	}

	for _, r := range data.Space.Regions() {
		path := r.Pathname().String()
		if r.IsAnonymous() {
			path = "[anonymous]"
		}
		p.Rows = append(p.Rows, rowView{
			Start:       r.Start().String(),
			End:         r.End().String(),
			Size:        r.Size(),
			Perm:        r.Perm().String(),
			Offset:      r.FileOffset(),
			Class:       r.Class().String(),
			Pathname:    path,
			Highlighted: highlighted[r],
			Landings:    landings[r],
		})
	}

	for _, s := range data.Stats {
		p.Stats = append(p.Stats, statView{
			Class:   s.Class.String(),
			Count:   s.Count,
			Bytes:   s.TotalBytes,
			Percent: fmt.Sprintf("%.2f%%", s.Fraction*100),
		})
	}

	for _, f := range data.Security {
		path := f.Pathname
		if path == "" {
			path = "[anonymous]"
		}
		p.Security = append(p.Security, securityView{
			Start: f.Start.String(), End: f.End.String(), Perm: f.Perm, Pathname: path,
		})
	}

	for _, c := range data.Crash {
		cv := crashView{Reg: c.Role.String(), Addr: c.Address.String()}
		if c.Resolved {
			cv.Outcome = "resolved"
			cv.Offset = fmt.Sprintf("0x%x", c.OffsetInRegion)
			cv.Binary = c.ContainingBinary
			for _, d := range c.Diagnostics {
				cv.Diagnostics = append(cv.Diagnostics, d.String())
			}
		} else {
			cv.Outcome = "unmapped"
		}
		p.Crash = append(p.Crash, cv)
	}

	return p
}

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>procmaps report{{if .ProcessName}} — {{.ProcessName}}{{end}}</title>
<style>
body { font-family: monospace; margin: 2rem; background: #111; color: #ddd; }
h1, h2 { color: #fff; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
td, th { border: 1px solid #333; padding: 0.25rem 0.5rem; text-align: left; }
tr.highlight { background: #5a3a00; }
.summary span { margin-right: 2rem; }
</style>
</head>
<body>
<h1>procmaps report</h1>
<div class="summary">
<span>process: {{.ProcessName}}</span>
{{if .PID}}<span>pid: {{.PID}}</span>{{end}}
<span>regions: {{.RegionCount}}</span>
<span>total size: {{.TotalSize}}</span>
<span>range: {{.LowAddress}} - {{.HighAddress}}</span>
</div>

{{if .HasCrash}}
<h2>crash registers</h2>
<table>
<tr><th>reg</th><th>addr</th><th>outcome</th><th>offset</th><th>binary</th><th>diagnostics</th></tr>
{{range .Crash}}
<tr><td>{{.Reg}}</td><td>{{.Addr}}</td><td>{{.Outcome}}</td><td>{{.Offset}}</td><td>{{.Binary}}</td><td>{{range .Diagnostics}}{{.}}; {{end}}</td></tr>
{{end}}
</table>
{{end}}

<h2>statistics</h2>
<table>
<tr><th>class</th><th>count</th><th>bytes</th><th>percent</th></tr>
{{range .Stats}}
<tr><td>{{.Class}}</td><td>{{.Count}}</td><td>{{.Bytes}}</td><td>{{.Percent}}</td></tr>
{{end}}
</table>

<h2>security findings</h2>
<table>
<tr><th>start</th><th>end</th><th>perm</th><th>pathname</th></tr>
{{range .Security}}
<tr><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Perm}}</td><td>{{.Pathname}}</td></tr>
{{else}}
<tr><td colspan="4">none</td></tr>
{{end}}
</table>

<h2>regions</h2>
<table>
<tr><th>start</th><th>end</th><th>size</th><th>perm</th><th>offset</th><th>class</th><th>pathname</th></tr>
{{range .Rows}}
<tr{{if .Highlighted}} class="highlight"{{end}}><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Size}}</td><td>{{.Perm}}</td><td>{{.Offset}}</td><td>{{.Class}}</td><td>{{.Pathname}}{{if .Landings}} ({{range .Landings}}{{.}} {{end}}){{end}}</td></tr>
{{end}}
</table>
</body>
</html>
`
