package dashboard

import (
	"html/template"
	"net/url"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

type pageData struct {
	Title    string
	Loaded   string
	Banners  []analysis.Banner
	View     *analysis.View
	ChartURL string
}

func chartURL(sel analysis.Selection) string {
	q := url.Values{}
	q.Set("region", sel.Region)
	q.Set("metric", sel.Metric)
	return "/chart.svg?" + q.Encode()
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Malgun Gothic", sans-serif; max-width: 1100px; margin: 2rem auto; padding: 0 1rem; }
.banner { padding: .75rem 1rem; border-radius: .4rem; margin: .5rem 0; }
.banner.success { background: #e8f5e9; color: #1b5e20; }
.banner.warning { background: #fff8e1; color: #8d6e00; }
.banner.missing_file, .banner.failure { background: #ffebee; color: #b71c1c; }
.banner.info { background: #e3f2fd; color: #0d47a1; }
.selectors { display: flex; gap: 1rem; }
.selectors label { flex: 1; display: flex; flex-direction: column; gap: .25rem; }
table { border-collapse: collapse; font-size: .85rem; }
td, th { border: 1px solid #ddd; padding: .25rem .5rem; }
img.chart { width: 100%; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Banners}}<div class="banner {{.Kind}}">{{.Message}}</div>
{{end}}
{{with .View}}
<div class="banner success">{{$.Loaded}}</div>
<details>
<summary>데이터 원본 보기</summary>
<table>
<tr>{{range .Preview.Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Preview.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</details>
<hr>
<form method="get" action="/" class="selectors">
<label>확인하고 싶은 시군을 선택하세요:
<select name="region" onchange="this.form.submit()">
{{$region := .Selection.Region}}{{range .Regions}}<option value="{{.}}"{{if eq . $region}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<label>비교할 항목을 선택하세요:
<select name="metric" onchange="this.form.submit()">
{{$metric := .Selection.Metric}}{{range .Metrics}}<option value="{{.}}"{{if eq . $metric}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<noscript><button type="submit">적용</button></noscript>
</form>
<hr>
<h2>{{.Subheading}}</h2>
{{if $.ChartURL}}<img class="chart" src="{{$.ChartURL}}" alt="{{.ChartTitle}}">{{end}}
<div class="banner info">{{.Callout}}</div>
{{end}}
</body>
</html>
`))
