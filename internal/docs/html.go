package docs

import (
	"html/template"
	"io"
)

// RefreshSeconds is the interval after which an example page reloads
// itself with a fresh random seed.
const RefreshSeconds = 10

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>plotline</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 720px; margin: 2rem auto; color: #2d2d2d; }
a { color: #5b8def; text-decoration: none; }
li { margin: 0.5rem 0; }
.summary { color: #757575; }
</style>
</head>
<body>
<h1>plotline</h1>
<p>A declarative SVG plotting library. Each example regenerates its
sample data every {{.Refresh}} seconds.</p>
<ul>
{{range .Examples}}<li><a href="/examples/{{.Name}}">{{.Title}}</a> <span class="summary">&mdash; {{.Summary}}</span></li>
{{end}}</ul>
</body>
</html>
`))

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} &middot; plotline</title>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/styles/github.min.css">
<script src="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js"></script>
<style>
body { font-family: -apple-system, sans-serif; max-width: 720px; margin: 2rem auto; color: #2d2d2d; }
a { color: #5b8def; text-decoration: none; }
.chart { margin: 1rem 0; }
.toggle { font-size: 0.85rem; cursor: pointer; color: #5b8def; background: none; border: none; padding: 0; }
pre { background: #f6f8fa; padding: 1rem; border-radius: 4px; overflow-x: auto; }
.hidden { display: none; }
</style>
</head>
<body>
<p><a href="/">&larr; all examples</a></p>
<h1>{{.Title}}</h1>
<p>{{.Summary}}</p>
<div class="chart">{{.SVG}}</div>
<button class="toggle" onclick="document.getElementById('snippet').classList.toggle('hidden')">show code</button>
<div id="snippet" class="hidden">
<pre><code class="language-go">{{.Source}}</code></pre>
</div>
<script>
hljs.highlightAll();
setTimeout(function () {
  var url = new URL(window.location);
  url.searchParams.set('seed', {{.NextSeed}});
  window.location.replace(url);
}, {{.Refresh}} * 1000);
</script>
</body>
</html>
`))

// WriteIndex renders the gallery index page.
func WriteIndex(w io.Writer, examples []Example) error {
	return indexTmpl.Execute(w, struct {
		Examples []Example
		Refresh  int
	}{examples, RefreshSeconds})
}

// WritePage renders one example page. The SVG is produced by this
// program, so it is embedded without re-escaping. nextSeed is the seed
// the page requests when it refreshes.
func WritePage(w io.Writer, ex Example, svg []byte, nextSeed int64) error {
	return pageTmpl.Execute(w, struct {
		Title    string
		Summary  string
		Source   string
		SVG      template.HTML
		NextSeed int64
		Refresh  int
	}{ex.Title, ex.Summary, ex.Source, template.HTML(svg), nextSeed, RefreshSeconds})
}
