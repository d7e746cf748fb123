package server

import (
	"html/template"
	"net/http"
)

const pageTitle = "Education Indicators Dashboard"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTmpl.Execute(w, struct{ Title string }{Title: pageTitle})
}

var pageTmpl = template.Must(template.New("dashboard").Parse(pageHTML))

// pageHTML is the whole frontend: selectors, a two-by-two chart grid, and the
// fetch calls against /api/meta and /api/dashboard. Charts are drawn with
// plotly so hover, zoom, and pan come from its toolbar.
const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #fafafa; color: #222; }
  header { padding: 12px 20px; background: #fff; border-bottom: 1px solid #ddd; }
  h1 { font-size: 20px; margin: 0; }
  .controls { display: flex; flex-wrap: wrap; gap: 12px; padding: 12px 20px; align-items: end; }
  .controls label { display: block; font-size: 12px; color: #555; margin-bottom: 2px; }
  .controls select, .controls input { padding: 5px 8px; font-size: 14px; min-width: 120px; }
  .controls select { max-width: 340px; }
  #banners { padding: 0 20px; }
  .banner { padding: 9px 12px; margin: 6px 0; border-radius: 4px; font-size: 14px; }
  .banner.warning { background: #fff3cd; border: 1px solid #ffe69c; }
  .banner.info { background: #cfe2ff; border: 1px solid #9ec5fe; }
  .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; padding: 12px 20px; }
  .panel { background: #fff; border: 1px solid #ddd; border-radius: 4px; min-height: 320px; }
  .empty { padding: 40px; color: #888; text-align: center; font-size: 14px; }
  footer { padding: 8px 20px 20px; color: #777; font-size: 12px; }
  @media (max-width: 900px) { .grid { grid-template-columns: 1fr; } }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<div class="controls">
  <div><label for="country">Country</label><select id="country"></select></div>
  <div><label for="indicator">Indicator</label><select id="indicator"></select></div>
  <div><label for="from">From year</label><input id="from" type="number"></div>
  <div><label for="to">To year</label><input id="to" type="number"></div>
</div>
<div id="banners"></div>
<div class="grid">
  <div id="trend" class="panel"></div>
  <div id="forecast" class="panel"></div>
  <div id="completeness" class="panel"></div>
  <div id="distribution" class="panel"></div>
</div>
<footer>Hover + zoom + pan are available from the Plotly toolbar on each chart.</footer>
<script>
function byId(id) { return document.getElementById(id); }

function setBanners(banners) {
  var host = byId("banners");
  host.innerHTML = "";
  if (!banners) { return; }
  for (var i = 0; i < banners.length; i++) {
    var div = document.createElement("div");
    div.className = "banner " + banners[i].level;
    div.textContent = banners[i].message;
    host.appendChild(div);
  }
}

function drawChart(id, cfg) {
  var el = byId(id);
  if (!cfg) {
    Plotly.purge(el);
    el.innerHTML = "<div class='empty'>No chart for this selection</div>";
    return;
  }
  var traces = [];
  for (var i = 0; i < cfg.series.length; i++) {
    var s = cfg.series[i];
    var xs = [];
    var ys = [];
    for (var j = 0; j < s.points.length; j++) {
      xs.push(s.points[j].x);
      ys.push(s.points[j].y);
    }
    var t = { x: xs, y: ys, name: s.name, marker: { color: s.color } };
    if (cfg.type === "line") {
      t.mode = "lines+markers";
      t.connectgaps = false;
      t.line = { color: s.color };
    } else {
      t.type = "bar";
      if (cfg.barWidth > 0) {
        var ws = [];
        for (var k = 0; k < xs.length; k++) { ws.push(cfg.barWidth); }
        t.width = ws;
      }
    }
    traces.push(t);
  }
  var layout = {
    title: { text: cfg.title, font: { size: 14 } },
    xaxis: { title: { text: cfg.xLabel }, showgrid: cfg.showGrid },
    yaxis: { title: { text: cfg.yLabel }, showgrid: cfg.showGrid },
    showlegend: cfg.showLegend,
    margin: { t: 48, l: 56, r: 16, b: 44 }
  };
  Plotly.newPlot(el, traces, layout, { responsive: true });
}

function refresh() {
  var params = new URLSearchParams();
  params.set("country", byId("country").value);
  params.set("indicator", byId("indicator").value);
  params.set("from", byId("from").value);
  params.set("to", byId("to").value);
  fetch("/api/dashboard?" + params.toString())
    .then(function (r) { return r.json(); })
    .then(function (res) {
      if (res.error) {
        setBanners([{ level: "warning", message: res.error }]);
        return;
      }
      setBanners(res.banners);
      drawChart("trend", res.trend);
      drawChart("forecast", res.forecast);
      drawChart("completeness", res.completeness);
      drawChart("distribution", res.distribution);
    });
}

function fillSelect(id, values) {
  var sel = byId(id);
  sel.innerHTML = "";
  for (var i = 0; i < values.length; i++) {
    var opt = document.createElement("option");
    opt.value = values[i];
    opt.textContent = values[i];
    sel.appendChild(opt);
  }
}

function init() {
  fetch("/api/meta")
    .then(function (r) { return r.json(); })
    .then(function (m) {
      if (m.error) {
        setBanners([{ level: "warning", message: m.error }]);
        return;
      }
      fillSelect("country", m.countries);
      fillSelect("indicator", m.indicators);
      var from = byId("from");
      var to = byId("to");
      from.min = m.yearMin;
      from.max = m.yearMax;
      from.value = m.defaultFrom;
      to.min = m.yearMin;
      to.max = m.yearMax;
      to.value = m.defaultTo;
      var ids = ["country", "indicator", "from", "to"];
      for (var i = 0; i < ids.length; i++) {
        byId(ids[i]).addEventListener("change", refresh);
      }
      refresh();
    });
}

document.addEventListener("DOMContentLoaded", init);
</script>
</body>
</html>
`
