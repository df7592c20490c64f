package server

// indexHTML is the dashboard page. The page is a thin shell: every control
// change re-queries the JSON APIs and the server re-runs the pipeline.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
  <script src="https://d3js.org/d3.v7.min.js"></script>
  <style>
    body {
      font-family: 'Inter', Lato, Arial, sans-serif;
      background: #f8fafc;
      color: #1e293b;
      margin: 0;
      min-height: 100vh;
    }
    .dashboard-title {
      font-size: 2.1em;
      text-align: center;
      color: #2563eb;
      margin: 28px 0 8px 0;
      font-weight: 600;
      letter-spacing: 0.5px;
    }
    .layout { display: flex; max-width: 1500px; margin: 0 auto; gap: 24px; padding: 0 16px; }
    .sidebar {
      flex: 0 0 240px;
      background: #fff;
      border-radius: 16px;
      box-shadow: 0 2px 16px #e0e7ef;
      padding: 18px;
      align-self: flex-start;
    }
    .sidebar h3 { margin-top: 0; color: #2d3748; }
    .sidebar label { display: block; margin: 4px 0; font-size: 0.95em; }
    .sidebar .range-row { display: flex; gap: 8px; margin-bottom: 10px; }
    .sidebar input[type=number], .sidebar input[type=text] {
      width: 100%; padding: 5px 7px; border: 1px solid #cbd5e1; border-radius: 7px;
    }
    .content { flex: 1; }
    .notice {
      background: #fef3c7; border: 1px solid #fcd34d; color: #92400e;
      border-radius: 10px; padding: 10px 16px; margin-bottom: 16px; display: none;
    }
    .summary-cards { display: flex; flex-wrap: wrap; gap: 18px; margin-bottom: 24px; }
    .card {
      background: #fff; border-radius: 16px; box-shadow: 0 2px 16px #e0e7ef;
      padding: 14px 28px 10px 28px; flex: 1 1 180px;
    }
    .card-title { font-size: 1.02em; color: #64748b; margin-bottom: 4px; font-weight: 600; }
    .card-content { font-size: 1.45em; font-weight: 500; }
    .card-delta { font-size: 0.85em; color: #64748b; }
    .viz-grid { display: flex; flex-wrap: wrap; gap: 22px; }
    .viz-card {
      background: #fff; border-radius: 16px; box-shadow: 0 2px 16px #e0e7ef;
      padding: 16px; flex: 1 1 520px; min-width: 420px;
    }
    .viz-card.wide { flex-basis: 100%; }
    svg#force-graph { width: 100%; height: 420px; background: #fafdff; border-radius: 10px; }
    table.data-table { border-collapse: collapse; width: 100%; font-size: 0.92em; }
    table.data-table th, table.data-table td { border-bottom: 1px solid #e2e8f0; padding: 6px 10px; text-align: left; }
    table.data-table th { color: #64748b; }
    .exports { margin: 22px 0 48px 0; display: flex; gap: 12px; flex-wrap: wrap; }
    .exports a {
      background: #2563eb; color: #fff; text-decoration: none;
      padding: 9px 16px; border-radius: 9px; font-size: 0.95em;
    }
  </style>
</head>
<body>
  <div class="dashboard-title">{{.Title}}</div>
  <div class="layout">
    <div class="sidebar">
      <h3>Filters</h3>
      <div id="notice" class="notice"></div>
      <label><input type="checkbox" id="cat-all" checked> All</label>
      <div id="category-list"></div>
      <h4>Launch Year</h4>
      <div class="range-row">
        <input type="number" id="year-min"><input type="number" id="year-max">
      </div>
      <h4>Team Size</h4>
      <div class="range-row">
        <input type="number" id="team-min"><input type="number" id="team-max">
      </div>
      <h4>Search</h4>
      <input type="text" id="search" placeholder="title or description">
    </div>
    <div class="content">
      <div class="summary-cards">
        <div class="card"><div class="card-title">Total Projects</div>
          <div class="card-content" id="m-count"></div>
          <div class="card-delta" id="m-delta"></div></div>
        <div class="card"><div class="card-title">Categories</div>
          <div class="card-content" id="m-categories"></div></div>
        <div class="card"><div class="card-title">Avg Launch Year</div>
          <div class="card-content" id="m-avg-year"></div></div>
        <div class="card"><div class="card-title">Total Funding</div>
          <div class="card-content" id="m-funding"></div></div>
      </div>
      <div class="viz-grid">
        <div class="viz-card"><div id="chart-pie"></div></div>
        <div class="viz-card"><div id="chart-line"></div></div>
        <div class="viz-card wide"><div id="chart-scatter"></div></div>
        <div class="viz-card wide"><div id="chart-3d" style="height:600px"></div></div>
        <div class="viz-card"><div id="chart-bar"></div></div>
        <div class="viz-card"><div id="chart-hist"></div></div>
        <div class="viz-card wide">
          <h3>Project Space Neighbors</h3>
          <svg id="force-graph"></svg>
        </div>
        <div class="viz-card wide">
          <h3>Project Data Table</h3>
          <table class="data-table">
            <thead id="table-head"></thead>
            <tbody id="table-body"></tbody>
          </table>
        </div>
      </div>
      <div class="exports">
        <a id="export-csv" href="/export/csv">Download CSV</a>
        <a id="export-pdf" href="/export/report.pdf">Download PDF Report</a>
        <a id="export-hist" href="/export/chart/funding_histogram.png">Histogram PNG</a>
        <a id="export-bar" href="/export/chart/funding_by_category.png">Funding Bar PNG</a>
      </div>
    </div>
  </div>
  <script>
    let bounds = null;

    function baseQuery() {
      const params = new URLSearchParams();
      if (!document.getElementById('cat-all').checked) {
        document.querySelectorAll('#category-list input:checked').forEach(cb =>
          params.append('category', cb.value));
      }
      params.set('year_min', document.getElementById('year-min').value);
      params.set('year_max', document.getElementById('year-max').value);
      params.set('team_min', document.getElementById('team-min').value);
      params.set('team_max', document.getElementById('team-max').value);
      return params;
    }

    function tableQuery() {
      const params = baseQuery();
      const q = document.getElementById('search').value.trim();
      if (q) params.set('q', q);
      return params;
    }

    async function getJSON(path, params) {
      const res = await fetch(path + '?' + params.toString());
      if (!res.ok) throw new Error(path + ': ' + res.status);
      return res.json();
    }

    function renderSummary(s) {
      document.getElementById('m-count').textContent = s.metrics.count;
      document.getElementById('m-delta').textContent = s.metrics.delta + ' from total';
      document.getElementById('m-categories').textContent = s.metrics.distinct_categories;
      document.getElementById('m-avg-year').textContent = s.metrics.avg_label;
      document.getElementById('m-funding').textContent = s.metrics.funding_label;
      if (s.notice) {
        const n = document.getElementById('notice');
        n.textContent = s.notice;
        n.style.display = 'block';
      }
    }

    function renderCharts(c) {
      const layout = (title, extra) => Object.assign(
        { title: title, margin: { t: 40, l: 50, r: 20, b: 45 } }, extra || {});

      Plotly.newPlot('chart-pie', [ {
        type: 'pie', labels: c.category_pie.labels, values: c.category_pie.values,
        textposition: 'inside', textinfo: 'percent+label' } ],
        layout(c.category_pie.title));

      Plotly.newPlot('chart-line', [ {
        type: 'scatter', mode: 'lines+markers', x: c.year_trend.x, y: c.year_trend.y,
        line: { color: '#00D4AA', width: 3 } } ],
        layout(c.year_trend.title, {
          xaxis: { title: c.year_trend.x_label },
          yaxis: { title: c.year_trend.y_label } }));

      const maxFunding = Math.max(1, ...c.team_success.series.flatMap(s => s.size));
      Plotly.newPlot('chart-scatter', c.team_success.series.map(s => ({
        type: 'scatter', mode: 'markers', name: s.name, x: s.x, y: s.y,
        text: s.hover, hovertemplate: '%{text}<extra></extra>',
        marker: { size: s.size, sizemode: 'area', sizeref: 2.0 * maxFunding / 1600 } })),
        layout(c.team_success.title, {
          xaxis: { title: c.team_success.x_label },
          yaxis: { title: c.team_success.y_label } }));

      Plotly.newPlot('chart-3d', [ {
        type: 'scatter3d', mode: 'markers',
        x: c.spatial.x, y: c.spatial.y, z: c.spatial.z,
        text: c.spatial.hover, hovertemplate: '%{text}<extra></extra>',
        marker: { size: c.spatial.size.map(s => Math.max(3, s / 2)),
          color: c.spatial.color, colorscale: c.spatial.color_scale,
          opacity: 0.8, colorbar: { title: 'Launch Year' } } } ],
        layout(c.spatial.title, { showlegend: false }));

      Plotly.newPlot('chart-bar', [ {
        type: 'bar', orientation: 'h',
        x: c.funding_by_category.values, y: c.funding_by_category.labels,
        marker: { color: '#D946EF' } } ],
        layout(c.funding_by_category.title, {
          xaxis: { title: c.funding_by_category.x_label },
          margin: { t: 40, l: 130, r: 20, b: 45 } }));

      const h = c.funding_histogram;
      const centers = h.counts.map((_, i) => h.start + h.width * (i + 0.5));
      Plotly.newPlot('chart-hist', [ {
        type: 'bar', x: centers, y: h.counts, width: h.width * 0.92,
        marker: { color: '#00D4AA' } } ],
        layout(h.title, { xaxis: { title: h.x_label } }));
    }

    function renderTable(t) {
      document.getElementById('table-head').innerHTML =
        '<tr>' + t.columns.map(col => '<th>' + col + '</th>').join('') + '</tr>';
      document.getElementById('table-body').innerHTML =
        t.rows.map(row => '<tr>' + row.map(cell => {
          const esc = cell.replace(/&/g, '&amp;').replace(/</g, '&lt;');
          return '<td>' + esc + '</td>';
        }).join('') + '</tr>').join('');
    }

    function renderGraph(net) {
      const svg = d3.select('#force-graph');
      svg.selectAll('*').remove();
      const width = svg.node().clientWidth, height = svg.node().clientHeight;
      const color = d3.scaleOrdinal(d3.schemeTableau10);
      const nodes = net.nodes.map(n => Object.assign({}, n));
      const links = net.links.map(l => Object.assign({}, l));
      const sim = d3.forceSimulation(nodes)
        .force('link', d3.forceLink(links).id(d => d.id).distance(d => 20 + d.distance * 3))
        .force('charge', d3.forceManyBody().strength(-60))
        .force('center', d3.forceCenter(width / 2, height / 2));
      const link = svg.append('g').selectAll('line').data(links).enter().append('line')
        .attr('stroke', '#d1e7fd').attr('stroke-width', 1.4);
      const node = svg.append('g').selectAll('circle').data(nodes).enter().append('circle')
        .attr('r', 6).attr('fill', d => color(d.group))
        .attr('stroke', '#222').attr('stroke-width', 0.8);
      node.append('title').text(d => d.label + ' (' + d.group + ')');
      sim.on('tick', () => {
        link.attr('x1', d => d.source.x).attr('y1', d => d.source.y)
            .attr('x2', d => d.target.x).attr('y2', d => d.target.y);
        node.attr('cx', d => d.x).attr('cy', d => d.y);
      });
    }

    function updateExportLinks() {
      const q = baseQuery().toString();
      for (const id of ['export-csv', 'export-pdf', 'export-hist', 'export-bar']) {
        const a = document.getElementById(id);
        a.href = a.pathname + '?' + q;
      }
    }

    async function refreshTable() {
      renderTable(await getJSON('/api/table', tableQuery()));
    }

    async function refresh() {
      const q = baseQuery();
      const summary = await getJSON('/api/summary', q);
      renderSummary(summary);
      renderCharts(await getJSON('/api/charts', q));
      renderGraph(await getJSON('/api/graph', q));
      await refreshTable();
      updateExportLinks();
    }

    async function init() {
      const summary = await getJSON('/api/summary', new URLSearchParams());
      bounds = summary.bounds;
      document.getElementById('year-min').value = bounds.min_year;
      document.getElementById('year-max').value = bounds.max_year;
      document.getElementById('team-min').value = bounds.min_team;
      document.getElementById('team-max').value = bounds.max_team;

      const list = document.getElementById('category-list');
      for (const cat of summary.categories) {
        const label = document.createElement('label');
        const cb = document.createElement('input');
        cb.type = 'checkbox';
        cb.value = cat;
        cb.addEventListener('change', () => {
          document.getElementById('cat-all').checked =
            document.querySelectorAll('#category-list input:checked').length === 0;
          refresh();
        });
        label.appendChild(cb);
        label.appendChild(document.createTextNode(' ' + cat));
        list.appendChild(label);
      }
      document.getElementById('cat-all').addEventListener('change', e => {
        if (e.target.checked) {
          document.querySelectorAll('#category-list input').forEach(cb => cb.checked = false);
        }
        refresh();
      });
      for (const id of ['year-min', 'year-max', 'team-min', 'team-max']) {
        document.getElementById(id).addEventListener('change', refresh);
      }
      document.getElementById('search').addEventListener('input', refreshTable);
      await refresh();
    }

    init();
  </script>
</body>
</html>
`
