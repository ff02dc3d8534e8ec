package renderer

// pageCSS is embedded verbatim into the <head> of the generated page.
const pageCSS = `
body {font-family: "Microsoft YaHei", Arial, sans-serif; margin: 20px; background-color: #f5f5f5;}
.container {max-width: 1400px; margin: 0 auto;}

.filter-container {background: white; padding: 15px 20px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); margin-bottom: 20px;}
.filter-group {display: inline-block; margin-right: 20px; margin-bottom: 10px;}
.filter-label {font-size: 14px; color: #34495e; margin-right: 8px; font-weight: 500;}
.filter-select {padding: 6px 10px; border: 1px solid #ddd; border-radius: 4px; font-size: 14px; min-width: 150px;}
.filter-btn {padding: 6px 15px; border: none; border-radius: 4px; font-size: 14px; cursor: pointer; margin-right: 10px;}
.filter-reset {background-color: #3498db; color: white;}
.filter-reset:hover {background-color: #2980b9;}
.filter-new {background-color: #e74c3c; color: white;}
.filter-new:hover {background-color: #c0392b;}
.filter-all {background-color: #2ecc71; color: white;}
.filter-all:hover {background-color: #27ae60;}
.sort-btn {background-color: #9b59b6; color: white;}
.sort-btn:hover {background-color: #8e44ad;}
.sort-btn.active {opacity: 0.8; border: 2px solid #8e44ad;}

.table-container {margin: 30px 0; background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);}
h1 {color: #2c3e50; text-align: center; margin-bottom: 30px; font-size: 24px;}
h2 {color: #34495e; border-bottom: 2px solid #3498db; padding-bottom: 10px; font-size: 18px; margin-top: 20px; margin-bottom: 15px;}

table {width: 100%; border-collapse: collapse; margin: 10px 0;}
th, td {padding: 12px 15px; text-align: left; border-bottom: 1px solid #ddd; font-size: 14px;}
th {background-color: #3498db; color: white; font-weight: normal; position: relative;}
tr:hover {background-color: #f8f9fa;}
tr.new-row {background-color: #e8f4fd; font-weight: 500;}
.time-sort-indicator {color: #9b59b6; font-weight: bold; margin-left: 8px; font-size: 12px;}

.link {color: #3498db; text-decoration: none;}
.link:hover {text-decoration: underline;}

.new-label {color: #e74c3c; font-weight: bold; font-size: 12px; margin-left: 8px;}

.empty-hint {color: #7f8c8d; text-align: center;}

.metadata {text-align: center; color: #7f8c8d; margin-top: 20px; font-size: 12px;}

@media (max-width: 768px) {
    .filter-group {display: block; margin-right: 0;}
    table {font-size: 12px;}
    th, td {padding: 8px 10px;}
    .filter-select {min-width: 100%;}
    .filter-btn {margin-bottom: 10px; width: 100%;}
}
`

// pageScript drives all client-side behavior. Interactions go through
// a single dispatch table of pure state transitions; render() is the
// only place that touches the DOM, so every action (including restore
// original order) is exact and idempotent.
const pageScript = `
const tableConfig = JSON.parse(document.getElementById('table-config').textContent);

const state = {};
const original = {};

function defaultState() {
    return {filters: {}, onlyNew: false, sort: 'original'};
}

function configFor(tableId) {
    return tableConfig.find(function (c) { return c.id === tableId; });
}

window.addEventListener('DOMContentLoaded', function () {
    tableConfig.forEach(function (cfg) {
        const tbody = document.getElementById('tbody-' + cfg.id);
        original[cfg.id] = tbody ? Array.from(tbody.querySelectorAll('tr')) : [];
        state[cfg.id] = defaultState();
        render(cfg.id);
    });
});

// Each handler maps (state, config) to a new state and never touches
// the DOM; 'reset' additionally clears the dropdown controls.
const actions = {
    'filter': function (s, cfg) {
        const filters = {};
        cfg.filters.forEach(function (f) {
            const select = document.getElementById('filter-' + cfg.id + '-' + f.name);
            filters[f.attr] = select ? select.value : 'all';
        });
        return {filters: filters, onlyNew: s.onlyNew, sort: s.sort};
    },
    'only-new': function (s) {
        return {filters: s.filters, onlyNew: true, sort: s.sort};
    },
    'show-all': function (s) {
        return {filters: s.filters, onlyNew: false, sort: s.sort};
    },
    'sort-newest': function (s) {
        return {filters: s.filters, onlyNew: s.onlyNew, sort: 'newest'};
    },
    'sort-oldest': function (s) {
        return {filters: s.filters, onlyNew: s.onlyNew, sort: 'oldest'};
    },
    'sort-reset': function (s) {
        return {filters: s.filters, onlyNew: s.onlyNew, sort: 'original'};
    },
    'reset': function (s, cfg) {
        cfg.filters.forEach(function (f) {
            const select = document.getElementById('filter-' + cfg.id + '-' + f.name);
            if (select) select.value = 'all';
        });
        return defaultState();
    }
};

function dispatch(tableId, action) {
    const cfg = configFor(tableId);
    if (!cfg || !actions[action]) return;
    state[tableId] = actions[action](state[tableId], cfg);
    render(tableId);
}

function render(tableId) {
    const s = state[tableId];
    const tbody = document.getElementById('tbody-' + tableId);
    if (!tbody) return;

    // Order: always derived from the saved original row list, so the
    // original order is restored exactly whenever sort is 'original'.
    const rows = original[tableId].slice();
    if (s.sort === 'newest' || s.sort === 'oldest') {
        rows.sort(function (a, b) {
            const ta = parseFloat(a.getAttribute('data-timestamp')) || 0;
            const tb = parseFloat(b.getAttribute('data-timestamp')) || 0;
            return s.sort === 'newest' ? tb - ta : ta - tb;
        });
    }

    rows.forEach(function (row) {
        let show = true;
        Object.keys(s.filters).forEach(function (attr) {
            const want = s.filters[attr];
            if (want !== 'all' && row.getAttribute('data-' + attr) !== want) show = false;
        });
        if (s.onlyNew && row.getAttribute('data-is-new') !== 'true') show = false;
        row.style.display = show ? '' : 'none';
        tbody.appendChild(row);
    });

    ['newest', 'oldest', 'reset'].forEach(function (name) {
        const btn = document.getElementById('sort-' + tableId + '-' + name);
        if (!btn) return;
        const active = (name === 'reset') ? s.sort === 'original' : s.sort === name;
        btn.classList.toggle('active', active);
    });

    const indicator = document.getElementById('sort-indicator-' + tableId);
    if (indicator) {
        indicator.textContent = s.sort === 'newest' ? '↓' : s.sort === 'oldest' ? '↑' : '';
    }
}
`

// pageHTML assembles the document from the precomputed view model.
const pageHTML = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - gov-purchase-table</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="container">
<h1>{{.Title}}</h1>
{{range .Tables}}
<div class="table-container">
<h2>{{.Numeral}}、{{.Heading}}</h2>
<div id="{{.ID}}-wrapper">
{{if .Empty}}
<p class="empty-hint">暂无筛选条件</p>
<p class="empty-hint">暂无数据</p>
{{else}}
<div class="filter-container" id="filter-{{.ID}}">
{{range .Filters}}
<div class="filter-group">
<label class="filter-label">{{.Label}}：</label>
<select class="filter-select" id="filter-{{.TableID}}-{{.Label}}" onchange="dispatch('{{.TableID}}', 'filter')">
<option value="all">全部</option>
{{range .Options}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
</div>
{{end}}
<div class="filter-group">
<button class="filter-btn filter-new" onclick="dispatch('{{.ID}}', 'only-new')">仅看新增</button>
<button class="filter-btn filter-all" onclick="dispatch('{{.ID}}', 'show-all')">显示全部</button>
<button class="filter-btn filter-reset" onclick="dispatch('{{.ID}}', 'reset')">重置筛选</button>
</div>
<div class="filter-group">
<label class="filter-label">{{.TimeLabel}}：</label>
<button class="filter-btn sort-btn" id="sort-{{.ID}}-newest" onclick="dispatch('{{.ID}}', 'sort-newest')">按最新排序</button>
<button class="filter-btn sort-btn" id="sort-{{.ID}}-oldest" onclick="dispatch('{{.ID}}', 'sort-oldest')">按最早排序</button>
<button class="filter-btn sort-btn" id="sort-{{.ID}}-reset" onclick="dispatch('{{.ID}}', 'sort-reset')">恢复原排序</button>
</div>
</div>
<table id="{{.ID}}-table">
<thead><tr>{{range .Headers}}<th>{{.Name}}{{if .Time}}<span class="time-sort-indicator" id="sort-indicator-{{.TableID}}"></span>{{end}}</th>{{end}}</tr></thead>
<tbody id="tbody-{{.ID}}">
{{range .Rows}}<tr{{if .New}} class="new-row"{{end}}{{.Attrs}}>{{range .Cells}}<td>{{if .Link}}<a href="{{.Link}}" target="_blank" class="link">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{if .NewLabel}}<span class="new-label">[新增]</span>{{end}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{end}}
</div>
</div>
{{end}}
<div class="metadata">
<p>最后更新时间：{{.GeneratedAt}}</p>
<p>项目名称：gov-purchase-table</p>
</div>
</div>
<script type="application/json" id="table-config">{{.Config}}</script>
<script>{{.Script}}</script>
</body>
</html>
`
