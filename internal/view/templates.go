package view

// Templates are kept as package constants and parsed once at init.

const tmplBase = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>AgentCore Memory Browser</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:16px;align-items:center}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px}
main{padding:16px;max-width:1200px;margin:0 auto}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
select,input,textarea{background:#0d1117;border:1px solid #30363d;color:#c9d1d9;border-radius:4px;padding:4px 8px;font-size:12px;font-family:inherit;width:100%}
button{background:#1f6feb;border:none;color:#fff;padding:5px 14px;border-radius:4px;cursor:pointer;font-size:12px;font-family:inherit}
button.danger{background:#da3633}
button.ghost{background:#21262d;border:1px solid #30363d;color:#8b949e}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase}
td{padding:5px 10px;border-bottom:1px solid #21262d;vertical-align:top}
tr:hover td{background:#161b22}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:10px;font-weight:600}
.badge.success{background:#23863622;color:#56d364;border:1px solid #238636}
.badge.warning{background:#bb800922;color:#f59e0b;border:1px solid #bb8009}
.badge.danger{background:#da363322;color:#f87171;border:1px solid #da3633}
.badge.secondary{background:#21262d;color:#8b949e;border:1px solid #30363d}
.section{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;padding:12px 16px}
.field{display:flex;gap:8px;margin:3px 0}
.field .lbl{color:#8b949e;min-width:160px}
.mono{font-family:monospace;font-size:11px;color:#79c0ff;word-break:break-all}
.dim{color:#8b949e}
.tabs{display:flex;gap:4px;border-bottom:1px solid #30363d;margin-bottom:12px;flex-wrap:wrap}
.tab{padding:5px 12px;cursor:pointer;border:1px solid transparent;border-radius:6px 6px 0 0;color:#8b949e}
.tab.active{color:#f0f6fc;border-color:#30363d;border-bottom-color:#161b22;background:#161b22}
.tab-body{display:none}
.tab-body.active{display:block}
.ns-badge{display:inline-flex;align-items:center;gap:6px;background:#21262d;border:1px solid #30363d;border-radius:4px;padding:2px 8px;margin:2px;font-size:11px}
.ns-badge .copy{cursor:pointer;color:#8b949e}
.wf{display:flex;gap:8px;align-items:flex-end;flex-wrap:wrap;margin:8px 0}
.wf label{font-size:11px;color:#8b949e;display:block}
.wf .ctl{flex:1;min-width:140px}
.result{margin-top:8px}
.banner{padding:8px 12px;border-radius:6px;margin:8px 0;font-size:12px}
.banner.warning{background:#bb800922;border:1px solid #bb8009;color:#f59e0b}
.banner.error{background:#da363322;border:1px solid #da3633;color:#f87171}
.banner.info{background:#1f6feb22;border:1px solid #1f6feb;color:#58a6ff}
.banner.loading{background:#21262d;border:1px solid #30363d;color:#8b949e}
.count{background:#1f6feb;color:#fff;border-radius:10px;padding:0 8px;font-size:10px;font-weight:700;margin-left:6px}
dialog{background:#161b22;color:#c9d1d9;border:1px solid #30363d;border-radius:6px;max-width:720px;width:90%;padding:0}
dialog::backdrop{background:#000a}
.modal-hdr{display:flex;justify-content:space-between;align-items:center;padding:8px 12px;border-bottom:1px solid #30363d}
.modal-body{padding:12px;max-height:60vh;overflow:auto}
pre{white-space:pre-wrap;word-break:break-all;font-family:monospace;font-size:11px;color:#c9d1d9}
.row-actions{white-space:nowrap}
.row-actions button{padding:2px 8px;font-size:11px;margin-right:4px}
</style>
</head>
<body>
<nav><span class="brand">AgentCore Memory Browser</span><span class="dim">read/inspect/delete memory resources</span></nav>
<main>
{{if .Notice}}<div class="banner {{.Notice.Kind}}">{{.Notice.Message}}</div>{{end}}
<div class="section">
  <h2>Memory</h2>
  <form method="post" action="/ui/select">
    <select name="memory_id" onchange="this.form.submit()">
      <option value="">— select a memory —</option>
      {{range .Memories}}<option value="{{.ID}}" data-status="{{.Status}}" data-created="{{.Created}}" data-updated="{{.Updated}}"{{if .Selected}} selected{{end}}>{{.Label}} ({{.Status}})</option>{{end}}
    </select>
  </form>
  {{range .Memories}}{{if .Selected}}
  <div class="field" style="margin-top:8px"><span class="lbl">Status</span><span class="badge {{.Badge}}">{{.Status}}</span></div>
  <div class="field"><span class="lbl">Created</span><span>{{.Created}}</span></div>
  <div class="field"><span class="lbl">Updated</span><span>{{.Updated}}</span></div>
  {{end}}{{end}}
</div>
{{if .Detail}}{{template "detail" .}}{{end}}
</main>
<dialog id="json-modal">
  <div class="modal-hdr"><span id="modal-title"></span>
    <span><button class="ghost" id="modal-copy">Copy</button>
    <button class="ghost" onclick="document.getElementById('json-modal').close()">Close</button></span>
  </div>
  <div class="modal-body"><pre id="modal-json"></pre></div>
</dialog>
<script>
(function () {
  'use strict';

  function banner(kind) {
    return '<div class="banner ' + kind + '"></div>';
  }
  function showBanner(target, kind, msg) {
    target.innerHTML = banner(kind);
    target.firstChild.textContent = msg;
  }

  // Workflow forms post to their endpoint and inject the returned fragment.
  // A successful injection empties the other containers of the same group:
  // the record cache holds one result set, so only one tab may show rows.
  document.addEventListener('submit', function (e) {
    var form = e.target;
    if (!form.classList.contains('wf-form')) return;
    e.preventDefault();
    var target = document.querySelector(form.dataset.target);
    showBanner(target, 'loading', 'Loading...');
    fetch(form.action, { method: 'POST', body: new FormData(form) })
      .then(function (r) { return r.text().then(function (html) { return { ok: r.ok, html: html }; }); })
      .then(function (res) {
        target.innerHTML = res.html;
        if (!res.ok || !target.dataset.group) return;
        document.querySelectorAll('[data-group="' + target.dataset.group + '"]').forEach(function (el) {
          if (el !== target) el.innerHTML = '';
        });
      })
      .catch(function (err) { showBanner(target, 'error', 'Request failed: ' + err); });
  });

  // Delegated dispatch for row actions and copy affordances.
  document.addEventListener('click', function (e) {
    var el = e.target.closest('[data-action]');
    if (el) { dispatch(el.dataset.action, el.closest('[data-item-type]')); return; }
    var copy = e.target.closest('[data-copy]');
    if (copy) { navigator.clipboard.writeText(copy.dataset.copy); }
    var tab = e.target.closest('.tab');
    if (tab) { activateTab(tab); }
  });

  function activateTab(tab) {
    var tabs = tab.parentElement.querySelectorAll('.tab');
    tabs.forEach(function (t) { t.classList.toggle('active', t === tab); });
    document.querySelectorAll('.tab-body').forEach(function (b) {
      b.classList.toggle('active', b.id === tab.dataset.body);
    });
  }

  function dispatch(action, row) {
    if (!row) return;
    var itemType = row.dataset.itemType;
    var itemId = row.dataset.itemId;
    if (action === 'view') { viewItem(itemType, itemId); }
    if (action === 'delete') { deleteItem(itemType, itemId, row); }
  }

  function viewItem(itemType, itemId) {
    var q = 'item_type=' + encodeURIComponent(itemType) + '&item_id=' + encodeURIComponent(itemId);
    fetch('/ui/items/json?' + q)
      .then(function (r) {
        if (!r.ok) throw new Error('item no longer cached');
        return r.json();
      })
      .then(function (obj) {
        document.getElementById('modal-title').textContent = itemType + ' ' + itemId;
        document.getElementById('modal-json').textContent = JSON.stringify(obj, null, 2);
        document.getElementById('json-modal').showModal();
      })
      .catch(function (err) { alert(err.message); });
  }

  document.getElementById('modal-copy').addEventListener('click', function () {
    navigator.clipboard.writeText(document.getElementById('modal-json').textContent);
  });

  function deleteItem(itemType, itemId, row) {
    if (!confirm('Delete this ' + itemType + '? This cannot be undone.')) return;
    var body = new FormData();
    body.set('item_type', itemType);
    body.set('item_id', itemId);
    fetch('/ui/items/delete', { method: 'POST', body: body })
      .then(function (r) { return r.json().then(function (j) { return { ok: r.ok, body: j }; }); })
      .then(function (res) {
        if (!res.ok) { alert('Delete failed: ' + (res.body.detail || res.body.error || 'unknown error')); return; }
        row.remove();
        var count = document.querySelector('[data-count="' + itemType + '"]');
        if (count) count.textContent = res.body.count;
      })
      .catch(function (err) { alert('Delete failed: ' + err); });
  }
})();
</script>
</body>
</html>{{end}}`

const tmplDetail = `
{{define "detail"}}{{with .Detail}}<div class="section" id="memory-detail">
  <h2>Details</h2>
  <div class="field"><span class="lbl">ID</span><span class="mono">{{.ID}}</span></div>
  <div class="field"><span class="lbl">ARN</span><span class="mono">{{.ARN}}</span></div>
  <div class="field"><span class="lbl">Status</span><span class="badge {{.Badge}}">{{.Status}}</span></div>
  <div class="field"><span class="lbl">Created</span><span>{{.Created}}</span></div>
  <div class="field"><span class="lbl">Updated</span><span>{{.Updated}}</span></div>
  {{if .Description}}<div class="field"><span class="lbl">Description</span><span>{{.Description}}</span></div>{{end}}
  {{if .EncryptionKeyARN}}<div class="field"><span class="lbl">Encryption key</span><span class="mono">{{.EncryptionKeyARN}}</span></div>{{end}}
  {{if .ExecutionRoleARN}}<div class="field"><span class="lbl">Execution role</span><span class="mono">{{.ExecutionRoleARN}}</span></div>{{end}}
</div>

<div class="section">
  <h2>Events</h2>
  <form class="wf wf-form" method="post" action="/ui/events/list" data-target="#events-result">
    <span class="ctl"><label>Session ID</label><input name="session_id" placeholder="session-id"></span>
    <span class="ctl"><label>Actor ID</label><input name="actor_id" placeholder="actor-id"></span>
    <button type="submit">List Events</button>
  </form>
  <form class="wf wf-form" method="post" action="/ui/events/add" data-target="#add-event-result">
    <span class="ctl" style="flex:2"><label>Content</label><textarea name="content" rows="2"></textarea></span>
    <span class="ctl"><label>Type</label><select name="content_type"><option value="text">text</option><option value="json">json</option></select></span>
    <span class="ctl"><label>Role</label><select name="role"><option>USER</option><option>ASSISTANT</option><option>TOOL</option><option>OTHER</option></select></span>
    <span class="ctl"><label>Session ID</label><input name="session_id" placeholder="default"></span>
    <span class="ctl"><label>Actor ID</label><input name="actor_id" placeholder="default"></span>
    <button type="submit">Add Event</button>
  </form>
  <div class="result" id="add-event-result"></div>
  <div class="result" id="events-result"></div>
</div>

<div class="section">
  <h2>Strategies</h2>
  {{if .Strategies}}
  <div class="tabs">
    {{range .Strategies}}<span class="tab{{if .Active}} active{{end}}" data-body="strategy-{{.Index}}">{{.Name}}</span>{{end}}
  </div>
  {{range .Strategies}}
  <div class="tab-body{{if .Active}} active{{end}}" id="strategy-{{.Index}}">
    <div class="field"><span class="lbl">Strategy ID</span><span class="mono">{{.StrategyID}}</span></div>
    <div class="field"><span class="lbl">Type</span><span>{{.Type}}</span></div>
    <div class="field"><span class="lbl">Status</span><span class="badge {{.Badge}}">{{.Status}}</span></div>
    <div class="field"><span class="lbl">Created</span><span>{{.Created}}</span></div>
    <div class="field"><span class="lbl">Updated</span><span>{{.Updated}}</span></div>
    {{if .Description}}<div class="field"><span class="lbl">Description</span><span>{{.Description}}</span></div>{{end}}
    <div class="field"><span class="lbl">Namespaces</span><span>
      {{range .Namespaces}}<span class="ns-badge">{{.}}<span class="copy" title="copy" data-copy="{{.}}">⧉</span></span>{{end}}
    </span></div>

    <form class="wf wf-form" method="post" action="/ui/records/list" data-target="#records-result-{{.Index}}">
      <span class="ctl" style="flex:2"><label>Namespace</label><input name="namespace" value="{{.DefaultNamespace}}"></span>
      <button type="submit">List Records</button>
    </form>
    <form class="wf wf-form" method="post" action="/ui/records/search" data-target="#records-result-{{.Index}}">
      <span class="ctl" style="flex:2"><label>Query</label><input name="query" placeholder="semantic search query"></span>
      <span class="ctl" style="flex:2"><label>Namespace</label><input name="namespace" value="{{.DefaultNamespace}}"></span>
      <button type="submit">Retrieve Records</button>
    </form>
    <div class="result" id="records-result-{{.Index}}" data-group="records"></div>
  </div>
  {{end}}
  {{else}}<div class="banner info">No strategies configured for this memory.</div>{{end}}
</div>{{end}}{{end}}`

const tmplTable = `
{{define "table"}}<h2>{{.Title}}<span class="count" data-count="{{.Kind}}">{{.Count}}</span></h2>
{{if .Rows}}<table>
<tr><th>Time</th><th>Type</th><th>Preview</th><th></th></tr>
{{range .Rows}}<tr data-item-type="{{.ItemType}}" data-item-id="{{.ItemID}}">
  <td class="dim">{{.Time}}</td>
  <td><span class="mono">{{.Label}}</span></td>
  <td>{{.Preview}}</td>
  <td class="row-actions">
    <button class="ghost" data-action="view">JSON</button>
    <button class="danger" data-action="delete">Delete</button>
  </td>
</tr>{{end}}
</table>{{else}}<div class="banner info">No results.</div>{{end}}{{end}}`

const tmplBanner = `
{{define "banner"}}<div class="banner {{.Kind}}">{{.Message}}</div>{{end}}`
