package site

// layoutTemplate wraps every page. Each page defines "title" and "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{template "title" .}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="/styles.css">
</head>
<body>
  <header class="site-header">
    <h1 class="site-title"><a href="/">{{.SiteName}}</a></h1>
    <nav class="site-nav">
      <a href="/"{{if eq .Nav "home"}} class="active"{{end}}>Events &amp; Products</a>
      <a href="/auction"{{if eq .Nav "auction"}} class="active"{{end}}>Silent Auction</a>
      <a href="/events.ics">Add events to your calendar</a>
    </nav>
  </header>
  <main class="container">
{{template "content" .}}
  </main>
  <footer class="site-footer">
    <p>Thank you for supporting {{.SiteName}}.</p>
  </footer>
</body>
</html>
`

const homeTemplate = `{{define "title"}}Events &amp; Products{{end}}
{{define "content"}}
    {{- if .Err}}
{{template "errorPanel" .}}
    {{- else}}
    <section class="section" id="events">
      <h2>Upcoming Events</h2>
      <div id="events-container">
{{.Events}}
      </div>
    </section>
    <section class="section" id="products">
      <h2>Fundraiser Products</h2>
      <div id="products-container">
{{.Products}}
      </div>
    </section>
    {{- end}}
{{end}}`

const auctionTemplate = `{{define "title"}}Silent Auction{{end}}
{{define "content"}}
    <section class="section" id="auction">
      <h2>Silent Auction</h2>
      <div class="filter-buttons">
        {{- range .Filters}}
        <a href="/auction?category={{.Category}}" class="filter-btn{{if .Active}} active{{end}}" data-category="{{.Category}}">{{.Label}}</a>
        {{- end}}
      </div>
      <div id="auction-items-container">
      {{- if .Err}}
{{template "errorPanel" .}}
      {{- else}}
{{.Items}}
      {{- end}}
      </div>
    </section>
    {{- if not .Err}}
    <section class="section" id="suggestions">
      <h2>Other Ways to Help</h2>
      <div id="suggestions-container">
{{.Suggestions}}
      </div>
    </section>
    {{- end}}
{{end}}`

const errorPanelTemplate = `{{define "errorPanel"}}    <div class="error-message text-center">
      <h3>Oops! Unable to load {{.What}}</h3>
      <p>{{.Err}}</p>
      <p>Please contact the site administrator.</p>
    </div>{{end}}`
