package card

import "html/template"

var documentTemplate = template.Must(template.New("card").Parse(documentHTML))

const documentHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    {{- with .Meta}}
    {{- if .Description}}
    <meta name="description" content="{{.Description}}" />
    <meta property="og:description" content="{{.OG.Description}}" />
    {{- end}}
    <meta property="og:title" content="{{.OG.Title}}" />
    <meta property="og:type" content="{{.OG.Type}}" />
    {{- end}}
    <style>
{{.BaseCSS}}
{{.SkinCSS}}
    </style>
  </head>
  <body>
    <div class="card-wrapper" data-template="{{.Template}}" data-layout="{{.Layout}}">
      <div class="card-content">
        <header>
          <div class="card-theme">{{.TitleHTML}}</div>
          <div class="card-tagline">{{.Tagline}}</div>
          <div class="card-date">{{.Date}}</div>
          {{- if .Question}}
          <div class="card-question">{{.Question}}</div>
          {{- end}}
        </header>
        {{- range .Sections}}
        <section class="card-section" data-section="{{.Key}}" style="--section-accent: {{.Accent}}">
          <div class="section-header">
            <span class="section-icon">{{.Icon}}</span>
            <span class="section-title">{{.Title}}</span>
          </div>
          <div class="section-content">
            {{- if .Columns}}
            <div class="card-two-column">
              {{- range .Columns}}
              <div class="card-two-column__item" data-column="{{.Key}}">
                <div class="card-label">{{.Label}}</div>
                <div class="card-markdown">{{.Body}}</div>
              </div>
              {{- end}}
            </div>
            {{- else}}
            {{.Body}}
            {{- end}}
          </div>
        </section>
        {{- end}}
        <div class="card-footer">
          <span>{{.Footer}}</span>
        </div>
      </div>
    </div>
  </body>
</html>
`

// baseCSS is the structure shared by every skin. Colours and fonts come from
// the custom properties each skin defines.
const baseCSS = `:root {
  font-size: 16px;
}
* {
  box-sizing: border-box;
}
body {
  margin: 0;
  font-family: var(--font);
  background: var(--page-bg);
  min-height: 100vh;
  display: flex;
  align-items: center;
  justify-content: center;
  padding: 48px 24px;
}
.card-wrapper {
  width: min(860px, 100%);
  background-color: var(--card-bg);
  border-radius: 28px;
  padding: 48px;
  box-shadow:
    0 24px 80px var(--card-shadow),
    0 12px 30px var(--card-shadow);
  border: 1px solid var(--card-border);
  position: relative;
  overflow: hidden;
}
.card-wrapper::before,
.card-wrapper::after {
  content: '';
  position: absolute;
  width: 320px;
  height: 320px;
  background: radial-gradient(circle, var(--glow-primary), transparent 70%);
  filter: blur(4px);
  opacity: 0.7;
}
.card-wrapper::before {
  top: -160px;
  right: -80px;
}
.card-wrapper::after {
  bottom: -120px;
  left: -60px;
  background: radial-gradient(circle, var(--glow-secondary), transparent 70%);
}
.card-content {
  position: relative;
  z-index: 1;
}
header {
  text-align: center;
  margin-bottom: 40px;
}
.card-theme {
  font-size: 2rem;
  font-weight: 600;
  color: var(--accent);
  letter-spacing: 1px;
  margin-bottom: 12px;
}
.card-tagline {
  font-size: 1rem;
  letter-spacing: 0.2em;
  text-transform: uppercase;
  color: var(--accent-soft);
  margin-bottom: 20px;
}
.card-date {
  font-size: 0.95rem;
  color: var(--text-muted);
}
.card-question {
  font-size: 1.05rem;
  line-height: 1.7;
  color: var(--text);
  margin-top: 20px;
  padding: 16px 20px;
  background: var(--question-bg);
  border-radius: 16px;
  border-left: 3px solid var(--accent-soft);
  font-style: italic;
  text-align: left;
}
.card-section {
  background: var(--section-bg);
  border-radius: 22px;
  padding: 24px 28px;
  margin-bottom: 20px;
  border: 1px solid var(--card-border);
  border-left: 4px solid var(--section-accent, var(--accent-soft));
}
.section-header {
  display: flex;
  align-items: center;
  gap: 12px;
  margin-bottom: 12px;
}
.section-icon {
  font-size: 1.5rem;
}
.section-title {
  font-size: 1.1rem;
  font-weight: 600;
  color: var(--text);
}
.section-content {
  line-height: 1.9;
  color: var(--text);
  font-size: 1rem;
}
.card-two-column {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));
  gap: 20px;
}
.card-label {
  font-size: 0.85rem;
  letter-spacing: 0.15em;
  text-transform: uppercase;
  color: var(--text-muted);
  margin-bottom: 6px;
}
.card-markdown :is(p, ul, ol) {
  margin: 0 0 10px;
}
.card-markdown ul,
.card-markdown ol,
.section-content ul,
.section-content ol {
  padding-left: 24px;
}
.section-content li {
  margin-bottom: 8px;
}
.card-list {
  list-style: none;
  margin: 0;
  padding: 0;
  display: flex;
  flex-direction: column;
  gap: 12px;
}
.card-list li {
  padding-left: 20px;
  position: relative;
}
.card-list li::before {
  content: var(--bullet);
  position: absolute;
  left: 0;
  color: var(--accent-soft);
}
.card-list li p {
  margin: 0;
}
.card-footer {
  text-align: center;
  margin-top: 32px;
  font-size: 0.9rem;
  color: var(--text-muted);
  letter-spacing: 0.2em;
}
.card-footer span {
  display: inline-block;
  padding: 8px 18px;
  border-radius: 999px;
  background: var(--question-bg);
  border: 1px solid var(--card-border);
}
.card-markdown code,
.section-content code {
  background: var(--code-bg);
  padding: 2px 6px;
  border-radius: 6px;
  font-size: 0.9em;
}
.card-markdown a,
.section-content a {
  color: var(--accent);
  text-decoration: none;
  border-bottom: 1px solid var(--accent-soft);
}
@media (max-width: 640px) {
  body {
    padding: 24px 16px;
  }
  .card-wrapper {
    padding: 32px 20px;
  }
}
`
