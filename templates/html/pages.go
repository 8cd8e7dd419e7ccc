package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/linesmerrill/cohort-site/quiz"
)

const pageStyle = `
    :root {
      font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      color-scheme: light dark;
      --bg-alt: #0b1020;
      --text: #e5e7eb;
      --muted: #9ca3af;
      --border: rgba(148, 163, 184, 0.4);
    }
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      background: radial-gradient(circle at top, #111827 0, #020617 45%, #000 100%);
      color: var(--text);
      min-height: 100vh;
      display: flex;
      align-items: center;
      justify-content: center;
      padding: 24px 16px;
    }
    .card {
      max-width: 500px;
      width: 100%;
      background: var(--bg-alt);
      border-radius: 24px;
      border: 1px solid var(--border);
      padding: 20px 20px 22px;
      box-shadow: 0 18px 40px rgba(15, 23, 42, 0.9);
    }
    h1 { font-size: 1.5rem; margin-bottom: 8px; }
    h2 { font-size: 1.1rem; margin: 10px 0 6px; }
    p { font-size: 0.92rem; color: var(--muted); margin-bottom: 8px; }
    ul { margin: 0 0 8px 18px; color: var(--muted); font-size: 0.92rem; }
    .stage-pill {
      display: inline-flex;
      align-items: center;
      gap: 8px;
      font-size: 0.8rem;
      padding: 4px 10px;
      border-radius: 999px;
      border: 1px solid var(--border);
      margin-bottom: 8px;
    }
    .stage-dot { width: 8px; height: 8px; border-radius: 999px; background: #22c55e; }
    a.button-link {
      display: inline-flex;
      margin-top: 10px;
      padding: 8px 14px;
      border-radius: 999px;
      text-decoration: none;
      background: linear-gradient(135deg, #4f46e5, #6366f1);
      color: #f9fafb;
      font-size: 0.9rem;
      font-weight: 500;
    }
    a.secondary { background: none; border: 1px solid var(--border); color: var(--muted); margin-left: 8px; }
`

// RenderThankYouPage generates the page shown after a contact form was relayed
func RenderThankYouPage() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>Thank you</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>` + pageStyle + `  </style>
</head>
<body>
  <div class="card">
    <h1>Thank you!</h1>
    <p>Your message has been sent. Check your inbox for a confirmation email.</p>
    <a href="/" class="button-link">Back to website</a>
  </div>
</body>
</html>`
}

// RenderQuizResultPage generates the cohort match page for the given stage
func RenderQuizResultPage(stage quiz.Stage) string {
	label := html.EscapeString(stage.Label)

	var activities strings.Builder
	for _, a := range stage.Activities {
		activities.WriteString("      <li>")
		activities.WriteString(html.EscapeString(a))
		activities.WriteString("</li>\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>Your Caregiver Cohort Match</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>%s  </style>
</head>
<body>
  <div class="card">
    <div class="stage-pill">
      <span class="stage-dot"></span>
      <span>Your Best Match: %s</span>
    </div>
    <h1>Your caregiver cohort match</h1>
    <p>Based on your answers, you&#39;re best aligned with the <strong>%s</strong>.</p>
    <p>%s</p>

    <h2>What caregivers in this stage often experience</h2>
    <p>%s</p>

    <h2>Example cohort activities</h2>
    <ul>
%s    </ul>

    <a href="/quiz.html" class="button-link">Retake the quiz</a>
    <a href="/" class="button-link secondary">Back to homepage</a>
  </div>
</body>
</html>`, pageStyle, label, label, html.EscapeString(stage.Summary), html.EscapeString(stage.Experience), activities.String())
}
