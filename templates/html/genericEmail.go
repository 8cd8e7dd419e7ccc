package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderGenericEmail generates the HTML alternative for a plain text email.
// The subject is displayed in the header banner, and bodyContent is plain text
// that gets HTML-escaped and has newlines converted to <br> tags.
func RenderGenericEmail(siteName, subject, bodyContent string) string {
	escaped := html.EscapeString(bodyContent)
	htmlBody := strings.ReplaceAll(escaped, "\n", "<br>")

	safeSubject := html.EscapeString(subject)
	safeSite := html.EscapeString(siteName)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: system-ui, -apple-system, 'Segoe UI', sans-serif; margin: 0; padding: 0; background-color: #020617; }
    .container { max-width: 600px; margin: 0 auto; background-color: #0b1020; }
    .header { background: linear-gradient(135deg, #4f46e5 0%%, #6366f1 100%%); padding: 32px 28px; text-align: center; }
    .header h1 { color: #f9fafb; margin: 0; font-size: 22px; font-weight: 600; }
    .content { padding: 32px 28px; color: #e5e7eb; line-height: 1.6; font-size: 15px; }
    .footer { padding: 24px; text-align: center; color: #9ca3af; font-size: 12px; border-top: 1px solid rgba(148,163,184,0.4); }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      %s
    </div>
    <div class="footer">
      <p>&copy; %s</p>
    </div>
  </div>
</body>
</html>`, safeSubject, safeSubject, htmlBody, safeSite)
}
