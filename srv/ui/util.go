package ui

import (
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/zjgcainiao/HanwenPDF/srv/generator"
)

func isValidSession(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	_, err := uuid.Parse(sessionID)
	return err == nil
}

// formatMessages renders session updates as an HTML fragment for the
// history endpoint.
func formatMessages(messages []generator.WSMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(fmt.Sprintf(`
            <div class="message %s">
                <div class="message-header">
                    <span>%s</span>
                    <span>%s</span>
                </div>
                %s
            </div>
        `,
			msg.Status,
			msg.Status,
			msg.Timestamp.Format("15:04:05"),
			formatContent(msg.Message),
		))
	}
	return b.String()
}

func formatContent(content string) string {
	if content == "" {
		return ""
	}
	// Escape to keep pasted novel text from becoming markup.
	return fmt.Sprintf("<p class=\"message-content\">%s</p>", html.EscapeString(content))
}

// homePage is the minimal paste-and-convert form.
const homePage = `<!DOCTYPE html>
<html lang="zh-Hant">
<head><meta charset="utf-8"><title>HanwenPDF</title></head>
<body>
  <h1>HanwenPDF</h1>
  <p>Paste a Simplified-Chinese novel; receive a paginated Traditional-Chinese PDF.</p>
  <form method="post" action="/generate">
    <textarea name="text" rows="20" cols="80" placeholder="novel text"></textarea><br>
    <label>Mode <input name="mode" value="s2twp"></label>
    <button type="submit">Convert</button>
  </form>
</body>
</html>`
