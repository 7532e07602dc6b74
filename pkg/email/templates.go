package email

import (
	"fmt"
	"html"
	"strings"
)

// ReportShareData contains the data needed for the report share email.
type ReportShareData struct {
	AppName      string
	ChildName    string
	Psychologist string
	Signature    string
	Note         string
	Filename     string
	Content      []byte
}

// BuildReportShareEmail creates a message carrying a report text file as an
// attachment. The body is right-to-left Hebrew.
func BuildReportShareEmail(to string, data ReportShareData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "PsyAssist"
	}

	subject := fmt.Sprintf(`דו"ח אבחון - %s`, data.ChildName)

	var text strings.Builder
	fmt.Fprintf(&text, "שלום,\n\nמצורף דו\"ח האבחון של %s.\n", data.ChildName)
	if data.Psychologist != "" {
		fmt.Fprintf(&text, "אבחן/ת: %s\n", data.Psychologist)
	}
	if note := strings.TrimSpace(data.Note); note != "" {
		fmt.Fprintf(&text, "\n%s\n", note)
	}
	fmt.Fprintf(&text, "\nקוד אימות: %s\n\n%s", data.Signature, appName)

	var note string
	if n := strings.TrimSpace(data.Note); n != "" {
		note = fmt.Sprintf(`<p style="background:#f3f4f6;padding:12px;border-radius:6px;">%s</p>`, html.EscapeString(n))
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">דו"ח אבחון - %s</h2>
    <p>מצורף דו"ח האבחון כקובץ טקסט.</p>
    %s
    <p style="color: #6b7280; font-size: 13px;">קוד אימות: %s</p>
    <p>%s</p>
</body>
</html>`,
		html.EscapeString(data.ChildName), note, html.EscapeString(data.Signature), html.EscapeString(appName))

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: text.String(),
		HTMLBody: htmlBody,
		Attachments: []Attachment{{
			Filename:    data.Filename,
			ContentType: "text/plain; charset=utf-8",
			Content:     data.Content,
		}},
	}
}
