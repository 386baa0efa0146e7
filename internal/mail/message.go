package mail

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// base64 lines must not exceed 76 characters (RFC 2045)
const base64LineLength = 76

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Message is one progress report mail: a subject, a short text body and
// optionally the rendered chart attached.
type Message struct {
	Subject    string
	Body       string
	Attachment *Attachment
}

// render produces the full RFC 822 message: plain text when there is no
// attachment, multipart/mixed with a base64 part otherwise.
func (m Message) render(from, to string) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("From: %s\r\n", from))
	content.WriteString(fmt.Sprintf("To: %s\r\n", to))
	content.WriteString(fmt.Sprintf("Subject: %s\r\n", m.Subject))
	content.WriteString("MIME-Version: 1.0\r\n")

	if m.Attachment == nil {
		content.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		content.WriteString("\r\n")
		content.WriteString(m.Body)
		content.WriteString("\r\n")
		return content.String()
	}

	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())
	content.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	content.WriteString("\r\n")

	content.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	content.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	content.WriteString("\r\n")
	content.WriteString(m.Body)
	content.WriteString("\r\n")

	contentType := m.Attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	content.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	content.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentType, m.Attachment.Name))
	content.WriteString("Content-Transfer-Encoding: base64\r\n")
	content.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", m.Attachment.Name))
	content.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(m.Attachment.Data)
	for i := 0; i < len(encoded); i += base64LineLength {
		end := i + base64LineLength
		if end > len(encoded) {
			end = len(encoded)
		}
		content.WriteString(encoded[i:end])
		content.WriteString("\r\n")
	}

	content.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return content.String()
}
