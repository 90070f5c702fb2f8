package mailer

import (
	"bytes"
	"html/template"

	"casegate/internal/pkg/errs"
)

type unlockLinkData struct {
	SiteName       string
	Name           string
	CaseStudyTitle string
	RedemptionURL  string
}

type contactNoticeData struct {
	SiteName     string
	Name         string
	Email        string
	Organization string
	Phone        string
	Message      string
}

var unlockLinkTmpl = template.Must(template.New("unlock_link").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.5;">
  <p>Hi {{.Name}},</p>
  <p>thanks for your interest in <strong>{{.CaseStudyTitle}}</strong>.</p>
  <p><a href="{{.RedemptionURL}}">Open the full case study</a></p>
  <p>If the button does not work, copy this link into your browser:<br>{{.RedemptionURL}}</p>
  <p>The link is personal. Once opened, the case study stays unlocked in your browser.</p>
  <p>{{.SiteName}}</p>
</body>
</html>`))

var contactNoticeTmpl = template.Must(template.New("contact_notice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.5;">
  <h2>New contact request</h2>
  <p><strong>Name:</strong> {{.Name}}<br>
  <strong>Email:</strong> {{.Email}}<br>
  {{- if .Organization}}
  <strong>Organization:</strong> {{.Organization}}<br>
  {{- end}}
  {{- if .Phone}}
  <strong>Phone:</strong> {{.Phone}}<br>
  {{- end}}
  </p>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
  <p>Sent from the {{.SiteName}} contact form.</p>
</body>
</html>`))

func renderUnlockLink(data unlockLinkData) (string, error) {
	var buf bytes.Buffer
	if err := unlockLinkTmpl.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "failed to render unlock link email")
	}
	return buf.String(), nil
}

func renderContactNotice(data contactNoticeData) (string, error) {
	var buf bytes.Buffer
	if err := contactNoticeTmpl.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "failed to render contact notice email")
	}
	return buf.String(), nil
}
