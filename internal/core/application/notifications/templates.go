package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/notification"
)

//go:embed templates/*.html
var templateFS embed.FS

const digestTemplate = "bulk-digest.html"

// OrderView is the part of an order shown in emails.
type OrderView struct {
	Title       string
	City        string
	Status      string
	Description string
	Items       []ItemView
	Assignees   []string
}

type ItemView struct {
	Name     string
	Quantity int
}

// ChangeView is one audit entry in an update email.
type ChangeView struct {
	At     time.Time
	Author string
	Text   string
}

type NoticeEmail struct {
	RecipientName string
	Message       string
	Order         OrderView
	Changes       []ChangeView
}

type DigestEmail struct {
	RecipientName string
	Orders        []OrderView
}

// Renderer turns notices and digests into html emails.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("emails").Funcs(template.FuncMap{
		"join":  strings.Join,
		"inc":   func(i int) int { return i + 1 },
		"stamp": func(t time.Time) string { return t.UTC().Format("02 Jan 2006 15:04 MST") },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// RenderNotice returns the subject and body for kind. EmailNone has no template.
func (r *Renderer) RenderNotice(kind notification.EmailKind, data NoticeEmail) (subject, body string, err error) {
	if kind == notification.EmailNone {
		return "", "", fmt.Errorf("no email template for kind %s", kind)
	}

	body, err = r.execute(kind.String()+".html", data)
	if err != nil {
		return "", "", err
	}
	return noticeSubject(kind, data.Order.Title), body, nil
}

func (r *Renderer) RenderDigest(data DigestEmail) (subject, body string, err error) {
	body, err = r.execute(digestTemplate, data)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("%d New Orders Assigned to You", len(data.Orders)), body, nil
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func noticeSubject(kind notification.EmailKind, title string) string {
	if title == "" {
		title = "Untitled Order"
	}
	switch kind {
	case notification.EmailOrderCreated:
		return "New Order Assigned: " + title
	case notification.EmailUpdatedByAssignee:
		return "Taker Updated Your Order: " + title
	case notification.EmailUpdatedByCreator, notification.EmailNone:
	}
	return "Order Updated: " + title
}
