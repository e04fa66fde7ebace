package httpapi

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"

	"wasteclassd/pkg/types"
)

//go:embed templates/index.html
var templateFS embed.FS

const (
	pageTitle       = "Klasifikasi Sampah & Saran Pengolahan"
	pageDescription = "Unggah foto sampah untuk mengetahui jenisnya dan cara mengolahnya"
)

// ui renders the upload form and the result page.
type ui struct {
	page *template.Template
	md   goldmark.Markdown
}

type pageData struct {
	Title       string
	Description string
	Ready       bool
	Error       string
	Top         []types.LabelScore
	Advice      template.HTML
}

func newUI() *ui {
	funcs := template.FuncMap{
		"pct": func(p float32) string { return fmt.Sprintf("%.1f%%", p*100) },
	}
	return &ui{
		page: template.Must(template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")),
		md:   goldmark.New(),
	}
}

// markdown converts advisory markdown to HTML. Raw HTML in the source is
// not passed through.
func (u *ui) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := u.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (u *ui) render(w http.ResponseWriter, status int, data pageData) {
	data.Title = pageTitle
	data.Description = pageDescription
	var buf bytes.Buffer
	if err := u.page.Execute(&buf, data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.ui.render(w, http.StatusOK, pageData{Ready: h.svc.Ready()})
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	data := pageData{Ready: h.svc.Ready()}
	p, status, err := h.classify(w, r)
	if err != nil {
		var ue *uploadError
		if errors.As(err, &ue) {
			data.Error = ue.msg
		} else {
			data.Error = userMessage(status, err)
		}
		h.ui.render(w, status, data)
		return
	}
	advice, err := h.ui.markdown(p.Markdown)
	if err != nil {
		data.Error = "failed to render advisory"
		h.ui.render(w, http.StatusInternalServerError, data)
		return
	}
	data.Top = p.Top
	data.Advice = advice
	h.ui.render(w, http.StatusOK, data)
}
