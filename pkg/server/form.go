package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// formFieldNames are the input captions shown on the form.
var formFieldNames = map[string]string{
	reel.FieldFlangeDiameter:    "ბარაბნის დიამეტრი (mm)",
	reel.FieldBarrelDiameter:    "გულის დიამეტრი (mm)",
	reel.FieldWidth:             "შიდა სიგანე (mm)",
	reel.FieldArborHoleDiameter: "ნახვრეტის დიამეტრი (mm)",
	reel.FieldFlangeThickness:   "გვერდის სისქე (mm)",
	reel.FieldDrumThickness:     "გულის სისქე (mm)",
}

type formField struct {
	Name     string
	Caption  string
	Value    string
	Messages []string
}

type formPage struct {
	Fields []formField
	Side   template.HTML
	Front  template.HTML
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="ka">
<head>
<meta charset="utf-8">
<title>Reel Designer</title>
<style>
body{font-family:sans-serif;margin:2rem}
label{display:block;margin-top:.6rem}
.err{color:#d22;font-size:.9rem}
.views{display:flex;gap:2rem;margin-top:1.5rem;flex-wrap:wrap}
</style>
</head>
<body>
<form method="post" action="/">
{{- range .Fields}}
<label for="{{.Name}}">{{.Caption}}</label>
<input id="{{.Name}}" name="{{.Name}}" type="number" step="any" value="{{.Value}}">
{{- range .Messages}}
<div class="err">{{.}}</div>
{{- end}}
{{- end}}
<p><button type="submit">Render</button></p>
</form>
{{- if .Side}}
<div class="views">
<div>{{.Side}}</div>
<div>{{.Front}}</div>
</div>
{{- end}}
</body>
</html>
`))

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, newFormPage(dimensionValues(s.defaults), nil))
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "parse form: %v", err))
		return
	}

	values := make(map[string]string, len(formFieldNames))
	for _, spec := range reel.Fields() {
		values[spec.Name] = strings.TrimSpace(r.PostForm.Get(spec.Name))
	}

	d, messages := parseForm(values)
	if len(messages) == 0 {
		result, err := s.runner.Execute(r.Context(), d, s.opts)
		switch {
		case err == nil:
			page := newFormPage(values, nil)
			page.Side = template.HTML(result.Side)
			page.Front = template.HTML(result.Front)
			s.renderForm(w, r, http.StatusOK, page)
			return
		case errors.Is(err, errors.ErrCodeInvalidDimensions):
			messages = result.Validation.Messages()
		default:
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
	}
	s.renderForm(w, r, http.StatusOK, newFormPage(values, messages))
}

// parseForm converts submitted strings into a record. Empty and
// unparsable inputs produce field messages instead of a record.
func parseForm(values map[string]string) (reel.Dimensions, map[string][]string) {
	var d reel.Dimensions
	messages := map[string][]string{}
	for _, spec := range reel.Fields() {
		raw := values[spec.Name]
		if raw == "" {
			messages[spec.Name] = append(messages[spec.Name], spec.Label+" is required")
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			messages[spec.Name] = append(messages[spec.Name], spec.Label+" must be a number")
			continue
		}
		_ = d.Set(spec.Name, v)
	}
	return d, messages
}

func dimensionValues(d reel.Dimensions) map[string]string {
	out := make(map[string]string, len(formFieldNames))
	for _, spec := range reel.Fields() {
		v, _ := d.Get(spec.Name)
		out[spec.Name] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return out
}

func newFormPage(values map[string]string, messages map[string][]string) formPage {
	var page formPage
	for _, spec := range reel.Fields() {
		page.Fields = append(page.Fields, formField{
			Name:     spec.Name,
			Caption:  formFieldNames[spec.Name],
			Value:    values[spec.Name],
			Messages: messages[spec.Name],
		})
	}
	return page
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, errors.Wrap(errors.ErrCodeInternal, err, "render form"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
