package views

import (
	"bytes"
	"testing"

	"github.com/SampleSite/SampleSite-Backend/src/dtos"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, form dtos.FormView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, FormTemplate, map[string]any{"form": form}))
	return buf.String()
}

func TestFormTemplateRendersInputs(t *testing.T) {
	html := render(t, dtos.NewFormView("State details", models.LocationDetailSchema.Fields, nil, nil))

	assert.Contains(t, html, `<title>State details</title>`)
	assert.Contains(t, html, `name="city" value="" id="id_city" maxlength="20" required`)
	assert.NotContains(t, html, "errorlist")
}

func TestFormTemplateRendersErrorsAndEscapesValues(t *testing.T) {
	html := render(t, dtos.NewFormView("Entity", models.EntitySchema.Fields,
		map[string]string{"title": `<b>"x"</b>`, "description": ""},
		map[string][]string{"description": {"This field is required."}}))

	assert.Contains(t, html, `<textarea name="description"`)
	assert.Contains(t, html, `<li>This field is required.</li>`)
	assert.Contains(t, html, `value="&lt;b&gt;&#34;x&#34;&lt;/b&gt;"`)
}
