package ui

import (
	"html/template"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultDescription is the block shown under the page title.
const DefaultDescription = `## Welcome to the **Heart Disease Prediction Application**
Take a proactive step towards better heart health. This app uses advanced machine learning algorithms to predict the likelihood of heart disease based on key health indicators. By simply inputting your personal health data, such as age, cholesterol levels, and blood pressure, you can receive an instant assessment. Whether you're a healthcare professional or an individual concerned about heart health, this tool provides a quick and informative way to understand potential risks. Start your journey towards a healthier heart today!
`

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// RenderMarkdown converts src to sanitized HTML.
func RenderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(src))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	unsafe := markdown.Render(doc, renderer)
	return template.HTML(markupPolicy().SanitizeBytes(unsafe))
}
