package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	annotationPolicyOnce sync.Once
	annotationPolicy     *bluemonday.Policy
)

// Sanitize strips unsafe content from user-supplied annotation markup before
// it is embedded alongside rendered charts. Only SVG drawing elements and
// their presentational attributes survive.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(annotationSanitizer().Sanitize(trimmed))
	return cleaned
}

func annotationSanitizer() *bluemonday.Policy {
	annotationPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "text", "tspan", "title", "desc", "defs", "use",
		}
		policy.AllowElements(elements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "transform", "aria-hidden", "role", "class",
		).OnElements("svg", "g")

		policy.AllowAttrs("href", "xlink:href").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "text", "tspan"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"dx", "dy", "points", "rx", "ry", "fill", "stroke",
				"stroke-width", "stroke-dasharray", "text-anchor",
				"font-size", "transform", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id").OnElements("defs", "g")

		annotationPolicy = policy
	})
	return annotationPolicy
}
