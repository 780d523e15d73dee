// Package template defines renderer-agnostic template interfaces and
// adapters used by document-level chart renderers.
package template
