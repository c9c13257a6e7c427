// Package res embeds the templates and static files of the generated site.
package res

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS
