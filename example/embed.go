package example

import "embed"

//go:embed all:site
var SiteFS embed.FS
