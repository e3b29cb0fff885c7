// AngelaMos | 2026
// fs.go

package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
