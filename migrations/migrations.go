// Package migrations embute os arquivos SQL de migração aplicados via goose
// na subida da aplicação.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
