package migrations

import _ "embed"

//go:embed create_tables.up.sql
var Up string

//go:embed create_tables.down.sql
var Down string
