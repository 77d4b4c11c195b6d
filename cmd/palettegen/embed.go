package main

import _ "embed"

// defaultColors is the shipped colors file; --colors overrides it.
//
//go:embed colors.tsv
var defaultColors string

//go:embed table.go.tmpl
var tableTemplate string
