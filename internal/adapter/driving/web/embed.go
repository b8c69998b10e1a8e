package web

import "embed"

// StaticFS holds the embedded static assets (CSS and the copy script).
//
//go:embed static/*
var StaticFS embed.FS

// aboutMarkdown is the source of the /about page.
//
//go:embed content/about.md
var aboutMarkdown string
