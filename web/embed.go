package web

import "embed"

// StaticFS embeds the client page assets.
//
//go:embed static/*
var StaticFS embed.FS
