// Package poemgenerator turns a title into poem text. A fixed template table
// serves development and keyless deployments; a Gemini-backed generator is
// used when an API key is configured.
package poemgenerator
