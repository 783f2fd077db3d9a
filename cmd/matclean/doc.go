// Package main hosts the matclean CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations (or a Nautilus
// scripts-menu click) into cleaning runs, environment checks, configuration
// scaffolding, and shim installation. It centralizes configuration resolution
// and logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
