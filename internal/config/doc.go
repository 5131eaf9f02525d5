// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package config provides configuration loading, merging, and validation
// facilities for ghost-shell.
//
// Configuration is assembled from multiple sources in the following
// priority order (later sources fill fields still unset by earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
