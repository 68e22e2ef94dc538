// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

// Package config provides configuration loading, merging, and validation
// facilities for the chat client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view that is
// passed explicitly into every component.
package config
