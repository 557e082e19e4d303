// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme loads optional severity-to-color overrides from a small
// YAML file. A theme never removes a severity from the map; it only
// changes which foreground color a severity renders with.
package theme
