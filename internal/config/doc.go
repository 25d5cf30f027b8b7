// SPDX-License-Identifier: MPL-2.0

// Package config loads libscout settings from the platform config
// directory, environment variables, and built-in defaults via viper.
// There is no package-level cached config: the CLI loads once at startup
// and passes the result down explicitly.
package config
