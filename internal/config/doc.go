// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. dotenv file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields that no source sets take the package defaults.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
