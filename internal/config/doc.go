// Package config provides configuration loading, merging, and validation
// facilities for the mission hub server and the assistant client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file, when present
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the assistant client.
package config
