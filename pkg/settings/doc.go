// Package settings defines the registry settings model applied to the
// Default User hive: typed values, settings (a key path plus its named
// values), and the built-in provisioning profile.
package settings
