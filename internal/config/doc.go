// Package config loads runtime configuration for the NoteKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, path supplied by the CLI's --config flag.
//  3. Environment: a .env file in the working directory (loaded via
//     godotenv), then NOTEKEEPER_DB_PATH and NOTEKEEPER_IMAGE_DIR.
//  4. Command-line flags, applied by the CLI layer on top of the result.
//
// # JSON schema
//
//	{
//	  "database_path": "notekeeper.db",
//	  "image_dir": "images"
//	}
package config
