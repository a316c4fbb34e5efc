// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

# Settings

  - Port (-p / PORT): server port, default 3000
  - DatabaseURL (-d / DATABASE_URL): PostgreSQL connection string, required
  - BaseURL (-base-url / BASE_URL): public base URL embedded in shareable
    form links, default http://localhost:5173

Flags win over environment variables. main additionally loads a .env
file via godotenv before parsing, so local development can keep settings
in a file.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
	    slog.Error("Error parsing flags", "error", err)
	    os.Exit(1)
	}
*/
package cliparse
