// Package main runs danted, the HTTP API server behind the dante CLI.
//
// Configuration is read from DANTE_* environment variables, optionally
// seeded from a .env file in the working directory:
//
//	DANTE_ADDR            listen address (default :5000)
//	DANTE_DB_PATH         SQLite database file (default dante.db)
//	DANTE_UPLOAD_DIR      directory for uploaded images (default uploads)
//	DANTE_JWT_SECRET      HMAC secret for access tokens (required)
//	DANTE_TOKEN_TTL       access token lifetime (default 24h)
//	DANTE_LOG_LEVEL       debug, info, warn or error (default info)
//	DANTE_GEMINI_API_KEY  enables the Gemini backed assistant when set
//	DANTE_GEMINI_MODEL    model name (default gemini-2.5-flash)
//	DANTE_LOGIN_RATE      login attempts per second per IP (default 1)
//	DANTE_LOGIN_BURST     login burst per IP (default 5)
//	DANTE_MAX_UPLOAD      request body cap in bytes (default 8 MiB)
//
// Every resource route lives under /api. /healthz and /metrics sit at the
// root. The server stops gracefully on SIGINT or SIGTERM.
package main
