/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override a .env file in
the working directory (loaded via godotenv), which overrides defaults.

# Settings

Required:

  - ADMIN_ID (-admin): user id allowed to run privileged commands

Optional:

  - CHANNEL_ID (-channel): default target channel for new polls
  - VOTE_MODE (-mode): "multi" (default) or "single"
  - POLL_DURATION (-duration): poll lifetime in seconds (default 604800)
  - STORE_TYPE (-store): "json" (default), "sqlite" or "postgres"
  - DATABASE_URL (-d): DSN for sql stores, file path for the json store
    (default votes.json)
  - PORT (-p): gateway port (default 3318)
*/
package cliparse
