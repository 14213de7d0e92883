package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/2008cattiger-cyber/miniature/models"
)

const defaultPollDuration = 7 * 24 * time.Hour

type Config struct {
	Port         int
	AdminID      int64
	ChannelID    int64
	VoteMode     string
	PollDuration time.Duration
	StoreType    string
	DatabaseURL  string
}

// ParseFlags validates flags, falling back to the environment. A .env
// file in the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	// Ignore a missing .env; real env vars always win.
	_ = godotenv.Load()

	var cfg Config
	var adminID, channelID, durationSecs int64

	fs := flag.NewFlagSet("miniature-poll", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Gateway port")
	fs.Int64Var(&adminID, "admin", 0, "Admin user id")
	fs.Int64Var(&channelID, "channel", 0, "Default target channel id")
	fs.StringVar(&cfg.VoteMode, "mode", "", "Voting mode (multi or single)")
	fs.Int64Var(&durationSecs, "duration", 0, "Poll lifetime in seconds")
	fs.StringVar(&cfg.StoreType, "store", "", "Store type (json, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or state file path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	// Admin id MUST be provided; every privileged command checks it.
	cfg.AdminID = adminID
	if cfg.AdminID == 0 {
		if idStr := os.Getenv("ADMIN_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid ADMIN_ID env variable")
			}
			cfg.AdminID = id
		}
	}
	if cfg.AdminID == 0 {
		return Config{}, errors.New("admin id required (use -admin or ADMIN_ID env)")
	}

	// Default channel is optional; create falls back to it when the
	// command carries no channel override.
	cfg.ChannelID = channelID
	if cfg.ChannelID == 0 {
		if idStr := os.Getenv("CHANNEL_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid CHANNEL_ID env variable")
			}
			cfg.ChannelID = id
		}
	}

	if cfg.VoteMode == "" {
		cfg.VoteMode = os.Getenv("VOTE_MODE")
		if cfg.VoteMode == "" {
			cfg.VoteMode = models.ModeMulti
		}
	}
	if cfg.VoteMode != models.ModeMulti && cfg.VoteMode != models.ModeSingle {
		return Config{}, errors.New("vote mode must be multi or single")
	}

	if durationSecs == 0 {
		if durStr := os.Getenv("POLL_DURATION"); durStr != "" {
			secs, err := strconv.ParseInt(durStr, 10, 64)
			if err != nil || secs <= 0 {
				return Config{}, errors.New("invalid POLL_DURATION env variable")
			}
			durationSecs = secs
		}
	}
	if durationSecs == 0 {
		cfg.PollDuration = defaultPollDuration
	} else {
		cfg.PollDuration = time.Duration(durationSecs) * time.Second
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "json"
		}
	}
	switch cfg.StoreType {
	case "json", "sqlite", "postgres":
	default:
		return Config{}, errors.New("store type must be json, sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.StoreType == "json" {
			cfg.DatabaseURL = "votes.json"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	return cfg, nil
}
