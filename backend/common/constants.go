package common

import (
	"flag"
	"time"

	"github.com/google/uuid"
)

var Version = "v0.1.0"
var SystemName = "DocBoard"

var StartTime = time.Now().Unix()

// SessionSecret is overwritten by the config file / SESSION_SECRET env var,
// so sessions survive restarts once either is set.
var SessionSecret = uuid.New().String()

var SQLitePath = "data/docboard.db"

// Database credentials, settable via the config file or DB_* environment
// variables. MySQLEnabled flips when credentials arrive from either
// source; without it the store uses SQLite.
var (
	DBHost       = "localhost"
	DBName       = "docboard"
	DBUser       = "root"
	DBPass       = ""
	MySQLEnabled = false
)

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
	LogDir        = flag.String("log-dir", "", "specify the log directory")
)

func PrintHelp() {
	println(SystemName + " " + Version)
	println("Usage: docboard [--port <port>] [--log-dir <log dir>] [--version] [--help]")
	flag.Usage()
}
