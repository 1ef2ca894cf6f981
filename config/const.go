package config

import "strings"

// AppVersion is the version of the tool. Overridden at build time via ldflags.
var AppVersion = "dev"

// AppName is the name of the tool.
const AppName = "Terra"

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// UserAgent identifies Terra on outbound HTTP requests.
var UserAgent = AppName + "/" + AppVersion + " (https://github.com/dixieflatline76/Terra)"
