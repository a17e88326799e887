package config

import "time"

// Base application details
const AppName = "jot"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true

// History display
const DefaultPreviewWidth = 120
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Autocommit plugin
const DefaultAutocommitInterval = 30 * time.Second
