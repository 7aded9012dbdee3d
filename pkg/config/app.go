package config

var AppVersion = "DEVELOPMENT"

const (
	AppName = "metafix"
	LogFile = "metafix.log"
	CfgFile = "metafix.toml"
)
