package config

const (
	_etc = "/usr/local/etc/sitebuilder"

	DefaultConfig      = _etc + "/config.yaml"
	DefaultCredentials = _etc + "/credentials.json"
)
