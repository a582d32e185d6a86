package config

const (
	_etc = "/usr/local/etc/com.github.stayhomeandlearn"

	DefaultConfig      = _etc + "/config.yaml"
	DefaultCredentials = _etc + "/credentials.json"
)
