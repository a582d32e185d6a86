package config

const (
	_etc = `C:\sitebuilder`

	DefaultConfig      = _etc + `\config.yaml`
	DefaultCredentials = _etc + `\credentials.json`
)
