// Package config holds the sitebuilder configuration: the workbook and bucket
// identities, the working directories and the fixed lookup tables (category
// labels, content types, ignored files). Every table is passed explicitly to
// the component that uses it so that tests can substitute alternates.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Workbook     string            `yaml:"workbook"`
	Credentials  string            `yaml:"credentials"`
	Profile      string            `yaml:"profile"`
	Bucket       string            `yaml:"bucket"`
	TemplateDir  string            `yaml:"template"`
	TemplateFile string            `yaml:"template_file"`
	DataDir      string            `yaml:"data"`
	SiteDir      string            `yaml:"site"`
	IntroText    string            `yaml:"intro_text"`
	MetaContent  string            `yaml:"meta_content"`
	Labels       map[string]string `yaml:"labels"`
	ContentTypes map[string]string `yaml:"content_types"`
	Ignore       []string          `yaml:"ignore"`
}

const introText = `
<b>COVID-19 continues disrupting lives.</b> Some are going through severe health situations. Others have lost their jobs. And by now, many of us are quarantined in our homes.
<br><br>
Life may feel tough now, but don't despair. This can be a time to learn new things, get better at your craft or enjoy (virtual) time with friends and family.
<br><br>
<b>This page is a list of high-quality resources available for free or cheaper than usual due to the COVID-19:</b>
<a href="#learning_resources"> Learning Resources</a>,
<a href="#health"> Health & Fitness</a>,
<a href="#productivity"> Productivity</a>, and
<a href="#entertainment"> Entertainment</a>.
<br><br>
If you like them, use them or share them with others. If you know of something that is not here, <a href="https://docs.google.com/forms/d/e/1FAIpQLSf6qLcvJGWS3VltKV99sO0KhBxmWxb0sdIpVu93OolL42s7rQ/viewform?usp=sf_link">please let me know</a>.
`

const metaContent = `
A list of +50 high-quality resources available for free or cheaper than usual due to the COVID-19
`

// Default returns the stock configuration for the stayhomeandlearn.org site.
func Default() Config {
	return Config{
		Workbook:     "Stay Home and Learn",
		Credentials:  DefaultCredentials,
		Profile:      "personal",
		Bucket:       "dev-stayhomeandlearn.org",
		TemplateDir:  "template",
		TemplateFile: "template.html",
		DataDir:      "data",
		SiteDir:      "site",
		IntroText:    introText,
		MetaContent:  metaContent,
		Labels: map[string]string{
			"learning_resources": "&#128218; Learning Resources",
			"productivity":       "&#128187; Productivity",
			"health":             "&#x1F3CB; Health & Fitness",
			"entertainment":      "&#x1F4FA; Entertainment",
		},
		ContentTypes: map[string]string{
			".css":  "text/css",
			".html": "text/html",
			".jpg":  "image/jpeg",
			".xml":  "text/xml",
		},
		Ignore: []string{"template.html", ".DS_Store"},
	}
}

// Load overlays the YAML file at path on the default configuration and then
// applies any SITEBUILDER_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read configuration file (%v)", err)
	}

	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse configuration file (%v)", err)
	}

	cfg.applyEnv()

	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("SITEBUILDER_WORKBOOK"); v != "" {
		cfg.Workbook = v
	}

	if v := os.Getenv("SITEBUILDER_CREDENTIALS"); v != "" {
		cfg.Credentials = v
	}

	if v := os.Getenv("SITEBUILDER_BUCKET"); v != "" {
		cfg.Bucket = v
	}

	if v := os.Getenv("SITEBUILDER_PROFILE"); v != "" {
		cfg.Profile = v
	}
}
