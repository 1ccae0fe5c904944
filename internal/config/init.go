package config

import (
	"errors"
	"fmt"
	"os"
)

const exampleConfig = `# orgsite configuration
source:
  # One directory per category, each holding exported org-mode HTML files.
  directory: blog
  extension: .html

output:
  directory: public
  # Remove the output directory before every build.
  clean: true

templates:
  # Empty uses the theme embedded in the binary.
  directory: ""

static:
  paths:
    - static

build:
  # 0 parses with one worker per CPU.
  workers: 0
  report_file: ""

# Values merged over the built-in page context keys. ${VAR} references are
# expanded from the environment (.env and .env.local are loaded first).
site:
  domain_name: example.org
  full_name: Site Owner
  internet_handle: owner
  my_email: owner@example.org
  admin_email: admin@example.org
  github_url: https://github.com/owner
  github_repo_url: https://github.com/owner/site
  linkedin_url: https://www.linkedin.com/in/owner

serve:
  addr: ":8080"

logging:
  level: info
  format: text
`

// Init writes an example configuration file to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
