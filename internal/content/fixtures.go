package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// fetchFixture reads <fixturesDir>/<kind>/<id>.yaml and re-encodes it as JSON
// so fixtures flow through the same decoding path as remote payloads.
func (c *Client) fetchFixture(kind string, id int64) ([]byte, error) {
	if c.fixturesDir == "" {
		return nil, ErrNotFound
	}
	path := filepath.Join(c.fixturesDir, kind, strconv.FormatInt(id, 10)+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
