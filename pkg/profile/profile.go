// Package profile loads Fabric connection profiles.
//
// The profile content is treated as opaque configuration and passed to the gateway as is,
// only a few descriptive fields are decoded for display.
package profile

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

var (
	// ErrInvalid is returned when profile content isn't a well-formed configuration document.
	ErrInvalid = errors.New("invalid connection profile")
)

// Profile is a parsed connection profile.
type Profile struct {
	// Raw holds the profile encoded as JSON.
	Raw          []byte
	Name         string
	Version      string
	Organization string
	Channels     []string
}

// Parse decodes JSON or YAML connection profile `data`.
func Parse(data []byte) (*Profile, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "failed to decode profile: %v", err)
	}

	var document map[string]interface{}
	if err = json.Unmarshal(raw, &document); err != nil || document == nil {
		return nil, errors.Wrap(ErrInvalid, "profile must be a configuration object")
	}

	// Descriptive fields are optional, unexpected shapes leave them empty.
	profile := &Profile{
		Raw:     raw,
		Name:    stringField(document["name"]),
		Version: stringField(document["version"]),
	}

	if client, ok := document["client"].(map[string]interface{}); ok {
		profile.Organization = stringField(client["organization"])
	}

	if channels, ok := document["channels"].(map[string]interface{}); ok {
		for channel := range channels {
			profile.Channels = append(profile.Channels, channel)
		}
		sort.Strings(profile.Channels)
	}

	return profile, nil
}

// Load reads profile content from `source` and parses it.
func Load(source Source) (*Profile, error) {
	data, err := source.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read connection profile from %s", source)
	}

	profile, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "connection profile from %s", source)
	}

	return profile, nil
}

// HasChannel determines whether the channel is defined in the profile.
func (p *Profile) HasChannel(name string) bool {
	for _, ch := range p.Channels {
		if ch == name {
			return true
		}
	}

	return false
}

func stringField(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
