package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML generation profile. Absent keys leave the environment
// values in place.
//
//	seed: 7
//	counts:
//	  customers: 200
//	  orders: 500
//	items_per_order:
//	  min: 2
//	  max: 4
//	now: 2025-06-01T12:00:00Z
//	history_window: 8760h
type Profile struct {
	Seed   *uint32 `yaml:"seed"`
	Counts struct {
		Customers  *int `yaml:"customers"`
		Categories *int `yaml:"categories"`
		Products   *int `yaml:"products"`
		Orders     *int `yaml:"orders"`
	} `yaml:"counts"`
	ItemsPerOrder struct {
		Min *int `yaml:"min"`
		Max *int `yaml:"max"`
	} `yaml:"items_per_order"`
	Now           string `yaml:"now"`
	HistoryWindow string `yaml:"history_window"`
}

// LoadProfile reads and decodes a profile. Unknown keys are rejected.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply overrides g with every value set in the profile.
func (p *Profile) Apply(g *GenerateConfig) error {
	if p.Seed != nil {
		g.Seed = *p.Seed
	}
	setInt(&g.Customers, p.Counts.Customers)
	setInt(&g.Categories, p.Counts.Categories)
	setInt(&g.Products, p.Counts.Products)
	setInt(&g.Orders, p.Counts.Orders)
	setInt(&g.MinItems, p.ItemsPerOrder.Min)
	setInt(&g.MaxItems, p.ItemsPerOrder.Max)

	if p.Now != "" {
		ts, err := time.Parse(time.RFC3339, p.Now)
		if err != nil {
			return fmt.Errorf("now: %w", err)
		}
		g.Now = ts.UTC()
	}
	if p.HistoryWindow != "" {
		d, err := time.ParseDuration(p.HistoryWindow)
		if err != nil {
			return fmt.Errorf("history_window: %w", err)
		}
		g.HistoryWindow = d
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
