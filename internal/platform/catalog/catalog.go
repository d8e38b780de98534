// Package catalog holds the static mock content the client renders: the
// social feed, the user's swing history, the profile and the placeholder
// analysis text.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const DateLayout = "2006-01-02"

//go:embed catalog.yaml
var embedded []byte

type Catalog struct {
	Posts    []Post   `yaml:"posts"`
	Swings   []Swing  `yaml:"swings"`
	Profile  Profile  `yaml:"profile"`
	Analysis Analysis `yaml:"analysis"`
}

type Golfer struct {
	Name     string `yaml:"name"`
	Handicap int    `yaml:"handicap"`
}

type Post struct {
	ID       int      `yaml:"id"`
	Golfer   Golfer   `yaml:"golfer"`
	Score    int      `yaml:"score"`
	Tips     []string `yaml:"tips"`
	Date     string   `yaml:"date"`
	Likes    int      `yaml:"likes"`
	Comments int      `yaml:"comments"`
	Rating   float64  `yaml:"rating"`
}

type Swing struct {
	ID          int      `yaml:"id"`
	Date        string   `yaml:"date"`
	Score       int      `yaml:"score"`
	Tips        []string `yaml:"tips"`
	Improvement int      `yaml:"improvement"`
}

type Profile struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Handicap     string `yaml:"handicap"`
	Plan         string `yaml:"plan"`
	TotalSwings  int    `yaml:"total_swings"`
	BestScore    int    `yaml:"best_score"`
	AverageScore int    `yaml:"average_score"`
	Improvement  int    `yaml:"improvement"`
	UploadsUsed  int    `yaml:"uploads_used"`
}

type Analysis struct {
	Tips      []string `yaml:"tips"`
	Strengths []string `yaml:"strengths"`
}

// Load parses the catalog compiled into the binary.
func Load() (Catalog, error) {
	return Parse(embedded)
}

func Parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	seen := map[int]struct{}{}
	for _, p := range c.Posts {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate post id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if _, err := ParseDate(p.Date); err != nil {
			return fmt.Errorf("post %d: %w", p.ID, err)
		}
	}
	seen = map[int]struct{}{}
	for _, s := range c.Swings {
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("duplicate swing id %d", s.ID)
		}
		seen[s.ID] = struct{}{}
		if _, err := ParseDate(s.Date); err != nil {
			return fmt.Errorf("swing %d: %w", s.ID, err)
		}
	}
	if len(c.Analysis.Tips) == 0 || len(c.Analysis.Strengths) == 0 {
		return fmt.Errorf("analysis tips and strengths are required")
	}
	return nil
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}
