package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/util"
)

var (
	ErrEmptyName = errors.New("countdown name is required")
	ErrEmptyDate = errors.New("countdown date is required")
	ErrBadDate   = errors.New("date must use YYYY/MM/DD")
	ErrEmptyText = errors.New("encouragement is required")
)

// Countdown is a named target date. Date keeps the text as entered.
type Countdown struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Target parses Date as local midnight.
func (c Countdown) Target() (time.Time, error) {
	return ParseDate(c.Date)
}

// Config is the persisted widget document. Field order is the on-disk key order.
type Config struct {
	Name                string      `json:"name"`
	Countdowns          []Countdown `json:"countdowns"`
	Encouragements      []string    `json:"encouragements"`
	StartCountdownIndex int         `json:"start_countdown_index"`
	Password            string      `json:"password"`
}

// ParseDate parses a YYYY/MM/DD date (month and day may be unpadded).
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(config.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

func DefaultConfig() Config {
	return Config{
		Name: "Countdown",
		Countdowns: []Countdown{
			{Name: "Exam 1", Date: "2025/3/1"},
			{Name: "Exam 2", Date: "2025/3/2"},
			{Name: "Exam 3", Date: "2025/3/3"},
		},
		Encouragements: []string{
			"You can do it!",
			"Keep going!",
			"Almost there!",
		},
		StartCountdownIndex: 0,
		Password:            config.DefaultPassword,
	}
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.Countdowns = append([]Countdown(nil), c.Countdowns...)
	out.Encouragements = append([]string(nil), c.Encouragements...)
	return out
}

// StartIndex clamps StartCountdownIndex into the countdown range.
// It returns 0 when there are no countdowns.
func (c Config) StartIndex() int {
	if len(c.Countdowns) == 0 {
		return 0
	}
	return util.Clamp(c.StartCountdownIndex, 0, len(c.Countdowns)-1)
}

func (c Config) CountdownNames() []string {
	names := make([]string, 0, len(c.Countdowns))
	for _, cd := range c.Countdowns {
		names = append(names, cd.Name)
	}
	return names
}

// FindCountdown returns the first countdown called name.
func (c Config) FindCountdown(name string) (Countdown, bool) {
	for _, cd := range c.Countdowns {
		if cd.Name == name {
			return cd, true
		}
	}
	return Countdown{}, false
}

func (c *Config) AddCountdown(name, date string) error {
	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	if name == "" {
		return ErrEmptyName
	}
	if date == "" {
		return ErrEmptyDate
	}
	if _, err := ParseDate(date); err != nil {
		return err
	}
	c.Countdowns = append(c.Countdowns, Countdown{Name: name, Date: date})
	return nil
}

// DeleteCountdown removes every countdown named name and reports how many went.
func (c *Config) DeleteCountdown(name string) int {
	before := len(c.Countdowns)
	c.Countdowns = util.Filter(c.Countdowns, func(cd Countdown) bool { return cd.Name != name })
	return before - len(c.Countdowns)
}

func (c *Config) AddEncouragement(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	c.Encouragements = append(c.Encouragements, text)
	return nil
}

// DeleteEncouragement removes every encouragement equal to text.
func (c *Config) DeleteEncouragement(text string) int {
	before := len(c.Encouragements)
	c.Encouragements = util.Filter(c.Encouragements, func(s string) bool { return s != text })
	return before - len(c.Encouragements)
}
