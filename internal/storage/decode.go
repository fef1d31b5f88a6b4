package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/akyairhashvil/countdown/internal/models"
)

const (
	keyName           = "name"
	keyCountdowns     = "countdowns"
	keyEncouragements = "encouragements"
	keyStartIndex     = "start_countdown_index"
	keyPassword       = "password"
)

var requiredKeys = []string{keyName, keyCountdowns, keyEncouragements, keyStartIndex, keyPassword}

var errNull = errors.New("null value")

// Decode parses and validates a configuration document. Failures are
// *ValidationError values.
func Decode(data []byte) (models.Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Config{}, &ValidationError{Check: CheckJSON, Err: err}
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return models.Config{}, &ValidationError{Check: CheckRequiredKey, Key: key}
		}
	}

	var cfg models.Config
	name, err := decodeText(raw[keyName])
	if err != nil {
		return models.Config{}, typeErr(keyName, err)
	}
	cfg.Name = name
	countdowns, err := decodeCountdowns(raw[keyCountdowns])
	if err != nil {
		return models.Config{}, err
	}
	cfg.Countdowns = countdowns
	encouragements, err := decodeTextList(raw[keyEncouragements])
	if err != nil {
		return models.Config{}, typeErr(keyEncouragements, err)
	}
	cfg.Encouragements = encouragements
	if err := decodeField(raw[keyStartIndex], &cfg.StartCountdownIndex); err != nil {
		return models.Config{}, typeErr(keyStartIndex, err)
	}
	password, err := decodePassword(raw[keyPassword])
	if err != nil {
		return models.Config{}, typeErr(keyPassword, err)
	}
	cfg.Password = password
	return cfg, nil
}

func decodeCountdowns(raw json.RawMessage) ([]models.Countdown, error) {
	var entries []json.RawMessage
	if isNull(raw) {
		return nil, &ValidationError{Check: CheckCountdownsList, Err: errNull}
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ValidationError{Check: CheckCountdownsList, Err: err}
	}
	out := make([]models.Countdown, 0, len(entries))
	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if isNull(entry) || json.Unmarshal(entry, &fields) != nil {
			return nil, &ValidationError{Check: CheckCountdownEntry, Index: i}
		}
		nameRaw, hasName := fields["name"]
		dateRaw, hasDate := fields["date"]
		if !hasName || !hasDate {
			return nil, &ValidationError{Check: CheckCountdownEntry, Index: i}
		}
		var cd models.Countdown
		var err error
		if cd.Name, err = decodeText(nameRaw); err != nil {
			return nil, typeErr(fmt.Sprintf("countdowns[%d].name", i), err)
		}
		if cd.Date, err = decodeText(dateRaw); err != nil {
			return nil, &ValidationError{Check: CheckCountdownDate, Index: i, Err: err}
		}
		if _, err := models.ParseDate(cd.Date); err != nil {
			return nil, &ValidationError{Check: CheckCountdownDate, Index: i, Err: err}
		}
		out = append(out, cd)
	}
	return out, nil
}

// decodePassword accepts a JSON string or number. Numbers are truncated to
// an integer (1000.0 and 1000.9 both read as "1000"); strings stay as written.
func decodePassword(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", errNull
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return integerText(n), nil
}

func integerText(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return n.String()
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}

// decodeText reads a string, or a number or boolean written as its text.
// Objects and arrays are type errors.
func decodeText(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", errNull
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("expected text, got %s", bytes.TrimSpace(raw))
	}
}

func decodeTextList(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := decodeField(raw, &items); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		text, err := decodeText(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, text)
	}
	return out, nil
}

func decodeField(raw json.RawMessage, dst any) error {
	if isNull(raw) {
		return errNull
	}
	return json.Unmarshal(raw, dst)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func typeErr(key string, err error) *ValidationError {
	return &ValidationError{Check: CheckFieldType, Key: key, Err: err}
}

// Encode renders cfg with four-space indentation and literal non-ASCII text.
func Encode(cfg models.Config) ([]byte, error) {
	if cfg.Countdowns == nil {
		cfg.Countdowns = []models.Countdown{}
	}
	if cfg.Encouragements == nil {
		cfg.Encouragements = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
