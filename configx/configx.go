package configx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Config is a read-only view over merged configuration sources. Dots in a
// key address nested maps.
type Config interface {
	Get(key string) Value
	Has(key string) bool
}

// Source supplies configuration values. Sources with a higher priority
// override lower ones.
type Source interface {
	Load() (map[string]any, error)
	Name() string
	Priority() int
}

// Value converts a raw setting into the type a caller asks for.
type Value interface {
	IsSet() bool
	AsString() string
	AsBoolDefault(def bool) bool
}

// Builder assembles a Config from sources.
type Builder interface {
	FromEnv(prefix string) Builder
	FromMap(values map[string]any, name string) Builder
	WithDefaults(defaults map[string]any) Builder
	Build() (Config, error)
}

const (
	PriorityDefault = 10
	PriorityEnv     = 20
	PriorityMap     = 40
)

type settings map[string]any

// New loads sources in priority order, lowest first, and merges them.
func New(sources ...Source) (Config, error) {
	ordered := append([]Source(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	merged := make(map[string]any)
	for _, source := range ordered {
		data, err := source.Load()
		if err != nil {
			return nil, fmt.Errorf("configx: load %s: %w", source.Name(), err)
		}
		merge(merged, data)
	}
	return settings(merged), nil
}

func (s settings) Get(key string) Value {
	return value{val: s.find(key)}
}

func (s settings) Has(key string) bool {
	return s.find(key) != nil
}

func (s settings) find(key string) any {
	current := map[string]any(s)
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		nested, ok := current[part].(map[string]any)
		if !ok {
			return nil
		}
		current = nested
	}
	return current[parts[len(parts)-1]]
}

// merge copies src into dst, descending into maps present on both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		dstMap, ok := dst[k].(map[string]any)
		if !ok {
			dstMap = make(map[string]any, len(srcMap))
			dst[k] = dstMap
		}
		merge(dstMap, srcMap)
	}
}

type value struct {
	val any
}

func (v value) IsSet() bool { return v.val != nil }

// AsString renders scalars with %v and returns "" for anything else.
func (v value) AsString() string {
	switch val := v.val.(type) {
	case string:
		return val
	case int, int64, float64, bool:
		return fmt.Sprint(val)
	default:
		return ""
	}
}

// AsBoolDefault accepts bools, ints and the strings strconv.ParseBool
// understands plus yes/no and on/off.
func (v value) AsBoolDefault(def bool) bool {
	switch val := v.val.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		switch strings.ToLower(val) {
		case "yes", "y", "on":
			return true
		case "no", "n", "off":
			return false
		}
	}
	return def
}

type builder struct {
	sources []Source
}

// NewBuilder starts an empty configuration.
func NewBuilder() Builder {
	return &builder{}
}

// FromEnv reads variables starting with prefix.
func (b *builder) FromEnv(prefix string) Builder {
	b.sources = append(b.sources, NewEnvSource(prefix, PriorityEnv))
	return b
}

// FromMap adds explicit overrides.
func (b *builder) FromMap(values map[string]any, name string) Builder {
	b.sources = append(b.sources, NewMapSource(values, name, PriorityMap))
	return b
}

func (b *builder) WithDefaults(defaults map[string]any) Builder {
	b.sources = append(b.sources, NewMapSource(defaults, "defaults", PriorityDefault))
	return b
}

func (b *builder) Build() (Config, error) {
	return New(b.sources...)
}
