package aggregate

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dla/aggregate/pkg/geometry"
	"github.com/dla/aggregate/pkg/schedule"
)

// DefaultBOffset is the spawn-region margin constant b_offset.
const DefaultBOffset = 6

// DefaultMaxStepsPerParticle bounds a single walker's attempt count before
// it is declared stuck in an unbounded walk.
const DefaultMaxStepsPerParticle = 10_000_000

// ScheduleConfig configures an optional stickiness-vs-progress curve
// (pkg/schedule).
type ScheduleConfig struct {
	Curve        schedule.Kind `yaml:"curve" json:"curve"`
	From         float64       `yaml:"from" json:"from"`
	To           float64       `yaml:"to" json:"to"`
	Steepness    float64       `yaml:"steepness,omitempty" json:"steepness,omitempty"`
	Exponent     float64       `yaml:"exponent,omitempty" json:"exponent,omitempty"`
	CustomPoints [][2]float64  `yaml:"customPoints,omitempty" json:"customPoints,omitempty"`
}

// Build constructs the schedule.Curve this config describes.
func (s *ScheduleConfig) Build() (schedule.Curve, error) {
	switch s.Curve {
	case schedule.Linear, "":
		return schedule.LinearCurve{From: s.From, To: s.To}, nil
	case schedule.SCurve:
		return schedule.SShapedCurve{From: s.From, To: s.To, Steepness: s.Steepness}, nil
	case schedule.Exponential:
		return schedule.ExponentialCurve{From: s.From, To: s.To, Exponent: s.Exponent}, nil
	case schedule.Custom:
		return schedule.NewCustomCurve(s.CustomPoints)
	default:
		return nil, fmt.Errorf("aggregate: unknown schedule curve %q", s.Curve)
	}
}

// Validate checks ScheduleConfig constraints.
func (s *ScheduleConfig) Validate() error {
	if s.From < 0.0 || s.From > 1.0 {
		return fmt.Errorf("schedule.from must be in [0,1], got %f", s.From)
	}
	if s.To < 0.0 || s.To > 1.0 {
		return fmt.Errorf("schedule.to must be in [0,1], got %f", s.To)
	}
	_, err := s.Build()
	return err
}

// Config specifies all aggregate generation parameters.
type Config struct {
	// Dim is the lattice dimensionality: 2 or 3.
	Dim geometry.Dim `yaml:"dim" json:"dim"`

	// Lattice is the move-set geometry: SQUARE or TRIANGLE.
	Lattice geometry.Lattice `yaml:"lattice" json:"lattice"`

	// Attractor is the seed shape.
	Attractor geometry.Attractor `yaml:"attractor" json:"attractor"`

	// Stickiness is the per-collision stick probability in [0,1]. Ignored
	// for particles generated while a StickinessSchedule is set.
	Stickiness float64 `yaml:"stickiness" json:"stickiness"`

	// StickinessSchedule optionally overrides Stickiness with a curve
	// evaluated at the current fill fraction (stuck/N). See pkg/schedule.
	StickinessSchedule *ScheduleConfig `yaml:"stickinessSchedule,omitempty" json:"stickinessSchedule,omitempty"`

	// AttSize is the seed's characteristic size for LINE/CIRCLE/SPHERE/PLANE.
	// Forced to 1 for POINT regardless of this value.
	AttSize int64 `yaml:"attSize" json:"attSize"`

	// BOffset is the spawn-region margin constant (default 6 if zero).
	BOffset int64 `yaml:"bOffset,omitempty" json:"bOffset,omitempty"`

	// Seed is the master PRNG seed. Use 0 to auto-generate from the wall
	// clock (a hostile default for testing — prefer a nonzero seed there).
	Seed uint64 `yaml:"seed" json:"seed"`

	// MaxParticles, if nonzero, is a hard ceiling enforced at Generate time
	// that models resource exhaustion as an error instead of a crash.
	MaxParticles int `yaml:"maxParticles,omitempty" json:"maxParticles,omitempty"`

	// MaxStepsPerParticle bounds one walker's attempts (default
	// DefaultMaxStepsPerParticle if zero).
	MaxStepsPerParticle int64 `yaml:"maxStepsPerParticle,omitempty" json:"maxStepsPerParticle,omitempty"`

	// TrackAttachment enables the optional attachment graph (pkg/attach).
	TrackAttachment bool `yaml:"trackAttachment,omitempty" json:"trackAttachment,omitempty"`

	// UseSpatialIndex enables the optional occupancy-grid membership
	// acceleration (pkg/spatialindex) instead of a pure linear scan.
	UseSpatialIndex bool `yaml:"useSpatialIndex,omitempty" json:"useSpatialIndex,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, folded into the
// aggregate's single RNG stream derivation so that two different configs
// sharing a seed do not silently collide.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(c.Seed >> (8 * i))
		}
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// Validate checks all configuration constraints, including the
// dim/attractor compatibility contract.
func (c *Config) Validate() error {
	if c.Dim != geometry.Dim2 && c.Dim != geometry.Dim3 {
		return fmt.Errorf("dim must be 2 or 3, got %d", c.Dim)
	}
	if err := geometry.ValidatePair(c.Dim, c.Attractor); err != nil {
		return fmt.Errorf("attractor: %w", err)
	}
	if c.Stickiness < 0.0 || c.Stickiness > 1.0 {
		return fmt.Errorf("stickiness must be in [0,1], got %f", c.Stickiness)
	}
	if c.StickinessSchedule != nil {
		if err := c.StickinessSchedule.Validate(); err != nil {
			return fmt.Errorf("stickinessSchedule: %w", err)
		}
	}
	if c.Attractor != geometry.Point && c.AttSize < 1 {
		return fmt.Errorf("attSize must be >= 1 for attractor %v, got %d", c.Attractor, c.AttSize)
	}
	if c.BOffset < 0 {
		return fmt.Errorf("bOffset must be >= 0, got %d", c.BOffset)
	}
	if c.MaxParticles < 0 {
		return fmt.Errorf("maxParticles must be >= 0, got %d", c.MaxParticles)
	}
	if c.MaxStepsPerParticle < 0 {
		return fmt.Errorf("maxStepsPerParticle must be >= 0, got %d", c.MaxStepsPerParticle)
	}
	return nil
}

// effectiveAttSize returns the seed characteristic size, forcing 1 for POINT.
func (c *Config) effectiveAttSize() int64 {
	if c.Attractor == geometry.Point {
		return 1
	}
	return c.AttSize
}

func (c *Config) effectiveBOffset() int64 {
	if c.BOffset == 0 {
		return DefaultBOffset
	}
	return c.BOffset
}

func (c *Config) effectiveMaxSteps() int64 {
	if c.MaxStepsPerParticle == 0 {
		return DefaultMaxStepsPerParticle
	}
	return c.MaxStepsPerParticle
}

// generateSeed derives a seed from the current time.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	if now == 0 {
		now = 1
	}
	return uint64(now)
}
