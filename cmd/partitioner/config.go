package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	partitioner "github.com/mreithub/go-index-partitioner"
	"github.com/mreithub/go-index-partitioner/sink/writersink"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const envPrefix = "PARTITIONER"

// Config -- settings shared by all commands
//
// Defaults come from the environment (PARTITIONER_*), flags override them.
type Config struct {
	Frequency string        `envconfig:"FREQUENCY" default:"day"`
	Ordering  string        `envconfig:"ORDERING" default:"big-endian"`
	Separator string        `envconfig:"SEPARATOR" default:"-"`
	Escape    string        `envconfig:"ESCAPE" default:"*"`
	Format    string        `envconfig:"FORMAT" default:"lines"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"warning"`
	Now       string        `envconfig:"NOW"`
	Interval  time.Duration `envconfig:"INTERVAL" default:"1h"`
}

func LoadConfig() (Config, error) {
	var rc Config
	if err := envconfig.Process(envPrefix, &rc); err != nil {
		return Config{}, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return rc, nil
}

// BindFlags -- registers the config flags (with the current values as defaults)
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Frequency, "frequency", "f", c.Frequency, "index frequency: day, month or year")
	flags.StringVar(&c.Ordering, "ordering", c.Ordering, "date field order: big-endian, little-endian or middle-endian")
	flags.StringVar(&c.Separator, "sep", c.Separator, "separator between date fields")
	flags.StringVar(&c.Escape, "escape", c.Escape, "placeholder character in index patterns")
	flags.StringVarP(&c.Format, "output", "o", c.Format, "output format: lines, comma or json")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warning, error)")
	flags.StringVar(&c.Now, "now", c.Now, "use this date (YYYY-MM-DD) instead of today")
}

func singleRune(value interface{}) error {
	var s, _ = value.(string)
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("must be a single character")
	}
	return nil
}

func parsedBy[T any](parse func(string) (T, error)) validation.RuleFunc {
	return func(value interface{}) error {
		var s, _ = value.(string)
		_, err := parse(s)
		return err
	}
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Frequency, validation.Required, validation.By(parsedBy(partitioner.ParseFrequency))),
		validation.Field(&c.Ordering, validation.Required, validation.By(parsedBy(partitioner.ParseOrdering))),
		validation.Field(&c.Separator, validation.Required, validation.By(singleRune)),
		validation.Field(&c.Escape, validation.Required, validation.By(singleRune)),
		validation.Field(&c.Format, validation.Required, validation.By(parsedBy(writersink.ParseFormat))),
		validation.Field(&c.LogLevel, validation.Required, validation.By(parsedBy(logrus.ParseLevel))),
		validation.Field(&c.Now, validation.When(c.Now != "", validation.By(parsedBy(partitioner.ParseDate)))),
		validation.Field(&c.Interval, validation.Min(time.Second)),
	)
}

// NewPartitioner -- builds the Partitioner described by c (call Validate() first)
func (c Config) NewPartitioner(log logrus.FieldLogger) (*partitioner.Partitioner, error) {
	var frequency, err = partitioner.ParseFrequency(c.Frequency)
	if err != nil {
		return nil, err
	}
	var ordering partitioner.Ordering
	if ordering, err = partitioner.ParseOrdering(c.Ordering); err != nil {
		return nil, err
	}

	var sep, _ = utf8.DecodeRuneInString(c.Separator)
	var escape, _ = utf8.DecodeRuneInString(c.Escape)
	var formatter partitioner.DateFormatter
	if formatter, err = partitioner.NewFormatter(ordering, sep); err != nil {
		return nil, err
	}

	var opts = []partitioner.Option{
		partitioner.WithFrequency(frequency),
		partitioner.WithFormatter(formatter),
		partitioner.WithEscape(escape),
		partitioner.WithLogger(log),
	}
	if c.Now != "" {
		var now partitioner.Date
		if now, err = partitioner.ParseDate(c.Now); err != nil {
			return nil, err
		}
		opts = append(opts, partitioner.WithNowFunc(func() partitioner.Date { return now }))
	}
	return partitioner.NewPartitioner(opts...)
}
